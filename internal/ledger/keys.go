package ledger

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

var ErrEmptyKey error = errors.New("key material is empty")
var ErrInvalidKey error = errors.New("invalid key material")

// ParseFeePayer reads a signing keypair either in the solana-keygen JSON form
// ("[12,250,...]", 64 bytes) or as a base58 encoded private key.
func ParseFeePayer(raw string) (solana.PrivateKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyKey
	}

	var key solana.PrivateKey
	if strings.HasPrefix(raw, "[") {
		var ints []int
		if err := json.Unmarshal([]byte(raw), &ints); err != nil {
			return nil, fmt.Errorf("%w: decode keypair json: %w", ErrInvalidKey, err)
		}
		key = make(solana.PrivateKey, len(ints))
		for i, v := range ints {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("%w: byte %d out of range", ErrInvalidKey, i)
			}
			key[i] = byte(v)
		}
	} else {
		var err error
		key, err = solana.PrivateKeyFromBase58(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: decode base58 key: %w", ErrInvalidKey, err)
		}
	}

	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKey, ed25519.PrivateKeySize, len(key))
	}

	// the second half of a keypair is its public key
	derived := ed25519.NewKeyFromSeed(key[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], key[ed25519.SeedSize:]) {
		return nil, fmt.Errorf("%w: public half does not match secret", ErrInvalidKey)
	}

	return key, nil
}

func ParseMint(raw string) (solana.PublicKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return solana.PublicKey{}, ErrEmptyKey
	}

	mint, err := solana.PublicKeyFromBase58(raw)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return mint, nil
}
