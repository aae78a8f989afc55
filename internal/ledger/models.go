package ledger

import (
	"time"

	"github.com/gagliardetto/solana-go"
)

// TransferRequest moves Amount base units of Mint from the fee payer's
// associated token account to the recipient's.
type TransferRequest struct {
	Amount    uint64
	Decimals  uint8
	FeePayer  solana.PrivateKey
	Mint      solana.PublicKey
	Recipient solana.PublicKey
}

type Options struct {
	TokenProgram   solana.PublicKey
	SkipPreflight  bool
	ConfirmTimeout time.Duration
}
