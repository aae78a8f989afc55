package ledger

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// Token2022ProgramID is the SPL Token-2022 program.
var Token2022ProgramID = solana.MustPublicKeyFromBase58("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")

// instruction index of CreateIdempotent in the associated token account program
const createIdempotentInstruction byte = 1

// ParseTokenProgram accepts "token-2022", "token" or a base58 program id.
func ParseTokenProgram(name string) (solana.PublicKey, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "token-2022", "token2022":
		return Token2022ProgramID, nil
	case "token", "spl-token":
		return solana.TokenProgramID, nil
	}

	program, err := solana.PublicKeyFromBase58(name)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("parse token program %q: %w", name, err)
	}
	return program, nil
}

// FindAssociatedTokenAddress derives the associated token account of owner for
// mint under the given token program.
func FindAssociatedTokenAddress(owner, mint, tokenProgram solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{owner[:], tokenProgram[:], mint[:]},
		solana.SPLAssociatedTokenAccountProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("find associated token address: %w", err)
	}
	return addr, nil
}

// NewCreateIdempotentInstruction creates the associated token account of owner
// unless it already exists, in which case the instruction does nothing.
func NewCreateIdempotentInstruction(payer, associated, owner, mint, tokenProgram solana.PublicKey) solana.Instruction {
	accounts := solana.AccountMetaSlice{
		solana.NewAccountMeta(payer, true, true),
		solana.NewAccountMeta(associated, true, false),
		solana.NewAccountMeta(owner, false, false),
		solana.NewAccountMeta(mint, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(tokenProgram, false, false),
	}

	return solana.NewInstruction(
		solana.SPLAssociatedTokenAccountProgramID,
		accounts,
		[]byte{createIdempotentInstruction},
	)
}

// WebsocketURL maps an RPC endpoint to its subscription endpoint.
func WebsocketURL(rpcURL string) string {
	switch {
	case strings.HasPrefix(rpcURL, "https://"):
		return "wss://" + strings.TrimPrefix(rpcURL, "https://")
	case strings.HasPrefix(rpcURL, "http://"):
		return "ws://" + strings.TrimPrefix(rpcURL, "http://")
	}
	return rpcURL
}
