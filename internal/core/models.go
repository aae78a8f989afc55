package core

import (
	"time"

	"github.com/gagliardetto/solana-go"
)

const (
	StatusPending = "pending"
	StatusClaimed = "claimed"
)

type RewardRecord struct {
	ID            int64      `json:"id"`
	UserID        string     `json:"userId"`
	Amount        uint64     `json:"amount"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	ClaimedAt     *time.Time `json:"claimedAt"`
	TxSignature   *string    `json:"txSignature"`
	DisplayAmount float64    `json:"displayAmount"`
}

// TokenConfig is the signing material and token identity used for payouts.
// FeePayer and Mint are left empty when the deployment has no payout setup.
type TokenConfig struct {
	FeePayer solana.PrivateKey
	Mint     solana.PublicKey
	Decimals uint8
}

func (c TokenConfig) configured() bool {
	return len(c.FeePayer) > 0 && !c.Mint.IsZero()
}
