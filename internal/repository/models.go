package repository

import "time"

type RewardStatus string

const (
	RewardStatusPending RewardStatus = "pending"
	RewardStatusClaimed RewardStatus = "claimed"
)

type Reward struct {
	ID          int64        `gorm:"primaryKey"`
	UserID      string       `gorm:"size:64;not null;index"`
	Amount      uint64       `gorm:"not null"`                             // base units of the token
	Status      RewardStatus `gorm:"size:16;not null;default:pending;index"` // pending -> claimed, once
	CreatedAt   time.Time    `gorm:"not null"`
	ClaimedAt   *time.Time
	TxSignature *string `gorm:"size:88"` // base58 transaction signature
}

type WalletAddress struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    string    `gorm:"size:64;not null;index"`
	Address   string    `gorm:"size:44;not null"` // base58 public key
	CreatedAt time.Time `gorm:"not null"`
}
