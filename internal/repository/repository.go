package repository

import (
	"context"
	"errors"
	"fmt"
	"rewarder/internal/db"
	"time"
)

var (
	ErrRewardNotFound error = errors.New("reward not found")
	ErrWalletNotFound error = errors.New("wallet address not found")
	ErrNoRowsUpdated  error = errors.New("no rows updated")
)

type RewardRepository struct {
	db Storage
}

func NewRewardRepository(db Storage) *RewardRepository {
	return &RewardRepository{
		db: db,
	}
}

func (r *RewardRepository) MigrateTables() error {
	err := r.db.MigrateModels(&Reward{}, &WalletAddress{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// GetReward returns the reward only when it belongs to userID.
func (r *RewardRepository) GetReward(ctx context.Context, id int64, userID string) (Reward, error) {
	var reward Reward

	err := r.db.GetOneBy(ctx, map[string]any{"id": id, "user_id": userID}, &reward)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Reward{}, ErrRewardNotFound
		}
		return Reward{}, fmt.Errorf("get reward by id: %w", err)
	}

	return reward, nil
}

func (r *RewardRepository) ListRewards(ctx context.Context, userID string) ([]Reward, error) {
	rewards := []Reward{}

	err := r.db.GetAllBy(ctx, map[string]any{"user_id": userID}, "created_at", &rewards)
	if err != nil {
		return nil, fmt.Errorf("list rewards: %w", err)
	}

	return rewards, nil
}

func (r *RewardRepository) GetWalletAddress(ctx context.Context, userID string) (WalletAddress, error) {
	var wallet WalletAddress

	err := r.db.GetOneBy(ctx, map[string]any{"user_id": userID}, &wallet)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return WalletAddress{}, ErrWalletNotFound
		}
		return WalletAddress{}, fmt.Errorf("get wallet address: %w", err)
	}

	return wallet, nil
}

// MarkClaimed flips a pending reward to claimed. It only matches a row that is
// still pending, so a claim that lost a race gets ErrNoRowsUpdated instead of
// overwriting the winner's signature.
func (r *RewardRepository) MarkClaimed(ctx context.Context, id int64, signature string, claimedAt time.Time) (Reward, error) {
	var reward Reward

	filter := map[string]any{
		"id":     id,
		"status": RewardStatusPending,
	}
	updates := map[string]any{
		"status":       RewardStatusClaimed,
		"claimed_at":   claimedAt,
		"tx_signature": signature,
	}

	affected, err := r.db.UpdateWhere(ctx, &reward, filter, updates)
	if err != nil {
		return Reward{}, fmt.Errorf("mark reward claimed: %w", err)
	}

	if affected == 0 {
		return Reward{}, fmt.Errorf("mark reward %d claimed: %w", id, ErrNoRowsUpdated)
	}

	return reward, nil
}

// LockReward holds the advisory lock keyed by the reward id until release is called.
func (r *RewardRepository) LockReward(ctx context.Context, id int64) (func() error, error) {
	release, err := r.db.AdvisoryLock(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lock reward %d: %w", id, err)
	}

	return release, nil
}
