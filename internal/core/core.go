package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"rewarder/internal/ledger"
	"rewarder/internal/repository"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

var (
	ErrRewardNotFound         error = errors.New("reward not found")
	ErrAlreadyClaimed         error = errors.New("reward already claimed")
	ErrNoWallet               error = errors.New("no wallet connected")
	ErrInvalidWallet          error = errors.New("wallet address is not a valid public key")
	ErrNotConfigured          error = errors.New("token payouts are not configured")
	ErrTransferFailed         error = errors.New("token transfer failed")
	ErrConcurrentModification error = errors.New("reward was modified concurrently")
	ErrUnauthorized           error = errors.New("unauthorized")
)

var TimeNow = time.Now

// Claimer moves rewards from pending to claimed by paying them out on chain.
type Claimer struct {
	logs        *zap.SugaredLogger
	repo        Repository
	jwtIssuer   JWTIssuer
	transferer  TokenTransferer
	tokenConfig TokenConfig
}

// NewClaimer is a constructor function for the Claimer type.
func NewClaimer(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, transferer TokenTransferer, tokenConfig TokenConfig) *Claimer {
	return &Claimer{
		logs:        logger,
		repo:        repo,
		jwtIssuer:   jwt,
		transferer:  transferer,
		tokenConfig: tokenConfig,
	}
}

// Identify validates the bearer token and returns the user id it was issued for.
func (c *Claimer) Identify(token string) (string, error) {
	claims, err := c.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("%w: token has no subject", ErrUnauthorized)
	}

	return userID, nil
}

// ListRewards returns every reward of the user, oldest first.
func (c *Claimer) ListRewards(ctx context.Context, userID string) ([]RewardRecord, error) {
	rewards, err := c.repo.ListRewards(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list rewards: %w", err)
	}

	records := make([]RewardRecord, len(rewards))
	for i, reward := range rewards {
		records[i] = c.toRecord(reward)
	}

	return records, nil
}

// ClaimReward pays out a pending reward to the user's wallet and marks it claimed.
// Claims for the same reward are serialised by a lock held for the whole call.
func (c *Claimer) ClaimReward(ctx context.Context, userID string, rewardID int64) (RewardRecord, error) {
	release, err := c.repo.LockReward(ctx, rewardID)
	if err != nil {
		return RewardRecord{}, fmt.Errorf("lock reward: %w", err)
	}
	defer func() {
		if err := release(); err != nil {
			c.logs.Errorw("releasing reward lock", "rewardId", rewardID, "error", err)
		}
	}()

	reward, err := c.repo.GetReward(ctx, rewardID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRewardNotFound) {
			return RewardRecord{}, ErrRewardNotFound
		}
		return RewardRecord{}, fmt.Errorf("get reward: %w", err)
	}

	if reward.Status == repository.RewardStatusClaimed {
		return RewardRecord{}, ErrAlreadyClaimed
	}

	wallet, err := c.repo.GetWalletAddress(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			return RewardRecord{}, ErrNoWallet
		}
		return RewardRecord{}, fmt.Errorf("get wallet address: %w", err)
	}

	recipient, err := solana.PublicKeyFromBase58(wallet.Address)
	if err != nil {
		return RewardRecord{}, fmt.Errorf("%w: %w", ErrInvalidWallet, err)
	}

	if !c.tokenConfig.configured() {
		return RewardRecord{}, ErrNotConfigured
	}

	signature, err := c.transferer.Transfer(ctx, ledger.TransferRequest{
		Amount:    reward.Amount,
		Decimals:  c.tokenConfig.Decimals,
		FeePayer:  c.tokenConfig.FeePayer,
		Mint:      c.tokenConfig.Mint,
		Recipient: recipient,
	})
	if err != nil {
		c.logs.Errorw("reward transfer failed",
			"rewardId", reward.ID,
			"userId", userID,
			"recipient", wallet.Address,
			"amount", reward.Amount,
			"error", err)
		return RewardRecord{}, fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}

	// the tokens have moved; record it even if the caller has gone away
	claimed, err := c.repo.MarkClaimed(context.WithoutCancel(ctx), reward.ID, signature, TimeNow().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNoRowsUpdated) {
			c.logs.Errorw("reward transferred but no longer pending, needs reconciliation",
				"rewardId", reward.ID,
				"userId", userID,
				"signature", signature)
			return RewardRecord{}, ErrConcurrentModification
		}
		c.logs.Errorw("reward transferred but not recorded",
			"rewardId", reward.ID,
			"userId", userID,
			"signature", signature,
			"error", err)
		return RewardRecord{}, fmt.Errorf("mark reward claimed: %w", err)
	}

	c.logs.Infow("reward claimed",
		"rewardId", claimed.ID,
		"userId", userID,
		"amount", claimed.Amount,
		"signature", signature)

	return c.toRecord(claimed), nil
}

func (c *Claimer) toRecord(reward repository.Reward) RewardRecord {
	return RewardRecord{
		ID:            reward.ID,
		UserID:        reward.UserID,
		Amount:        reward.Amount,
		Status:        string(reward.Status),
		CreatedAt:     reward.CreatedAt,
		ClaimedAt:     reward.ClaimedAt,
		TxSignature:   reward.TxSignature,
		DisplayAmount: float64(reward.Amount) / math.Pow10(int(c.tokenConfig.Decimals)),
	}
}
