package core

import (
	"context"
	"rewarder/internal/ledger"
	"rewarder/internal/repository"
	"time"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetReward(ctx context.Context, id int64, userID string) (repository.Reward, error)
	ListRewards(ctx context.Context, userID string) ([]repository.Reward, error)
	GetWalletAddress(ctx context.Context, userID string) (repository.WalletAddress, error)
	MarkClaimed(ctx context.Context, id int64, signature string, claimedAt time.Time) (repository.Reward, error)
	LockReward(ctx context.Context, id int64) (func() error, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name TokenTransferer . TokenTransferer
type TokenTransferer interface {
	Transfer(ctx context.Context, req ledger.TransferRequest) (string, error)
}
