package notifier

import (
	"context"
	"rewarder/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RewardLister . RewardLister
type RewardLister interface {
	ListRewards(ctx context.Context) ([]core.RewardRecord, error)
}
