package handler

import (
	"context"
	"net/http"
	"rewarder/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RewardService . RewardService
type RewardService interface {
	Identify(token string) (string, error)
	ListRewards(ctx context.Context, userID string) ([]core.RewardRecord, error)
	ClaimReward(ctx context.Context, userID string, rewardID int64) (core.RewardRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
