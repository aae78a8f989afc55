package main

import (
	"fmt"
	"os"
	"os/signal"
	"rewarder/internal/config"
	"rewarder/internal/http/client"
	"rewarder/internal/notifier"
	"rewarder/pkg/jwt"
	"rewarder/pkg/log"
	"syscall"
	"time"

	"go.uber.org/zap/zapcore"
)

const mintedTokenLifetime = 24 * time.Hour

func main() {
	if err := start(); err != nil {
		fmt.Printf("badge run into an error: %s", err)
		os.Exit(1)
	}
}

func start() error {
	logger := log.NewZapLogger("badge", zapcore.InfoLevel)

	if err := config.LoadDotEnv(); err != nil {
		logger.Errorw("failed to load .env file", "error", err)
		return err
	}

	cfg, err := config.NewBadge()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	authToken := cfg.AuthToken
	if authToken == "" {
		issuer := jwt.NewJWTService([]byte(cfg.JWTSecret))
		authToken, err = issuer.Sign(issuer.Generate(jwt.TokenInfo{
			Subject:    cfg.UserID,
			Expiration: mintedTokenLifetime,
		}))
		if err != nil {
			logger.Errorw("failed to mint auth token", "error", err)
			return err
		}
	}

	rewardClient := client.NewRewardClient(cfg.APIURL, authToken, nil)

	n := notifier.NewNotifier(logger, rewardClient, cfg.PollInterval,
		notifier.WithOnChange(func(pc notifier.PendingCount) {
			logger.Infow("pending rewards",
				"count", pc.Count,
				"stale", pc.Stale,
				"updated_at", pc.UpdatedAt)
		}))

	if err := n.Start(); err != nil {
		logger.Errorw("failed to start notifier", "error", err)
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	<-sig

	return n.Stop()
}
