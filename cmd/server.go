package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"rewarder/internal/config"
	"rewarder/internal/core"
	"rewarder/internal/db"
	"rewarder/internal/http/handler"
	"rewarder/internal/http/handler/middleware"
	"rewarder/internal/http/payload"
	"rewarder/internal/http/server"
	"rewarder/internal/ledger"
	"rewarder/internal/repository"
	"rewarder/pkg/jwt"
	"rewarder/pkg/log"
	"syscall"

	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("rewarder", zapcore.InfoLevel)

	if err := config.LoadDotEnv(); err != nil {
		logger.Errorw("failed to load .env file", "error", err)
		return err
	}

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewGormDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewRewardRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// ledger
	tokenProgram, err := ledger.ParseTokenProgram(config.Token.Program)
	if err != nil {
		logger.Errorw("invalid token program", "error", err, "program", config.Token.Program)
		return err
	}

	wsURL := config.Ledger.WSURL
	if wsURL == "" {
		wsURL = ledger.WebsocketURL(config.Ledger.RPCURL)
	}

	rpcClient := rpc.New(config.Ledger.RPCURL)
	tokenService := ledger.NewTokenService(
		logger,
		rpcClient,
		ledger.NewWSWatcher(wsURL, rpcClient),
		ledger.Options{
			TokenProgram:   tokenProgram,
			SkipPreflight:  config.Ledger.SkipPreflight,
			ConfirmTimeout: config.Ledger.ConfirmTimeout,
		})

	// claimer
	claimer := core.NewClaimer(
		logger,
		repo,
		jwtService,
		tokenService,
		tokenConfig(logger, config.Token))

	// handler
	rewardHlr := handler.NewRewardHandler(
		logger,
		payload.Decoder{},
		claimer)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.HealthCheck, rewardHlr.HandleHealthCheck)
	mux.HandleFunc(handler.PrivateData, rewardHlr.HandlePrivateData)
	mux.HandleFunc(handler.ListRewards, rewardHlr.HandleListRewards)
	mux.HandleFunc(handler.ClaimReward, rewardHlr.HandleClaimReward)

	logger.Infow("ledger configured",
		"rpc_url", config.Ledger.RPCURL,
		"ws_url", wsURL,
		"token_program", tokenProgram.String(),
		"skip_preflight", config.Ledger.SkipPreflight)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

// tokenConfig parses the payout material. Missing or invalid values are logged
// and left empty so the API still serves everything except claims.
func tokenConfig(logger *zap.SugaredLogger, cfg config.Token) core.TokenConfig {
	tc := core.TokenConfig{
		Decimals: cfg.Decimals,
	}

	feePayer, err := ledger.ParseFeePayer(cfg.FeePayerKeypair)
	if err != nil {
		logger.Errorw("fee payer keypair unavailable, claims are disabled", "error", err)
	} else {
		tc.FeePayer = feePayer
		logger.Infow("fee payer loaded", "address", feePayer.PublicKey().String())
	}

	mint, err := ledger.ParseMint(cfg.MintAddress)
	if err != nil {
		logger.Errorw("token mint unavailable, claims are disabled", "error", err)
	} else {
		tc.Mint = mint
	}

	return tc
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
