package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable invalid")

const (
	apiPortEnvKey        = "API_PORT"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	jwtSecretEnvKey      = "JWT_SECRET"
	rpcURLEnvKey         = "SOLANA_RPC_URL"
	wsURLEnvKey          = "SOLANA_WS_URL"
	feePayerEnvKey       = "FEE_PAYER_KEYPAIR"
	tokenMintEnvKey      = "TOKEN_MINT_ADDRESS"
	tokenDecimalsEnvKey  = "TOKEN_DECIMALS"
	tokenProgramEnvKey   = "TOKEN_PROGRAM"
	skipPreflightEnvKey  = "SOLANA_SKIP_PREFLIGHT"
	confirmTimeoutEnvKey = "SOLANA_CONFIRM_TIMEOUT"

	badgeAPIURLEnvKey   = "BADGE_API_URL"
	badgeTokenEnvKey    = "BADGE_AUTH_TOKEN"
	badgeUserEnvKey     = "BADGE_USER_ID"
	badgeIntervalEnvKey = "BADGE_POLL_INTERVAL"
)

const (
	defaultRPCURL         = "https://api.devnet.solana.com"
	defaultTokenDecimals  = 6
	defaultTokenProgram   = "token-2022"
	defaultConfirmTimeout = 60 * time.Second
	defaultBadgeInterval  = 30 * time.Second
)

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	Ledger          Ledger
	Token           Token
}

// Ledger holds the network endpoint pair and submission policy.
type Ledger struct {
	RPCURL         string
	WSURL          string
	SkipPreflight  bool
	ConfirmTimeout time.Duration
}

// Token holds the claim material. FeePayerKeypair and MintAddress may be empty;
// claims then fail with a configuration error instead of the service refusing to start.
type Token struct {
	FeePayerKeypair string
	MintAddress     string
	Decimals        uint8
	Program         string
}

// Badge configures the pending-count poller. Without AuthToken a token is
// minted for UserID with JWTSecret.
type Badge struct {
	APIURL       string
	AuthToken    string
	UserID       string
	JWTSecret    string
	PollInterval time.Duration
}

// LoadDotEnv loads a .env file from the working directory when one exists.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env file: %w", err)
	}
	return nil
}

func NewApp() (App, error) {
	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	rpcURL := getEnv(rpcURLEnvKey, defaultRPCURL)

	skipPreflight, err := getBool(skipPreflightEnvKey, true)
	if err != nil {
		return App{}, err
	}

	confirmTimeout, err := getDuration(confirmTimeoutEnvKey, defaultConfirmTimeout)
	if err != nil {
		return App{}, err
	}

	decimals, err := getUint8(tokenDecimalsEnvKey, defaultTokenDecimals)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		Ledger: Ledger{
			RPCURL:         rpcURL,
			WSURL:          getEnv(wsURLEnvKey, ""),
			SkipPreflight:  skipPreflight,
			ConfirmTimeout: confirmTimeout,
		},
		Token: Token{
			FeePayerKeypair: getEnv(feePayerEnvKey, ""),
			MintAddress:     getEnv(tokenMintEnvKey, ""),
			Decimals:        decimals,
			Program:         getEnv(tokenProgramEnvKey, defaultTokenProgram),
		},
	}, nil
}

func NewBadge() (Badge, error) {
	apiURL, ok := os.LookupEnv(badgeAPIURLEnvKey)
	if !ok {
		return Badge{}, fmt.Errorf("%w: %s", errEnvVarNotFound, badgeAPIURLEnvKey)
	}

	token := getEnv(badgeTokenEnvKey, "")
	userID := getEnv(badgeUserEnvKey, "")
	jwtSecret := getEnv(jwtSecretEnvKey, "")
	if token == "" && (userID == "" || jwtSecret == "") {
		return Badge{}, fmt.Errorf("%w: %s or %s with %s", errEnvVarNotFound, badgeTokenEnvKey, badgeUserEnvKey, jwtSecretEnvKey)
	}

	interval, err := getDuration(badgeIntervalEnvKey, defaultBadgeInterval)
	if err != nil {
		return Badge{}, err
	}

	return Badge{
		APIURL:       apiURL,
		AuthToken:    token,
		UserID:       userID,
		JWTSecret:    jwtSecret,
		PollInterval: interval,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", errEnvVarInvalid, key, err)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errEnvVarInvalid, key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s: must be positive", errEnvVarInvalid, key)
	}
	return d, nil
}

func getUint8(key string, fallback uint8) (uint8, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(value, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errEnvVarInvalid, key, err)
	}
	return uint8(n), nil
}
