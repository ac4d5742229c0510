package hlcw

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/TTRSQ/hlcw/interface/backend"
)

// Environment variables read by NewFromEnv. Priority: ENV > .env > defaults.
const (
	EnvBaseURL       = "HLCW_BASE_URL"
	EnvNetwork       = "HLCW_NETWORK" // "mainnet" or "testnet"
	EnvMaxConns      = "HLCW_MAX_CONNS"
	EnvTimeoutMs     = "HLCW_TIMEOUT_MS"
	EnvForceFallback = "HLCW_FORCE_FALLBACK"
)

// ConfigFromEnv reads the backend config from the environment, merging in a
// .env file when envPath names one ("" tries ./.env, missing files are
// fine). The file is read, not exported: the process environment is never
// mutated, so repeated calls are independent.
func ConfigFromEnv(envPath string) backend.Config {
	vars := readDotenv(envPath)

	cfg := backend.Config{BaseURL: backend.MainnetURL}
	if envValue(vars, EnvNetwork) == "testnet" {
		cfg.BaseURL = backend.TestnetURL
	}
	if v := envValue(vars, EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := envValue(vars, EnvMaxConns); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxConnsPerHost = n
		}
	}
	if v := envValue(vars, EnvTimeoutMs); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.ConnectTimeout = time.Duration(ms) * time.Millisecond
		}
	}
	return cfg
}

// NewFromEnv is New with the config taken from the environment.
func NewFromEnv(envPath string, opts ...Option) (*Client, error) {
	vars := readDotenv(envPath)
	cfg := ConfigFromEnv(envPath)
	base := []Option{
		WithBaseURL(cfg.BaseURL),
		WithMaxConnsPerHost(cfg.MaxConnsPerHost),
		WithConnectTimeout(cfg.ConnectTimeout),
	}
	if forced, _ := strconv.ParseBool(envValue(vars, EnvForceFallback)); forced {
		base = append(base, WithFallback())
	}
	return New(append(base, opts...)...)
}

func readDotenv(envPath string) map[string]string {
	if envPath == "" {
		envPath = ".env"
	}
	vars, err := godotenv.Read(envPath)
	if err != nil {
		return nil
	}
	return vars
}

// envValue resolves one key with the documented priority: a set process
// variable wins over the .env file.
func envValue(fileVars map[string]string, key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fileVars[key]
}
