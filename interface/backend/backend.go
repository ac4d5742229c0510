// Package backend defines the capability contract every HTTP backend
// implements. The client is written against this interface only, so the
// accelerated and portable implementations can be swapped transparently.
package backend

import (
	"time"

	"go.uber.org/zap"
)

// The two logical endpoints of the exchange API.
const (
	EndpointInfo     = "info"
	EndpointExchange = "exchange"
)

// Config defaults.
const (
	DefaultMaxConnsPerHost = 10
	DefaultConnectTimeout  = 30 * time.Second
)

// Well-known base URLs.
const (
	MainnetURL = "https://api.hyperliquid.xyz"
	TestnetURL = "https://api.hyperliquid-testnet.xyz"
)

// Config carries everything a backend needs. It is passed by value and
// never changes after the backend is constructed.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string

	// MaxConnsPerHost bounds the connection pool. Zero means
	// DefaultMaxConnsPerHost.
	MaxConnsPerHost int

	// ConnectTimeout bounds the whole request, connect included. Zero
	// means DefaultConnectTimeout.
	ConnectTimeout time.Duration

	// Logger receives per-request debug logs. Nil means no logging.
	Logger *zap.Logger
}

// WithDefaults fills the zero fields.
func (c Config) WithDefaults() Config {
	if c.MaxConnsPerHost <= 0 {
		c.MaxConnsPerHost = DefaultMaxConnsPerHost
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	return c
}

// Log returns the configured logger, or a nop one.
func (c Config) Log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Backend posts one JSON payload to one logical endpoint and returns the raw
// response body. Implementations classify every failure through hlerr and do
// not validate the body beyond receiving it; per-endpoint decoding belongs
// to the client. Parity contract: for a given endpoint and payload, every
// implementation must produce the same success body and the same error kind,
// modulo latency.
type Backend interface {
	Post(endpoint string, payload any) ([]byte, error)
	Name() string
	Config() Config
}
