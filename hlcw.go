// Package hlcw is a Hyperliquid HTTP API client. One Client serves both the
// market-data ("info") and order-management ("exchange") endpoints through a
// backend chosen once at construction: the accelerated fasthttp backend when
// it can be built, the portable net/http one otherwise.
package hlcw

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/TTRSQ/hlcw/hlerr"
	"github.com/TTRSQ/hlcw/interface/backend"
	"github.com/TTRSQ/hlcw/src/fallback"
	"github.com/TTRSQ/hlcw/src/native"
)

// Client is the public surface. It holds no mutable state beyond the backend
// reference fixed at construction, so it is safe for concurrent use. Calls
// are never retried here; retry policy belongs to the caller, guided by
// hlerr.Retryable.
type Client struct {
	backend backend.Backend
	log     *zap.Logger
}

// Option configures New.
type Option func(*options)

type options struct {
	cfg           backend.Config
	forceFallback bool
}

// WithBaseURL points the client at a custom API root.
func WithBaseURL(u string) Option {
	return func(o *options) { o.cfg.BaseURL = u }
}

// WithTestnet points the client at the testnet API.
func WithTestnet() Option {
	return func(o *options) { o.cfg.BaseURL = backend.TestnetURL }
}

// WithMaxConnsPerHost bounds the backend connection pool.
func WithMaxConnsPerHost(n int) Option {
	return func(o *options) { o.cfg.MaxConnsPerHost = n }
}

// WithConnectTimeout bounds each request.
func WithConnectTimeout(d time.Duration) Option {
	return func(o *options) { o.cfg.ConnectTimeout = d }
}

// WithLogger enables per-request debug logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.cfg.Logger = l }
}

// WithFallback skips the accelerated backend.
func WithFallback() Option {
	return func(o *options) { o.forceFallback = true }
}

// New builds a Client against mainnet unless overridden. The accelerated
// backend is tried once; if its construction fails the portable backend is
// built from the same config. The choice is never revisited.
func New(opts ...Option) (*Client, error) {
	o := options{cfg: backend.Config{BaseURL: backend.MainnetURL}}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.forceFallback {
		b, err := native.New(o.cfg)
		if err == nil {
			return NewWithBackend(b), nil
		}
		o.cfg.Log().Debug("native backend unavailable, using fallback", zap.Error(err))
	}
	b, err := fallback.New(o.cfg)
	if err != nil {
		return nil, err
	}
	return NewWithBackend(b), nil
}

// NewWithBackend builds a Client around an explicit backend. Useful for
// tests and for callers that construct backends themselves.
func NewWithBackend(b backend.Backend) *Client {
	return &Client{backend: b, log: b.Config().Log()}
}

// Backend exposes the chosen backend, mainly so callers can log which
// implementation they ended up with.
func (c *Client) Backend() backend.Backend { return c.backend }

// postInfo posts one info payload and decodes the body into out. A 2xx body
// that does not match out's shape is a validation failure, never a silent
// zero value.
func (c *Client) postInfo(op string, payload, out any) error {
	body, err := c.backend.Post(backend.EndpointInfo, payload)
	if err != nil {
		return hlerr.Wrap(op, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return hlerr.Wrap(op, hlerr.Validationf("unexpected response shape: %v", err))
	}
	return nil
}

// postExchange posts one action payload. Action results are decoded
// opaquely: JSON validity is checked, the schema is not.
func (c *Client) postExchange(op string, payload any) (json.RawMessage, error) {
	body, err := c.backend.Post(backend.EndpointExchange, payload)
	if err != nil {
		return nil, hlerr.Wrap(op, err)
	}
	if !json.Valid(body) {
		return nil, hlerr.Wrap(op, hlerr.Validationf("response is not valid JSON"))
	}
	return json.RawMessage(body), nil
}
