// Package native is the accelerated backend, built on fasthttp's pooled
// client. The factory tries this implementation first and falls back to
// src/fallback when construction fails.
package native

import (
	"encoding/json"
	"net/url"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/TTRSQ/hlcw/hlerr"
	"github.com/TTRSQ/hlcw/interface/backend"
)

type native struct {
	cfg    backend.Config
	client *fasthttp.Client
	log    *zap.Logger
}

// New returns the accelerated backend.
func New(cfg backend.Config) (backend.Backend, error) {
	cfg = cfg.WithDefaults()
	if err := checkBaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	return &native{
		cfg: cfg,
		client: &fasthttp.Client{
			MaxConnsPerHost: cfg.MaxConnsPerHost,
			ReadTimeout:     cfg.ConnectTimeout,
			WriteTimeout:    cfg.ConnectTimeout,
		},
		log: cfg.Log(),
	}, nil
}

func checkBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return hlerr.Validationf("invalid base url %q", raw)
	}
	return nil
}

func (n *native) Name() string { return "native" }

func (n *native) Config() backend.Config { return n.cfg }

func (n *native) Post(endpoint string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, hlerr.Validationf("cannot marshal %s payload: %v", endpoint, err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(n.cfg.BaseURL + "/" + endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	if err := n.client.DoTimeout(req, resp, n.cfg.ConnectTimeout); err != nil {
		n.log.Debug("request failed",
			zap.String("backend", "native"),
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, hlerr.FromTransport(err)
	}

	status := resp.StatusCode()
	n.log.Debug("request done",
		zap.String("backend", "native"),
		zap.String("endpoint", endpoint),
		zap.Int("status", status))

	retryAfter := string(resp.Header.Peek(fasthttp.HeaderRetryAfter))
	if err := hlerr.FromStatus(status, fasthttp.StatusMessage(status), retryAfter); err != nil {
		return nil, err
	}

	// The response buffer is pooled; hand the caller its own copy.
	out := make([]byte, len(resp.Body()))
	copy(out, resp.Body())
	return out, nil
}
