// Package stub is an in-memory Backend for tests. It records every payload
// it receives and replies with canned bodies, so client behavior can be
// checked without a network.
package stub

import (
	"encoding/json"
	"sync"

	"github.com/TTRSQ/hlcw/interface/backend"
)

// Request is one recorded call.
type Request struct {
	Endpoint string
	Payload  json.RawMessage
}

// Stub implements backend.Backend.
type Stub struct {
	mu        sync.Mutex
	cfg       backend.Config
	responses map[string]string
	err       error
	requests  []Request
}

// New returns an empty stub; every endpoint answers "{}" until Respond or
// Fail is called.
func New() *Stub {
	return &Stub{
		cfg:       backend.Config{BaseURL: "stub://local"}.WithDefaults(),
		responses: map[string]string{},
	}
}

// Respond sets the canned body for an endpoint.
func (s *Stub) Respond(endpoint, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[endpoint] = body
}

// Fail makes every Post return err.
func (s *Stub) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Requests returns a copy of the recorded calls.
func (s *Stub) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Stub) Name() string { return "stub" }

func (s *Stub) Config() backend.Config { return s.cfg }

func (s *Stub) Post(endpoint string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, Request{Endpoint: endpoint, Payload: raw})
	if s.err != nil {
		return nil, s.err
	}
	body, ok := s.responses[endpoint]
	if !ok {
		body = "{}"
	}
	return []byte(body), nil
}
