// Package hlerr defines the error taxonomy shared by every backend and the
// client surface. Failures are classified once, at the point they are
// observed, into a fixed set of kinds so callers can branch on kind instead
// of matching message text.
package hlerr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNetwork is a connection-level failure (DNS, refused, reset).
	KindNetwork
	// KindTimeout is an elapsed-deadline failure.
	KindTimeout
	// KindRateLimited is HTTP 429. RetryAfter carries the server's hint.
	KindRateLimited
	// KindAuthentication is HTTP 401 or 403.
	KindAuthentication
	// KindServer is any HTTP status >= 500.
	KindServer
	// KindClient is any other non-2xx HTTP status.
	KindClient
	// KindValidation is a caller-side defect: a bad order, mutually
	// exclusive ids both set, or a 2xx body that does not decode.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindRateLimited:
		return "rate_limited"
	case KindAuthentication:
		return "authentication"
	case KindServer:
		return "server"
	case KindClient:
		return "client"
	case KindValidation:
		return "validation"
	}
	return "unknown"
}

// RetryAfterUnknown is carried by a rate-limit error when the server sent no
// retry-after header.
const RetryAfterUnknown = "unknown"

// Error is the single error type produced by this library.
type Error struct {
	Kind       Kind
	Status     int    // HTTP status, when the failure came from a response
	Reason     string // standard status text or a validation message
	RetryAfter string // verbatim retry-after header for KindRateLimited
	Op         string // operation that failed, e.g. "get meta"
	Err        error  // underlying transport error, if any
}

func (e *Error) Error() string {
	msg := e.message()
	if e.Op != "" {
		return fmt.Sprintf("failed to %s: %s", e.Op, msg)
	}
	return msg
}

func (e *Error) message() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("network error: %v", e.Err)
	case KindTimeout:
		return fmt.Sprintf("request timed out: %v", e.Err)
	case KindRateLimited:
		reason := e.Reason
		if reason == "" {
			reason = "rate limit exceeded"
		}
		return fmt.Sprintf("HTTP %d: %s (retry after %s)", e.Status, reason, e.RetryAfter)
	case KindAuthentication:
		return fmt.Sprintf("HTTP %d: authentication failed", e.Status)
	case KindServer:
		return fmt.Sprintf("HTTP %d: server error: %s", e.Status, e.Reason)
	case KindClient:
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Reason)
	case KindValidation:
		return fmt.Sprintf("validation error: %s", e.Reason)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Reason
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Retryable reports whether a caller-side retry of the failed call can
// succeed without changing the request. Retry timing is the caller's policy;
// this layer never retries.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindNetwork, KindTimeout, KindRateLimited, KindServer:
		return true
	}
	return false
}

// Validationf builds a KindValidation error.
func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Reason: fmt.Sprintf(format, args...)}
}

// Wrap attaches the operation name to err, preserving its kind. Foreign
// errors come back as KindUnknown so nothing is silently reclassified.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		dup := *e
		dup.Op = op
		return &dup
	}
	return &Error{Kind: KindUnknown, Op: op, Err: err}
}
