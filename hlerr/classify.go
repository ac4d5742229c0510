package hlerr

import (
	"context"
	"errors"
	"os"
)

// FromTransport classifies an error returned by the HTTP transport before
// any response was produced. Deadline failures become KindTimeout, anything
// else at the connection level becomes KindNetwork.
func FromTransport(err error) error {
	if err == nil {
		return nil
	}
	if isTimeout(err) {
		return &Error{Kind: KindTimeout, Err: err}
	}
	return &Error{Kind: KindNetwork, Err: err}
}

func isTimeout(err error) bool {
	// Covers net.Error and transports that only implement Timeout(),
	// like fasthttp's timeout error.
	var t interface{ Timeout() bool }
	if errors.As(err, &t) && t.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded)
}

// FromStatus classifies an HTTP response status. reason is the status's
// standard text, retryAfter the verbatim retry-after header ("" when
// absent). Returns nil for any 2xx status; first match wins:
//
//	429          rate limited, hint attached
//	401, 403     authentication
//	>= 500       server error
//	other        client error
func FromStatus(status int, reason, retryAfter string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == 429:
		if retryAfter == "" {
			retryAfter = RetryAfterUnknown
		}
		return &Error{Kind: KindRateLimited, Status: status, Reason: reason, RetryAfter: retryAfter}
	case status == 401 || status == 403:
		return &Error{Kind: KindAuthentication, Status: status, Reason: reason}
	case status >= 500:
		return &Error{Kind: KindServer, Status: status, Reason: reason}
	default:
		return &Error{Kind: KindClient, Status: status, Reason: reason}
	}
}
