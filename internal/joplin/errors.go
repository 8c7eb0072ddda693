package joplin

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// APIError is a non-2xx response from the Joplin API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("joplin api: status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("joplin api: status %d", e.StatusCode)
}

// IsConnectFailure reports whether err is a failure to reach the service at
// all: connection refused or an error while dialing. These are the only
// errors the auto-launch retry applies to.
func IsConnectFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// IsTimeout reports a request-level deadline, distinct from a connect
// failure.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
