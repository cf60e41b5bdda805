// Package apierr defines the closed error taxonomy for the Pi-hole client and
// the classification rules that map HTTP statuses, backend error keys, and
// transport failures onto it.
package apierr

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Kind is the stable taxonomy code attached to every failure.
// The set is closed; callers branch on Kind instead of parsing messages.
type Kind string

// Authentication kinds.
const (
	Unauthorized   Kind = "unauthorized"
	TotpRequired   Kind = "totp_required"
	InvalidTotp    Kind = "invalid_totp"
	SessionExpired Kind = "session_expired"
)

// Transport kinds.
const (
	NetworkError      Kind = "network_error"
	Timeout           Kind = "timeout"
	ConnectionRefused Kind = "connection_refused"
	CertificateError  Kind = "certificate_error"
)

// Client-side 4xx kinds.
const (
	BadRequest      Kind = "bad_request"
	NotFound        Kind = "not_found"
	Conflict        Kind = "conflict"
	ValidationError Kind = "validation_error"
)

// Server-side 5xx and catch-all kinds.
const (
	ServerError        Kind = "server_error"
	ServiceUnavailable Kind = "service_unavailable"
	ParseError         Kind = "parse_error"
	Unknown            Kind = "unknown"
)

// Error is the uniform failure value carried inside a Result.
// Status is 0 for failures that happened before an HTTP response was
// received. Key preserves the raw backend error key for diagnostics.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Hint    string
	Key     string

	// RetryAfter carries the server's Retry-After signal, when present,
	// so the retry orchestrator can honor it instead of computed backoff.
	RetryAfter time.Duration
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("pihole: %s (HTTP %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("pihole: %s: %s", e.Kind, e.Message)
}

// New constructs an Error with the given kind, status, and message.
func New(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message}
}

// As extracts an *Error from err, if it carries one.
func As(err error) (*Error, bool) {
	var apiErr *Error
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// KindOf returns the taxonomy kind of err, or Unknown for foreign errors.
func KindOf(err error) Kind {
	if apiErr, ok := As(err); ok {
		return apiErr.Kind
	}
	return Unknown
}

// FromStatus maps a non-success HTTP status onto the taxonomy.
func FromStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return BadRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		return Unauthorized
	case http.StatusNotFound:
		return NotFound
	case http.StatusConflict:
		return Conflict
	case http.StatusUnprocessableEntity:
		return ValidationError
	case http.StatusInternalServerError:
		return ServerError
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ServiceUnavailable
	}

	switch {
	case status >= 400 && status < 500:
		return BadRequest
	case status >= 500:
		return ServerError
	}
	return Unknown
}

// FromKey maps a backend error key onto the taxonomy. A recognized key takes
// precedence over the raw status mapping.
func FromKey(key string) Kind {
	switch key {
	case "unauthorized", "auth_failed":
		return Unauthorized
	case "totp_required":
		return TotpRequired
	case "bad_totp":
		return InvalidTotp
	case "session_expired":
		return SessionExpired
	case "not_found":
		return NotFound
	case "conflict":
		return Conflict
	case "bad_request":
		return BadRequest
	}
	return Unknown
}

// IsRetryable reports whether retrying an attempt that failed with kind can
// change the outcome. Client-side 4xx kinds, auth kinds, and parse errors
// are final.
func IsRetryable(kind Kind) bool {
	switch kind {
	case NetworkError, Timeout, ServiceUnavailable, ServerError:
		return true
	}
	return false
}

// IsAuthError reports whether kind means the session is no longer usable and
// the facade's reauthentication path should trigger.
func IsAuthError(kind Kind) bool {
	switch kind {
	case Unauthorized, SessionExpired, TotpRequired:
		return true
	}
	return false
}

// FromRequestError classifies a transport-level failure (no HTTP response was
// received) by pattern-matching the error. Status is always 0.
func FromRequestError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return New(Timeout, 0, "request timed out")
	}
	if errors.Is(err, context.Canceled) {
		return New(NetworkError, 0, "request canceled")
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return New(ConnectionRefused, 0, "connection refused")
	case strings.Contains(msg, "certificate") || strings.Contains(msg, "x509"):
		e := New(CertificateError, 0, msg)
		e.Hint = "the server uses a self-signed certificate; enable InsecureSkipVerify or trust the certificate"
		return e
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded"):
		return New(Timeout, 0, msg)
	case strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "network") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "dial tcp"):
		return New(NetworkError, 0, msg)
	}
	return New(Unknown, 0, msg)
}
