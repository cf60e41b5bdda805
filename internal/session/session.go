// Package session owns the authenticated relationship with the Pi-hole
// backend: the session identifier, anti-forgery token, expiry, and the
// pending two-factor flag. It is the only component that mutates shared
// state, and it serializes concurrent authentication through a single
// in-flight attempt.
package session

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/lexfrei/go-pihole/apierr"
	"github.com/lexfrei/go-pihole/observability"
	"github.com/lexfrei/go-pihole/result"
	"github.com/lexfrei/go-pihole/internal/transport"
)

// AuthPath is the Pi-hole authentication endpoint, relative to the API base.
const AuthPath = "/auth"

// Auth header names required on every authenticated call.
const (
	HeaderSID  = "X-FTL-SID"
	HeaderCSRF = "X-FTL-CSRF"
)

// DefaultRefreshThreshold is how long before expiry a session is refreshed.
const DefaultRefreshThreshold = 60 * time.Second

// Executor issues requests on behalf of the manager. Login and logout are
// non-idempotent, so the manager always marks its descriptors NoRetry.
type Executor interface {
	Execute(ctx context.Context, desc transport.Descriptor, auth http.Header) result.Result[json.RawMessage]
}

// Session is the authenticated state. A populated session has a non-empty
// SID and CSRF with a future expiry; a two-factor-pending session has both
// empty, an elapsed expiry, and TotpPending set. The two shapes never mix.
type Session struct {
	SID         string
	CSRF        string
	ExpiresAt   time.Time
	TotpPending bool
}

// Config configures a Manager.
type Config struct {
	Executor         Executor
	Password         string
	SID              string // optional pre-existing session identifier
	CSRF             string // optional pre-existing anti-forgery token
	AutoRefresh      bool
	RefreshThreshold time.Duration
	Logger           observability.Logger
	Metrics          observability.MetricsRecorder

	// Now overrides the clock, used by tests.
	Now func() time.Time
}

// Manager holds the live session and the credential, and deduplicates
// concurrent authentication attempts.
type Manager struct {
	mu       sync.Mutex
	session  *Session
	password string

	exec             Executor
	autoRefresh      bool
	refreshThreshold time.Duration
	logger           observability.Logger
	metrics          observability.MetricsRecorder
	now              func() time.Time

	group singleflight.Group
}

// NewManager creates a Manager from cfg. A pre-existing SID/CSRF pair is
// adopted with an unknown expiry far in the future; the facade's 401
// recovery replaces it once the server rejects it.
func NewManager(cfg Config) *Manager {
	if cfg.Logger == nil {
		cfg.Logger = observability.NoopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NoopMetricsRecorder()
	}
	if cfg.RefreshThreshold <= 0 {
		cfg.RefreshThreshold = DefaultRefreshThreshold
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	m := &Manager{
		password:         cfg.Password,
		exec:             cfg.Executor,
		autoRefresh:      cfg.AutoRefresh,
		refreshThreshold: cfg.RefreshThreshold,
		logger:           cfg.Logger,
		metrics:          cfg.Metrics,
		now:              cfg.Now,
	}
	if cfg.SID != "" {
		m.session = &Session{
			SID:       cfg.SID,
			CSRF:      cfg.CSRF,
			ExpiresAt: cfg.Now().Add(24 * time.Hour),
		}
	}
	return m
}

// SetPassword replaces the stored credential. The credential is held in
// memory only and never logged.
func (m *Manager) SetPassword(password string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.password = password
}

// SetSession adopts an existing sid/csrf pair with the given validity.
func (m *Manager) SetSession(sid, csrf string, validity time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = &Session{SID: sid, CSRF: csrf, ExpiresAt: m.now().Add(validity)}
}

// HasSession reports whether a session exists and its expiry is in the future.
func (m *Manager) HasSession() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hasSessionLocked()
}

func (m *Manager) hasSessionLocked() bool {
	return m.session != nil && m.session.SID != "" && m.now().Before(m.session.ExpiresAt)
}

// NeedsRefresh reports whether auto-refresh is enabled, a session exists,
// and now is within the refresh threshold of its expiry.
func (m *Manager) NeedsRefresh() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.needsRefreshLocked()
}

func (m *Manager) needsRefreshLocked() bool {
	if !m.autoRefresh || m.session == nil || m.session.SID == "" {
		return false
	}
	return !m.now().Before(m.session.ExpiresAt.Add(-m.refreshThreshold))
}

// IsTotpRequired reports whether the last authentication attempt was rejected
// pending a two-factor code.
func (m *Manager) IsTotpRequired() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session != nil && m.session.TotpPending
}

// AuthHeaders returns the session and anti-forgery headers, or false when no
// session material exists and the request cannot be authenticated.
func (m *Manager) AuthHeaders() (http.Header, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil || m.session.SID == "" {
		return nil, false
	}
	headers := make(http.Header, 2)
	headers.Set(HeaderSID, m.session.SID)
	headers.Set(HeaderCSRF, m.session.CSRF)
	return headers, true
}

// Clear discards the local session state.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
}

// EnsureSession makes sure a usable session exists, authenticating when
// necessary. Concurrent callers needing authentication share a single
// in-flight login attempt and all observe its outcome.
func (m *Manager) EnsureSession(ctx context.Context) bool {
	m.mu.Lock()
	if m.hasSessionLocked() && !m.needsRefreshLocked() {
		m.mu.Unlock()
		return true
	}
	m.mu.Unlock()

	outcome, _, _ := m.group.Do("auth", func() (any, error) {
		// Re-check: a caller that lost the race may arrive after the
		// winning attempt already installed a fresh session.
		m.mu.Lock()
		if m.hasSessionLocked() && !m.needsRefreshLocked() {
			m.mu.Unlock()
			return true, nil
		}
		m.mu.Unlock()
		return m.Authenticate(ctx, ""), nil
	})
	ok, _ := outcome.(bool)
	return ok
}

// loginRequest is the authentication request body. The password is never
// logged or serialized anywhere else.
type loginRequest struct {
	Password string `json:"password"`
	TOTP     string `json:"totp,omitempty"`
}

// authResponse is the backend's session envelope.
type authResponse struct {
	Session struct {
		Valid    bool   `json:"valid"`
		Totp     bool   `json:"totp"`
		Sid      string `json:"sid"`
		Csrf     string `json:"csrf"`
		Validity int    `json:"validity"`
		Message  string `json:"message"`
	} `json:"session"`
}

// Authenticate performs one login attempt with the stored credential and an
// optional TOTP code. Login is non-idempotent and never retried. On success
// the session is replaced wholesale; a TotpRequired rejection leaves an inert
// two-factor-pending session; any other failure clears the session.
func (m *Manager) Authenticate(ctx context.Context, totp string) bool {
	m.mu.Lock()
	password := m.password
	m.mu.Unlock()

	if password == "" {
		m.logger.Debug("authentication skipped, no credential configured")
		return false
	}

	desc := transport.Descriptor{
		Method:  http.MethodPost,
		Path:    AuthPath,
		Body:    loginRequest{Password: password, TOTP: totp},
		NoRetry: true,
	}
	res := m.exec.Execute(ctx, desc, nil)
	if res.IsErr() {
		m.failAuth(res.Err())
		return false
	}

	var parsed authResponse
	if err := json.Unmarshal(res.Unwrap(), &parsed); err != nil {
		m.logger.Error("failed to decode auth response",
			observability.Field{Key: "error", Value: err.Error()})
		m.Clear()
		m.metrics.RecordAuthRefresh(false)
		return false
	}

	if parsed.Session.Sid == "" {
		if parsed.Session.Totp {
			m.setTotpPending()
		} else {
			m.Clear()
		}
		m.metrics.RecordAuthRefresh(false)
		return false
	}

	expiry := m.now().Add(time.Duration(parsed.Session.Validity) * time.Second)
	m.mu.Lock()
	m.session = &Session{
		SID:       parsed.Session.Sid,
		CSRF:      parsed.Session.Csrf,
		ExpiresAt: expiry,
	}
	m.mu.Unlock()

	m.logger.Info("authenticated",
		observability.Field{Key: "validity", Value: parsed.Session.Validity})
	m.metrics.RecordAuthRefresh(true)
	return true
}

func (m *Manager) failAuth(err error) {
	if apierr.KindOf(err) == apierr.TotpRequired {
		m.setTotpPending()
	} else {
		m.Clear()
	}
	m.logger.Warn("authentication failed",
		observability.Field{Key: "kind", Value: string(apierr.KindOf(err))})
	m.metrics.RecordAuthRefresh(false)
}

func (m *Manager) setTotpPending() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = &Session{ExpiresAt: m.now().Add(-time.Second), TotpPending: true}
}

// Logout revokes the session server-side and always clears local state, so
// local state never outlives server validity from the caller's perspective.
// A 401 means the server already dropped the session and counts as success.
func (m *Manager) Logout(ctx context.Context) bool {
	headers, ok := m.AuthHeaders()
	if !ok {
		m.Clear()
		return true
	}

	desc := transport.Descriptor{
		Method:  http.MethodDelete,
		Path:    AuthPath,
		NoRetry: true,
	}
	res := m.exec.Execute(ctx, desc, headers)
	m.Clear()

	if res.IsOk() {
		return true
	}
	if apiErr, isAPIErr := apierr.As(res.Err()); isAPIErr && apiErr.Status == http.StatusUnauthorized {
		return true
	}
	m.logger.Warn("logout failed server-side, local session cleared",
		observability.Field{Key: "kind", Value: string(apierr.KindOf(res.Err()))})
	return false
}

// HandleUnauthorized discards the current session and performs one fresh
// authentication without a TOTP code. The facade uses it for its single
// 401 recovery cycle.
func (m *Manager) HandleUnauthorized(ctx context.Context) bool {
	m.Clear()
	return m.Authenticate(ctx, "")
}
