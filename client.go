package pihole

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/lexfrei/go-pihole/apierr"
	"github.com/lexfrei/go-pihole/internal/httpclient"
	"github.com/lexfrei/go-pihole/internal/middleware"
	"github.com/lexfrei/go-pihole/internal/retry"
	"github.com/lexfrei/go-pihole/internal/session"
	"github.com/lexfrei/go-pihole/internal/transport"
	"github.com/lexfrei/go-pihole/observability"
	"github.com/lexfrei/go-pihole/result"
)

const (
	// DefaultTimeout is the default per-attempt request timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxRetries is the default number of retries for failed requests.
	DefaultMaxRetries = 3
	// DefaultRetryDelayBase is the default initial backoff delay.
	DefaultRetryDelayBase = 1 * time.Second
	// DefaultRetryDelayMax is the ceiling on the backoff delay.
	DefaultRetryDelayMax = 10 * time.Second
	// DefaultBackoffMultiplier is the default backoff growth factor.
	DefaultBackoffMultiplier = 2.0

	// DefaultRefreshThreshold is how long before expiry the session is
	// refreshed proactively.
	DefaultRefreshThreshold = 60 * time.Second
)

// ClientConfig holds configuration for the Pi-hole API client.
type ClientConfig struct {
	// BaseURL is the API base, e.g. "http://pi.hole/api" or
	// "https://192.168.1.2/api". Trailing slashes are stripped. When left
	// empty every request fails with a BadRequest taxonomy error before any
	// network attempt.
	BaseURL string

	// Password is the web interface password used to obtain sessions.
	// It is held in memory only and never logged.
	Password string

	// SessionID and CSRFToken adopt a pre-existing session instead of
	// logging in (optional).
	SessionID string
	CSRFToken string

	// Timeout is the per-attempt request timeout (defaults to 10s).
	Timeout time.Duration

	// MaxRetries sets the maximum number of retries for failed requests.
	MaxRetries int

	// RetryDelayBase, RetryDelayMax, and BackoffMultiplier shape the
	// exponential backoff between retry attempts.
	RetryDelayBase    time.Duration
	RetryDelayMax     time.Duration
	BackoffMultiplier float64

	// DisableAutoRefresh turns off proactive session refresh near expiry.
	DisableAutoRefresh bool

	// RefreshThreshold sets how long before expiry the session is refreshed
	// (defaults to 60s).
	RefreshThreshold time.Duration

	// InsecureSkipVerify disables TLS certificate verification, for
	// installations with self-signed certificates.
	InsecureSkipVerify bool

	// HTTPClient is the HTTP client to use (optional).
	HTTPClient *http.Client

	// Logger for observability (optional, uses noop logger if nil).
	Logger observability.Logger

	// Metrics recorder for observability (optional, uses noop recorder if nil).
	Metrics observability.MetricsRecorder
}

// Client is a Pi-hole API client. It is safe for concurrent use; the session
// is the only shared mutable state and its updates are serialized internally.
type Client struct {
	baseURL string
	retry   *retry.Orchestrator
	session *session.Manager
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

// New creates a Pi-hole client with default settings.
//
// The client logs in lazily: the first request authenticates with the given
// password and later requests reuse the session until it nears expiry.
//
// Example:
//
//	client, err := pihole.New("http://pi.hole/api", "your-password")
func New(baseURL, password string) (*Client, error) {
	return NewWithConfig(&ClientConfig{
		BaseURL:  baseURL,
		Password: password,
	})
}

// NewWithConfig creates a Pi-hole client with custom configuration.
func NewWithConfig(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryDelayBase == 0 {
		cfg.RetryDelayBase = DefaultRetryDelayBase
	}
	if cfg.RetryDelayMax == 0 {
		cfg.RetryDelayMax = DefaultRetryDelayMax
	}
	if cfg.BackoffMultiplier == 0 {
		cfg.BackoffMultiplier = DefaultBackoffMultiplier
	}
	if cfg.RefreshThreshold == 0 {
		cfg.RefreshThreshold = DefaultRefreshThreshold
	}
	if cfg.Logger == nil {
		cfg.Logger = observability.NoopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NoopMetricsRecorder()
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	clientOpts := []httpclient.Option{
		httpclient.WithMiddleware(middleware.Observability(cfg.Logger, cfg.Metrics)),
	}
	if cfg.HTTPClient != nil {
		clientOpts = append(clientOpts, httpclient.WithHTTPClient(cfg.HTTPClient))
	}
	if cfg.InsecureSkipVerify {
		clientOpts = append(clientOpts,
			httpclient.WithMiddleware(middleware.TLSConfig(middleware.InsecureSkipVerify())))
	}
	httpClient := httpclient.New(clientOpts...)

	trans := transport.New(baseURL, httpClient.HTTPClient(), cfg.Timeout, cfg.Logger)

	orchestrator := retry.New(retry.Config{
		Transport: trans,
		Policy: retry.Policy{
			MaxRetries: cfg.MaxRetries,
			DelayBase:  cfg.RetryDelayBase,
			DelayMax:   cfg.RetryDelayMax,
			Multiplier: cfg.BackoffMultiplier,
		},
		Logger:  cfg.Logger,
		Metrics: cfg.Metrics,
	})

	sessions := session.NewManager(session.Config{
		Executor:         orchestrator,
		Password:         cfg.Password,
		SID:              cfg.SessionID,
		CSRF:             cfg.CSRFToken,
		AutoRefresh:      !cfg.DisableAutoRefresh,
		RefreshThreshold: cfg.RefreshThreshold,
		Logger:           cfg.Logger,
		Metrics:          cfg.Metrics,
	})

	return &Client{
		baseURL: baseURL,
		retry:   orchestrator,
		session: sessions,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}, nil
}

// RequestOptions tune a single request issued through the facade.
type RequestOptions struct {
	// Headers are merged over the default and auth headers.
	Headers http.Header

	// Timeout overrides the client's per-attempt timeout when non-zero.
	Timeout time.Duration

	// NoRetry marks a non-idempotent operation that must make exactly one
	// attempt regardless of outcome.
	NoRetry bool
}

// Request is the single entry point used by all endpoint wrappers: it ensures
// a valid session exists, executes the request with retry, and recovers
// exactly once from an unexpected 401 by reauthenticating and replaying the
// request. The success value is the raw JSON response body.
func (c *Client) Request(ctx context.Context, method, path string, body any) result.Result[json.RawMessage] {
	return c.RequestWithOptions(ctx, method, path, body, RequestOptions{})
}

// RequestWithOptions is Request with per-call options.
func (c *Client) RequestWithOptions(ctx context.Context, method, path string, body any, opts RequestOptions) result.Result[json.RawMessage] {
	if c.baseURL == "" {
		return result.Err[json.RawMessage](apierr.New(apierr.BadRequest, 0, "base URL is not configured"))
	}

	if !c.session.EnsureSession(ctx) {
		err := apierr.New(apierr.Unauthorized, 0, "authentication required")
		c.metrics.RecordError(method+" "+path, string(err.Kind))
		return result.Err[json.RawMessage](err)
	}

	desc := transport.Descriptor{
		Method:  method,
		Path:    path,
		Body:    body,
		Headers: opts.Headers,
		Timeout: opts.Timeout,
		NoRetry: opts.NoRetry,
	}

	headers, _ := c.session.AuthHeaders()
	res := c.retry.Execute(ctx, desc, headers)
	if res.IsOk() {
		return res
	}

	// One-shot 401 recovery. A 403 classifies as Unauthorized too but
	// deliberately does not take this path.
	if apiErr, ok := apierr.As(res.Err()); ok && apiErr.Status == http.StatusUnauthorized {
		c.logger.Debug("session rejected, reauthenticating once",
			observability.Field{Key: "path", Value: path})
		if c.session.HandleUnauthorized(ctx) {
			headers, _ = c.session.AuthHeaders()
			res = c.retry.Execute(ctx, desc, headers)
		}
	}

	if res.IsErr() {
		c.metrics.RecordError(method+" "+path, string(apierr.KindOf(res.Err())))
	}
	return res
}

// Authenticate performs an explicit login, optionally with a TOTP code for
// installations with two-factor authentication enabled. Pass an empty code
// when two-factor is not in use. Ordinary requests authenticate lazily, so
// calling this is only needed for TOTP or to validate credentials upfront.
func (c *Client) Authenticate(ctx context.Context, totpCode string) bool {
	return c.session.Authenticate(ctx, totpCode)
}

// Logout revokes the session server-side and clears local session state.
// Local state is cleared even when the server call fails.
func (c *Client) Logout(ctx context.Context) bool {
	return c.session.Logout(ctx)
}

// HasSession reports whether an unexpired session is currently held.
func (c *Client) HasSession() bool {
	return c.session.HasSession()
}

// IsTotpRequired reports whether the last login was rejected pending a
// two-factor code. Call Authenticate with the code to proceed.
func (c *Client) IsTotpRequired() bool {
	return c.session.IsTotpRequired()
}

// SetPassword replaces the stored credential used for future logins.
func (c *Client) SetPassword(password string) {
	c.session.SetPassword(password)
}

// BaseURL returns the configured API base URL with trailing slashes stripped.
func (c *Client) BaseURL() string {
	return c.baseURL
}
