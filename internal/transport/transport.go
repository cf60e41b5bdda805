// Package transport executes single HTTP attempts against the Pi-hole API and
// converts every failure into a classified error. Retry and session logic live
// above this package; one call here is exactly one network attempt.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lexfrei/go-pihole/apierr"
	"github.com/lexfrei/go-pihole/observability"
	"github.com/lexfrei/go-pihole/result"
)

// Descriptor describes one API request. It is a value object constructed per
// call; Headers win over auth headers on conflict, Timeout overrides the
// client default when non-zero, and NoRetry marks non-idempotent operations
// that must make exactly one attempt.
type Descriptor struct {
	Method  string
	Path    string
	Body    any
	Headers http.Header
	Timeout time.Duration
	NoRetry bool
}

// Transport performs single attempts over an http.Client.
type Transport struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	logger  observability.Logger
}

// New creates a Transport. baseURL must already have trailing slashes
// stripped; an empty baseURL makes every attempt fail with BadRequest before
// touching the network.
func New(baseURL string, client *http.Client, timeout time.Duration, logger observability.Logger) *Transport {
	if logger == nil {
		logger = observability.NoopLogger()
	}
	return &Transport{
		baseURL: baseURL,
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

// errorEnvelope is the backend's error body shape on non-2xx responses.
type errorEnvelope struct {
	Error struct {
		Key     string `json:"key"`
		Message string `json:"message"`
		Hint    string `json:"hint"`
	} `json:"error"`
}

// Attempt performs one HTTP attempt described by desc, merging auth headers
// into the request. The success value is the raw JSON response body, empty
// for 204 responses.
func (t *Transport) Attempt(ctx context.Context, desc Descriptor, auth http.Header) result.Result[json.RawMessage] {
	if t.baseURL == "" {
		return result.Err[json.RawMessage](apierr.New(apierr.BadRequest, 0, "base URL is not configured"))
	}

	var bodyReader io.Reader
	if desc.Body != nil {
		encoded, err := json.Marshal(desc.Body)
		if err != nil {
			return result.Err[json.RawMessage](apierr.New(apierr.BadRequest, 0, "failed to encode request body: "+err.Error()))
		}
		bodyReader = bytes.NewReader(encoded)
	}

	timeout := desc.Timeout
	if timeout <= 0 {
		timeout = t.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := t.baseURL + ensureLeadingSlash(desc.Path)
	req, err := http.NewRequestWithContext(ctx, desc.Method, url, bodyReader)
	if err != nil {
		return result.Err[json.RawMessage](apierr.New(apierr.BadRequest, 0, "failed to build request: "+err.Error()))
	}

	// Merge order: defaults, then auth headers, then descriptor headers.
	req.Header.Set("Content-Type", "application/json")
	for key, values := range auth {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}
	for key, values := range desc.Headers {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}

	resp, err := t.client.Do(req)
	if err != nil {
		apiErr := apierr.FromRequestError(err)
		t.logger.Debug("http attempt failed",
			observability.Field{Key: "method", Value: desc.Method},
			observability.Field{Key: "path", Value: desc.Path},
			observability.Field{Key: "kind", Value: string(apiErr.Kind)},
		)
		return result.Err[json.RawMessage](apiErr)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return result.Err[json.RawMessage](apierr.FromRequestError(err))
	}

	if resp.StatusCode == http.StatusNoContent {
		return result.Ok(json.RawMessage(nil))
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if len(bytes.TrimSpace(raw)) == 0 {
			return result.Ok(json.RawMessage(nil))
		}
		if !json.Valid(raw) {
			return result.Err[json.RawMessage](apierr.New(apierr.ParseError, resp.StatusCode, "invalid JSON in response body"))
		}
		return result.Ok(json.RawMessage(raw))
	}

	return result.Err[json.RawMessage](t.classifyFailure(resp, raw))
}

// classifyFailure turns a non-2xx response into a taxonomy error. The backend
// error key wins over the raw status mapping when the body supplies one.
func (t *Transport) classifyFailure(resp *http.Response, raw []byte) *apierr.Error {
	var envelope errorEnvelope
	_ = json.Unmarshal(raw, &envelope)

	kind := apierr.FromStatus(resp.StatusCode)
	if envelope.Error.Key != "" {
		kind = apierr.FromKey(envelope.Error.Key)
	}

	message := envelope.Error.Message
	if message == "" {
		message = "HTTP " + strconv.Itoa(resp.StatusCode)
	}

	return &apierr.Error{
		Kind:       kind,
		Status:     resp.StatusCode,
		Message:    message,
		Hint:       envelope.Error.Hint,
		Key:        envelope.Error.Key,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
	}
}

// parseRetryAfter parses the Retry-After header in seconds form.
// HTTP-date form is not supported and returns 0.
func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(header); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return 0
}

func ensureLeadingSlash(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
