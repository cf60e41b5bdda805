// Package testutil provides common testing utilities and helpers.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SequenceResponse is one canned response for NewSequenceServer.
type SequenceResponse struct {
	Body       string
	StatusCode int
	Header     http.Header
}

// NewMockServer creates a test HTTP server with a predefined response.
// It validates the request path and the X-FTL-SID header, then returns
// the specified response.
func NewMockServer(t *testing.T, expectedPath, sid, responseBody string, statusCode int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, expectedPath, r.URL.Path, "Request path should match expected")

		if sid != "" {
			assert.Equal(t, sid, r.Header.Get("X-FTL-SID"), "X-FTL-SID header should be set")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, err := w.Write([]byte(responseBody))
		require.NoError(t, err, "Failed to write response body")
	}))
}

// NewMockServerWithHandler creates a test HTTP server with a custom handler.
// Use this for more complex test scenarios that need custom request handling.
func NewMockServerWithHandler(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(handler)
}

// NewAuthServer creates a test server that handles POST /auth with the given
// password and serves all other paths through handler after verifying the
// session headers. Returns the server; the session id issued is "test-sid"
// and the CSRF token "test-csrf".
func NewAuthServer(t *testing.T, password string, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth" && r.Method == http.MethodPost {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, err := w.Write([]byte(`{"session":{"sid":"test-sid","csrf":"test-csrf","validity":300,"totp":false}}`))
			require.NoError(t, err, "Failed to write auth response")
			return
		}

		assert.Equal(t, "test-sid", r.Header.Get("X-FTL-SID"), "X-FTL-SID header should carry the issued session id")
		assert.Equal(t, "test-csrf", r.Header.Get("X-FTL-CSRF"), "X-FTL-CSRF header should carry the issued token")
		handler(w, r)
	}))
}

// NewSequenceServer creates a test server that returns responses in order.
// Each request consumes the next response in the slice. Useful for testing
// retry logic and session re-authentication flows.
func NewSequenceServer(t *testing.T, responses []SequenceResponse) (*httptest.Server, *int) {
	t.Helper()

	callCount := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if callCount >= len(responses) {
			t.Errorf("More requests than configured responses (got %d requests, have %d responses)",
				callCount+1, len(responses))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		resp := responses[callCount]
		callCount++

		for k, vals := range resp.Header {
			for _, v := range vals {
				w.Header().Add(k, v)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.StatusCode)
		_, err := w.Write([]byte(resp.Body))
		require.NoError(t, err, "Failed to write response body")
	}))
	return srv, &callCount
}
