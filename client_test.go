package pihole

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/go-pihole/apierr"
	"github.com/lexfrei/go-pihole/internal/testutil"
)

const testPassword = "correct horse battery staple"

func decodeJSONBody(t *testing.T, r *http.Request, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r.Body).Decode(out))
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := NewWithConfig(&ClientConfig{
		BaseURL:  baseURL,
		Password: testPassword,
	})
	require.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	t.Parallel()

	client, err := New("http://pi.hole/api", testPassword)
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "http://pi.hole/api", client.BaseURL())
}

func TestNewWithConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *ClientConfig
		wantErr bool
	}{
		{
			name: "valid config",
			config: &ClientConfig{
				BaseURL:  "http://pi.hole/api",
				Password: testPassword,
			},
			wantErr: false,
		},
		{
			name:    "nil config",
			config:  nil,
			wantErr: true,
		},
		{
			name:    "empty base URL is tolerated until request time",
			config:  &ClientConfig{Password: testPassword},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := NewWithConfig(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, client)
		})
	}
}

func TestNewWithConfigStripsTrailingSlash(t *testing.T) {
	t.Parallel()

	client, err := New("http://pi.hole/api///", testPassword)
	require.NoError(t, err)
	assert.Equal(t, "http://pi.hole/api", client.BaseURL())
}

func TestRequestAuthenticatesLazily(t *testing.T) {
	t.Parallel()

	server := testutil.NewAuthServer(t, testPassword, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stats/summary", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"queries":{"total":42}}`))
	})
	defer server.Close()

	client := newTestClient(t, server.URL)
	assert.False(t, client.HasSession(), "no login before the first request")

	res := client.Request(context.Background(), http.MethodGet, "/stats/summary", nil)
	require.True(t, res.IsOk(), "Request() error = %v", res.Err())
	assert.True(t, client.HasSession(), "the first request establishes a session")
}

func TestRequestWithoutCredential(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request should reach the server without a session")
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewWithConfig(&ClientConfig{BaseURL: server.URL})
	require.NoError(t, err)

	res := client.Request(context.Background(), http.MethodGet, "/stats/summary", nil)
	require.True(t, res.IsErr())
	apiErr, ok := apierr.As(res.Err())
	require.True(t, ok)
	assert.Equal(t, apierr.Unauthorized, apiErr.Kind)
	assert.Equal(t, 0, apiErr.Status)
}

func TestRequestBaseURLUnset(t *testing.T) {
	t.Parallel()

	client, err := NewWithConfig(&ClientConfig{Password: testPassword})
	require.NoError(t, err)

	res := client.Request(context.Background(), http.MethodGet, "/stats/summary", nil)
	require.True(t, res.IsErr())
	apiErr, ok := apierr.As(res.Err())
	require.True(t, ok)
	assert.Equal(t, apierr.BadRequest, apiErr.Kind)
	assert.Equal(t, 0, apiErr.Status, "the failure precedes any network attempt")
}

func TestRequestRecoversOnceFrom401(t *testing.T) {
	t.Parallel()

	var logins, calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth" && r.Method == http.MethodPost {
			n := logins.Add(1)
			sid := "sid-stale"
			if n > 1 {
				sid = "sid-fresh"
			}
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"session":{"sid":"` + sid + `","csrf":"csrf","validity":300,"totp":false}}`))
			return
		}

		calls.Add(1)
		if r.Header.Get("X-FTL-SID") == "sid-stale" {
			// The server dropped this session out from under the client.
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"key":"unauthorized","message":"session invalid"}}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"blocking":"enabled","timer":null,"took":0.001}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	status, err := client.GetBlocking(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "enabled", status.Blocking)
	assert.Equal(t, int64(2), logins.Load(), "one lazy login plus one recovery login")
	assert.Equal(t, int64(2), calls.Load(), "the rejected request is replayed exactly once")
}

func TestRequestDoesNotLoopOnRepeated401(t *testing.T) {
	t.Parallel()

	var logins, calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth" && r.Method == http.MethodPost {
			logins.Add(1)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"session":{"sid":"sid","csrf":"csrf","validity":300,"totp":false}}`))
			return
		}
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"key":"unauthorized","message":"still invalid"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	res := client.Request(context.Background(), http.MethodGet, "/dns/blocking", nil)
	require.True(t, res.IsErr())
	apiErr, ok := apierr.As(res.Err())
	require.True(t, ok)
	assert.Equal(t, apierr.Unauthorized, apiErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	assert.Equal(t, int64(2), calls.Load(), "recovery replays once, then the failure is final")
	assert.Equal(t, int64(2), logins.Load())
}

func TestRequestForbiddenDoesNotReauthenticate(t *testing.T) {
	t.Parallel()

	var logins atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth" && r.Method == http.MethodPost {
			logins.Add(1)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"session":{"sid":"sid","csrf":"csrf","validity":300,"totp":false}}`))
			return
		}
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"forbidden"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	res := client.Request(context.Background(), http.MethodGet, "/dns/blocking", nil)
	require.True(t, res.IsErr())
	apiErr, ok := apierr.As(res.Err())
	require.True(t, ok)
	assert.Equal(t, apierr.Unauthorized, apiErr.Kind, "403 classifies as unauthorized")
	assert.Equal(t, int64(1), logins.Load(), "but only a literal 401 triggers recovery")
}

func TestAuthenticateAndLogout(t *testing.T) {
	t.Parallel()

	var authCalls, logoutCalls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth", r.URL.Path)
		switch r.Method {
		case http.MethodPost:
			authCalls.Add(1)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"session":{"sid":"s1","csrf":"c1","validity":300,"totp":false}}`))
		case http.MethodDelete:
			logoutCalls.Add(1)
			assert.Equal(t, "s1", r.Header.Get("X-FTL-SID"))
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	require.True(t, client.Authenticate(context.Background(), ""))
	assert.True(t, client.HasSession())

	require.True(t, client.Logout(context.Background()))
	assert.False(t, client.HasSession())
	assert.Equal(t, int64(1), authCalls.Load())
	assert.Equal(t, int64(1), logoutCalls.Load())
}

func TestTotpFlow(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"key":"totp_required","message":"totp code required"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	assert.False(t, client.Authenticate(context.Background(), ""))
	assert.True(t, client.IsTotpRequired())
	assert.False(t, client.HasSession())
}

func TestSetPassword(t *testing.T) {
	t.Parallel()

	var lastPassword atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Password string `json:"password"`
		}
		decodeJSONBody(t, r, &body)
		lastPassword.Store(body.Password)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"session":{"sid":"s1","csrf":"c1","validity":300,"totp":false}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.SetPassword("rotated")

	require.True(t, client.Authenticate(context.Background(), ""))
	assert.Equal(t, "rotated", lastPassword.Load())
}

func TestRequestWithOptionsNoRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	server := testutil.NewAuthServer(t, testPassword, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	res := client.RequestWithOptions(context.Background(), http.MethodPost, "/action/gravity", nil, RequestOptions{NoRetry: true})
	require.True(t, res.IsErr())
	assert.Equal(t, int64(1), calls.Load(), "NoRetry requests make exactly one attempt")
}

func TestRequestRetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	server := testutil.NewAuthServer(t, testPassword, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"blocking":"enabled","timer":null,"took":0.002}`))
	})
	defer server.Close()

	client, err := NewWithConfig(&ClientConfig{
		BaseURL:        server.URL,
		Password:       testPassword,
		RetryDelayBase: time.Millisecond,
		RetryDelayMax:  2 * time.Millisecond,
	})
	require.NoError(t, err)

	status, getErr := client.GetBlocking(context.Background())
	require.NoError(t, getErr)
	assert.Equal(t, "enabled", status.Blocking)
	assert.Equal(t, int64(3), calls.Load())
}
