// Package pihole provides a Go client for the Pi-hole v6 administrative API.
//
// The client turns Pi-hole's session-authenticated, rate-sensitive HTTP
// backend into a uniformly typed, retrying, auto-reauthenticating request
// surface. Session lifecycle, retry with exponential backoff, and a closed
// error taxonomy are handled internally; endpoint methods are thin typed
// wrappers over a single request primitive.
//
// # Authentication
//
// Pi-hole authenticates with the web interface password. On login the server
// issues a session identifier and an anti-forgery token, sent on every
// subsequent call as the X-FTL-SID and X-FTL-CSRF headers. The client logs in
// lazily on the first request, refreshes the session shortly before expiry,
// and recovers exactly once from an unexpected 401 by reauthenticating and
// replaying the request. Concurrent requests needing authentication share a
// single login attempt.
//
// Installations with two-factor authentication enabled must supply the TOTP
// code explicitly via Client.Authenticate; see Client.IsTotpRequired.
//
// # Reliability
//
// Transient failures (network errors, timeouts, 5xx responses) are retried
// with exponential backoff: up to MaxRetries retries with delays of
// min(RetryDelayMax, RetryDelayBase * BackoffMultiplier^attempt). 4xx
// responses, authentication failures, and parse errors are never retried.
// Non-idempotent operations (login, logout, actions like a gravity run) make
// exactly one attempt.
//
// Every failure carries a stable taxonomy code from the apierr package, so
// callers can branch programmatically without parsing message text.
//
// # Basic Usage
//
//	client, err := pihole.New("http://pi.hole/api", "your-password")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Logout(context.Background())
//
//	status, err := client.GetBlocking(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("blocking:", status.Blocking)
//
// # Observability
//
// Logging and metrics are pluggable through the observability package;
// zerolog and Prometheus implementations are provided, and no-op defaults
// keep the overhead at zero when unused.
package pihole
