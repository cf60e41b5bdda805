package pihole

import (
	"context"
	"net/http"
)

// blockingRequest is the body for changing the blocking state.
type blockingRequest struct {
	Blocking bool     `json:"blocking"`
	Timer    *float64 `json:"timer"`
}

// GetBlocking retrieves the current DNS blocking state.
func (c *Client) GetBlocking(ctx context.Context) (*BlockingStatus, error) {
	return doRequest[BlockingStatus](ctx, c, http.MethodGet, "/dns/blocking", nil)
}

// SetBlocking enables or disables DNS blocking. A non-nil timer reverts the
// change after the given number of seconds; nil makes it permanent.
func (c *Client) SetBlocking(ctx context.Context, enabled bool, timer *float64) (*BlockingStatus, error) {
	body := blockingRequest{Blocking: enabled, Timer: timer}
	return doRequest[BlockingStatus](ctx, c, http.MethodPost, "/dns/blocking", body)
}

// EnableBlocking permanently enables DNS blocking.
func (c *Client) EnableBlocking(ctx context.Context) (*BlockingStatus, error) {
	return c.SetBlocking(ctx, true, nil)
}

// DisableBlocking disables DNS blocking for the given number of seconds,
// or permanently when seconds is 0.
func (c *Client) DisableBlocking(ctx context.Context, seconds float64) (*BlockingStatus, error) {
	var timer *float64
	if seconds > 0 {
		timer = &seconds
	}
	return c.SetBlocking(ctx, false, timer)
}
