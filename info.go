package pihole

import (
	"context"
	"net/http"
)

// GetVersion retrieves installed and latest versions of the Pi-hole
// components.
func (c *Client) GetVersion(ctx context.Context) (*VersionInfo, error) {
	return doRequest[VersionInfo](ctx, c, http.MethodGet, "/info/version", nil)
}

// GetSystemInfo retrieves host-level runtime information.
func (c *Client) GetSystemInfo(ctx context.Context) (*SystemInfo, error) {
	return doRequest[SystemInfo](ctx, c, http.MethodGet, "/info/system", nil)
}

// GetFTLInfo retrieves FTL daemon internals.
func (c *Client) GetFTLInfo(ctx context.Context) (*FTLInfo, error) {
	return doRequest[FTLInfo](ctx, c, http.MethodGet, "/info/ftl", nil)
}
