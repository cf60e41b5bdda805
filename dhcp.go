package pihole

import (
	"context"
	"net/http"
	"net/url"
)

// GetDHCPLeases retrieves the currently active DHCP leases.
func (c *Client) GetDHCPLeases(ctx context.Context) (*DHCPLeasesReply, error) {
	return doRequest[DHCPLeasesReply](ctx, c, http.MethodGet, "/dhcp/leases", nil)
}

// DeleteDHCPLease removes the lease for the given IP address.
func (c *Client) DeleteDHCPLease(ctx context.Context, ip string) error {
	return doDelete(ctx, c, "/dhcp/leases/"+url.PathEscape(ip))
}
