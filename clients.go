package pihole

import (
	"context"
	"net/http"
	"net/url"
)

// ListClients retrieves all managed client entries.
func (c *Client) ListClients(ctx context.Context) (*ClientsReply, error) {
	return doRequest[ClientsReply](ctx, c, http.MethodGet, "/clients", nil)
}

// AddClient creates a client entry (IP, subnet, MAC, or interface).
func (c *Client) AddClient(ctx context.Context, input ClientInput) (*ClientsReply, error) {
	return doRequest[ClientsReply](ctx, c, http.MethodPost, "/clients", input)
}

// DeleteClient removes a client entry.
func (c *Client) DeleteClient(ctx context.Context, client string) error {
	return doDelete(ctx, c, "/clients/"+url.PathEscape(client))
}
