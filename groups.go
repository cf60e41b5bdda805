package pihole

import (
	"context"
	"net/http"
	"net/url"
)

// ListGroups retrieves all client groups.
func (c *Client) ListGroups(ctx context.Context) (*GroupsReply, error) {
	return doRequest[GroupsReply](ctx, c, http.MethodGet, "/groups", nil)
}

// AddGroup creates a client group.
func (c *Client) AddGroup(ctx context.Context, input GroupInput) (*GroupsReply, error) {
	return doRequest[GroupsReply](ctx, c, http.MethodPost, "/groups", input)
}

// DeleteGroup removes a client group by name.
func (c *Client) DeleteGroup(ctx context.Context, name string) error {
	return doDelete(ctx, c, "/groups/"+url.PathEscape(name))
}
