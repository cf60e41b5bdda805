package pihole

import (
	"context"
	"net/http"
	"net/url"
)

// List type values accepted by the lists endpoints.
const (
	ListTypeAllow = "allow"
	ListTypeBlock = "block"
)

// ListLists retrieves all subscribed lists.
func (c *Client) ListLists(ctx context.Context) (*ListsReply, error) {
	return doRequest[ListsReply](ctx, c, http.MethodGet, "/lists", nil)
}

// AddList subscribes a list by address.
func (c *Client) AddList(ctx context.Context, input ListInput) (*ListsReply, error) {
	return doRequest[ListsReply](ctx, c, http.MethodPost, "/lists", input)
}

// DeleteList unsubscribes a list. listType distinguishes allow and block
// lists sharing an address.
func (c *Client) DeleteList(ctx context.Context, address, listType string) error {
	path := "/lists/" + url.PathEscape(address)
	if listType != "" {
		path += "?type=" + url.QueryEscape(listType)
	}
	return doDelete(ctx, c, path)
}
