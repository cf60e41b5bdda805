package pihole

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// QueryFilter narrows a query log request. Zero values are omitted.
type QueryFilter struct {
	// Length caps the number of returned entries.
	Length int
	// From and Until bound the time range (unix seconds).
	From  int64
	Until int64
	// Domain, ClientIP, and Upstream filter by the respective field.
	Domain   string
	ClientIP string
	Upstream string
	// Cursor continues a previous page.
	Cursor int
}

func (f QueryFilter) encode() string {
	values := url.Values{}
	if f.Length > 0 {
		values.Set("length", strconv.Itoa(f.Length))
	}
	if f.From > 0 {
		values.Set("from", strconv.FormatInt(f.From, 10))
	}
	if f.Until > 0 {
		values.Set("until", strconv.FormatInt(f.Until, 10))
	}
	if f.Domain != "" {
		values.Set("domain", f.Domain)
	}
	if f.ClientIP != "" {
		values.Set("client_ip", f.ClientIP)
	}
	if f.Upstream != "" {
		values.Set("upstream", f.Upstream)
	}
	if f.Cursor > 0 {
		values.Set("cursor", strconv.Itoa(f.Cursor))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// GetQueries retrieves a page of the query log matching filter.
func (c *Client) GetQueries(ctx context.Context, filter QueryFilter) (*QueriesReply, error) {
	return doRequest[QueriesReply](ctx, c, http.MethodGet, "/queries"+filter.encode(), nil)
}
