package pihole

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetSummary retrieves the dashboard summary statistics.
func (c *Client) GetSummary(ctx context.Context) (*StatsSummary, error) {
	return doRequest[StatsSummary](ctx, c, http.MethodGet, "/stats/summary", nil)
}

// GetTopDomains retrieves the most frequently queried domains. With blocked
// set, it ranks blocked domains instead. count 0 uses the server default.
func (c *Client) GetTopDomains(ctx context.Context, count int, blocked bool) (*TopDomainsReply, error) {
	return doRequest[TopDomainsReply](ctx, c, http.MethodGet, "/stats/top_domains"+rankingQuery(count, blocked), nil)
}

// GetTopClients retrieves the most active clients. With blocked set, it
// ranks clients by blocked queries instead.
func (c *Client) GetTopClients(ctx context.Context, count int, blocked bool) (*TopClientsReply, error) {
	return doRequest[TopClientsReply](ctx, c, http.MethodGet, "/stats/top_clients"+rankingQuery(count, blocked), nil)
}

// GetUpstreams retrieves the upstream DNS destinations and their query
// shares.
func (c *Client) GetUpstreams(ctx context.Context) (*UpstreamsReply, error) {
	return doRequest[UpstreamsReply](ctx, c, http.MethodGet, "/stats/upstreams", nil)
}

// GetHistory retrieves the queries-over-time graph for the last 24 hours.
func (c *Client) GetHistory(ctx context.Context) (*HistoryReply, error) {
	return doRequest[HistoryReply](ctx, c, http.MethodGet, "/history", nil)
}

// GetClientHistory retrieves per-client activity over time. count caps the
// number of distinct clients; 0 uses the server default.
func (c *Client) GetClientHistory(ctx context.Context, count int) (*ClientHistoryReply, error) {
	path := "/history/clients"
	if count > 0 {
		path += "?N=" + strconv.Itoa(count)
	}
	return doRequest[ClientHistoryReply](ctx, c, http.MethodGet, path, nil)
}

func rankingQuery(count int, blocked bool) string {
	values := url.Values{}
	if count > 0 {
		values.Set("count", strconv.Itoa(count))
	}
	if blocked {
		values.Set("blocked", "true")
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
