package pihole

import (
	"context"
	"net/http"
	"time"
)

// gravityTimeout allows for a full list download on slow connections.
const gravityTimeout = 5 * time.Minute

// doAction runs a maintenance action. Actions mutate server state and are
// not idempotent, so they always make exactly one attempt.
func doAction(ctx context.Context, c *Client, name string, timeout time.Duration) (*ActionReply, error) {
	return doRequestWithOptions[ActionReply](ctx, c, http.MethodPost, "/action/"+name, nil,
		RequestOptions{NoRetry: true, Timeout: timeout})
}

// RunGravity rebuilds the gravity database, downloading all subscribed
// lists. This can take minutes on large configurations.
func (c *Client) RunGravity(ctx context.Context) (*ActionReply, error) {
	return doAction(ctx, c, "gravity", gravityTimeout)
}

// RestartDNS restarts the DNS resolver.
func (c *Client) RestartDNS(ctx context.Context) (*ActionReply, error) {
	return doAction(ctx, c, "restartdns", 0)
}

// FlushLogs clears the DNS query log.
func (c *Client) FlushLogs(ctx context.Context) (*ActionReply, error) {
	return doAction(ctx, c, "flush/logs", 0)
}

// FlushARP clears the network (ARP) table.
func (c *Client) FlushARP(ctx context.Context) (*ActionReply, error) {
	return doAction(ctx, c, "flush/arp", 0)
}
