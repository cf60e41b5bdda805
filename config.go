package pihole

import (
	"context"
	"net/http"
)

// configPatch wraps a partial configuration tree for PATCH requests.
type configPatch struct {
	Config any `json:"config"`
}

// GetConfig retrieves the full configuration tree.
func (c *Client) GetConfig(ctx context.Context) (*ConfigReply, error) {
	return doRequest[ConfigReply](ctx, c, http.MethodGet, "/config", nil)
}

// PatchConfig applies a partial configuration change. patch mirrors the
// structure of the configuration tree, containing only the keys to change.
// Configuration writes are not idempotent across concurrent writers, so the
// request makes exactly one attempt.
func (c *Client) PatchConfig(ctx context.Context, patch any) (*ConfigReply, error) {
	return doRequestWithOptions[ConfigReply](ctx, c, http.MethodPatch, "/config",
		configPatch{Config: patch}, RequestOptions{NoRetry: true})
}
