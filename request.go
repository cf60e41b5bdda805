package pihole

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lexfrei/go-pihole/apierr"
)

// doRequest issues a request through the facade and decodes the JSON body
// into T. It is a package function because Go methods cannot introduce type
// parameters.
func doRequest[T any](ctx context.Context, c *Client, method, path string, body any) (*T, error) {
	return doRequestWithOptions[T](ctx, c, method, path, body, RequestOptions{})
}

// doRequestWithOptions is doRequest with per-call options, used by wrappers
// for non-idempotent operations that must opt out of retry.
func doRequestWithOptions[T any](ctx context.Context, c *Client, method, path string, body any, opts RequestOptions) (*T, error) {
	res := c.RequestWithOptions(ctx, method, path, body, opts)
	if res.IsErr() {
		return nil, res.Err()
	}

	out := new(T)
	raw := res.Unwrap()
	if len(raw) == 0 {
		// 204 or empty body; the zero value is the full answer.
		return out, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, &apierr.Error{
			Kind:    apierr.ParseError,
			Message: "failed to decode response: " + err.Error(),
		}
	}
	return out, nil
}

// doDelete issues a request whose success carries no body (DELETE endpoints
// answering 204).
func doDelete(ctx context.Context, c *Client, path string) error {
	res := c.Request(ctx, http.MethodDelete, path, nil)
	return res.Err()
}
