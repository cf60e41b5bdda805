package httpclient

import "net/http"

// Option is a functional option for configuring the HTTP client.
type Option func(*Client)

// WithHTTPClient replaces the base http.Client entirely. Middleware is still
// applied on top of its transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.base = client
		}
	}
}

// WithTransport sets the innermost round-tripper.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.base.Transport = transport
	}
}

// WithMiddleware appends middleware to the chain.
func WithMiddleware(middleware ...Middleware) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, middleware...)
	}
}
