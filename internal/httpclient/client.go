// Package httpclient builds the http.Client used by the transport, with
// support for round-tripper middleware chaining.
package httpclient

import "net/http"

// Middleware wraps an http.RoundTripper to add behavior.
// Middleware is applied in order: first middleware is outermost.
type Middleware func(http.RoundTripper) http.RoundTripper

// Client is an HTTP client with a middleware chain applied to its transport.
type Client struct {
	base       *http.Client
	middleware []Middleware
}

// New creates a client from the given options. The client carries no
// client-level timeout: per-attempt deadlines come from the request context
// set by the transport layer, and a competing http.Client timeout would make
// descriptor timeout overrides unreliable.
func New(opts ...Option) *Client {
	c := &Client{
		base:       &http.Client{},
		middleware: []Middleware{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if len(c.middleware) > 0 {
		transport := c.base.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}

		// Apply middleware in reverse order so the first one is outermost.
		for i := len(c.middleware) - 1; i >= 0; i-- {
			transport = c.middleware[i](transport)
		}

		c.base.Transport = transport
	}

	return c
}

// Do executes an HTTP request through the configured middleware chain.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	//nolint:wrapcheck // Pass-through; the transport layer classifies failures
	return c.base.Do(req)
}

// HTTPClient returns the underlying http.Client, for code that expects one.
func (c *Client) HTTPClient() *http.Client {
	return c.base
}
