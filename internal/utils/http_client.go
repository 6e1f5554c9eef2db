// Package utils provides small helpers shared across the client: the resty
// HTTP client wrapper and request-id generation.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. It embeds *resty.Client to expose all of its
// methods directly while leaving room for client-wide behaviour to hang off
// the wrapper.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a new HTTPClient with a default-configured underlying
// resty client. Each call returns an independent instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
