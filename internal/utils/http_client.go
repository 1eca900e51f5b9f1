package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so the gateway can grow helpers on it
// without reaching into the resty type. Embedding exposes the full resty
// API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent, default-configured client. The
// caller sets the base URL and timeout.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
