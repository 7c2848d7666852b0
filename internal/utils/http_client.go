package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional SDK-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewHTTPClientWithTransport creates an HTTPClient whose requests travel
// through rt. Retries are disabled: a card token request is not idempotent
// from the caller's point of view and is sent exactly once.
//
// Example usage:
//
//	client := utils.NewHTTPClientWithTransport(&http.Transport{TLSClientConfig: tlsCfg})
func NewHTTPClientWithTransport(rt http.RoundTripper) *HTTPClient {
	client := resty.New().
		SetTransport(rt).
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}
