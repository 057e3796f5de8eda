package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty client used to talk to the rendezvous server.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client for baseURL. Every request is bounded
// by timeout; zero means no limit. An empty baseURL leaves request URLs as
// given.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}
	return &HTTPClient{Client: client}
}
