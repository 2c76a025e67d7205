package housecanary

import (
	"net/http"
	"time"

	"github.com/benbjohnson/clock"
)

// Client manages HouseCanary API authentication and requests
type Client struct {
	apiKey     string
	apiSecret  string
	baseURL    string
	httpClient *http.Client
	clock      clock.Clock
}

// NewClient creates a new HouseCanary client. The timeout bounds each
// lookup so a hung upstream cannot occupy a handler indefinitely.
func NewClient(apiKey, apiSecret, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		baseURL:   baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		clock: clock.New(),
	}
}
