package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(30 * time.Second)
//	resp, err := client.R().Get("https://example.com/export.xlsx")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client whose requests are bounded by
// timeout. A zero timeout leaves requests unbounded.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
