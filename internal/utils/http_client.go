package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient("https://lightwalletd.example.com:9067", 30*time.Second)
//	resp, err := client.R().Get("/api/v1/info")
type HTTPClient struct {
	*resty.Client
}

// UserAgent is sent with every outbound request.
const UserAgent = "go-light-wallet"

// NewHTTPClient returns an independent client bound to baseURL that
// expects JSON answers. A non-positive timeout leaves resty's default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
