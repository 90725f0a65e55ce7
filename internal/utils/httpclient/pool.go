package httpclient

import (
	"net/http"
	"sync"
	"time"
)

// NewClient creates an HTTP client tuned for the API's request pattern:
// short bursts of small JSON calls against a single host.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			DisableCompression:  false,
			DisableKeepAlives:   false,
		},
	}
}

// Global client instance
var (
	globalClient *http.Client
	once         sync.Once
)

// GetGlobalClient returns the shared HTTP client
func GetGlobalClient() *http.Client {
	once.Do(func() {
		globalClient = NewClient(30 * time.Second)
	})
	return globalClient
}
