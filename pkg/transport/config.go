package transport

import (
	"net/http"
	"net/url"
	"time"
)

// Config holds options handed through to the HTTP transport untouched
type Config struct {
	Client  *http.Client // used as-is when set; Timeout and Proxy are then ignored
	Timeout time.Duration
	Proxy   func(*http.Request) (*url.URL, error)
	Logger  Logger
}

// NewConfig returns the default transport Config (environment proxy, no timeout, no logging)
func NewConfig() *Config {
	return &Config{
		Proxy: http.ProxyFromEnvironment,
	}
}
