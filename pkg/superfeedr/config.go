package superfeedr

import (
	"net/http"

	"github.com/adamsanghera/go-superfeedr/pkg/transport"
)

// Config is the configuration information for a Client
type Config struct {
	BaseURI  string
	Username string
	Password string

	// Headers are added to every hub request
	Headers http.Header

	// Transport is handed to the HTTP transport untouched
	Transport transport.Config

	// Sender replaces the HTTP transport entirely; BaseURI, Headers and Transport are then unused
	Sender transport.Sender
}

// NewConfig returns the default Config, which points at the public Superfeedr hub
func NewConfig() *Config {
	return &Config{
		BaseURI:   DefaultBaseURI,
		Headers:   make(http.Header),
		Transport: *transport.NewConfig(),
	}
}

// Merge returns a new Config with src laid over dst.
// Non-zero scalar fields of src replace those of dst.
// Headers are concatenated per key, dst's values first.
// Neither argument is modified; a nil src yields a copy of dst.
func Merge(dst, src *Config) *Config {
	merged := &Config{}
	if dst != nil {
		*merged = *dst
	}
	merged.Headers = make(http.Header)
	if dst != nil {
		appendHeaders(merged.Headers, dst.Headers)
	}
	if src == nil {
		return merged
	}

	if src.BaseURI != "" {
		merged.BaseURI = src.BaseURI
	}
	if src.Username != "" {
		merged.Username = src.Username
	}
	if src.Password != "" {
		merged.Password = src.Password
	}
	if src.Sender != nil {
		merged.Sender = src.Sender
	}
	appendHeaders(merged.Headers, src.Headers)

	if src.Transport.Client != nil {
		merged.Transport.Client = src.Transport.Client
	}
	if src.Transport.Timeout != 0 {
		merged.Transport.Timeout = src.Transport.Timeout
	}
	if src.Transport.Proxy != nil {
		merged.Transport.Proxy = src.Transport.Proxy
	}
	if src.Transport.Logger != nil {
		merged.Transport.Logger = src.Transport.Logger
	}

	return merged
}

func appendHeaders(dst, src http.Header) {
	for key, vals := range src {
		for _, v := range vals {
			dst.Add(key, v)
		}
	}
}
