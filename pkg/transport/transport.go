/*
Package transport sends form-encoded hub requests over HTTP.

It is the only place in this module that touches the network, so the
protocol logic in pkg/superfeedr can be exercised against any Sender.
*/
package transport

import (
	"context"
	"errors"
	"io/ioutil"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ErrMalformedBaseURI is returned when the hub base uri is not an absolute url
var ErrMalformedBaseURI = errors.New("transport: base uri provided is invalid")

// Credentials are the HTTP Basic credentials attached to every hub request
type Credentials struct {
	Username string
	Password string
}

// Logger receives one line per request.  *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Sender is the transport collaborator used by the hub client
type Sender interface {
	Send(ctx context.Context, method, path string, form url.Values, creds Credentials) (*http.Response, error)
}

// HTTP is a Sender backed by an *http.Client
type HTTP struct {
	base    *url.URL
	headers http.Header
	client  *http.Client
	logger  Logger
}

// NewHTTP creates a Sender that resolves request paths against baseURI
func NewHTTP(baseURI string, headers http.Header, cfg *Config) (*HTTP, error) {
	base, err := url.Parse(baseURI)
	if err != nil || !base.IsAbs() || base.Host == "" {
		return nil, ErrMalformedBaseURI
	}

	if cfg == nil {
		cfg = NewConfig()
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{Proxy: cfg.Proxy},
			// The hub answers with 307/308 on moved endpoints; those are data for the caller.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
			Timeout: cfg.Timeout,
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}

	return &HTTP{
		base:    base,
		headers: headers,
		client:  client,
		logger:  logger,
	}, nil
}

// Send issues a single request and returns the response as-is.
// GET requests carry the form in the query string, everything else in the body.
func (h *HTTP) Send(ctx context.Context, method, path string, form url.Values, creds Credentials) (*http.Response, error) {
	req, err := h.buildRequest(ctx, method, path, form)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(creds.Username, creds.Password)

	target := req.URL.Scheme + "://" + req.URL.Host + req.URL.Path

	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Printf("%s %s failed: %v", method, target, err)
		return nil, err
	}

	h.logger.Printf("%s %s -> %d", method, target, resp.StatusCode)
	return resp, nil
}

func (h *HTTP) buildRequest(ctx context.Context, method, path string, form url.Values) (*http.Request, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, err
	}
	target := h.base.ResolveReference(ref)

	if method == http.MethodGet || method == http.MethodHead {
		target.RawQuery = form.Encode()
		req, err := http.NewRequest(method, target.String(), nil)
		if err != nil {
			return nil, err
		}
		h.addHeaders(req)
		return req.WithContext(ctx), nil
	}

	data := form.Encode()
	req, err := http.NewRequest(method, target.String(), strings.NewReader(data))
	if err != nil {
		return nil, err
	}
	h.addHeaders(req)

	// The body is always form-encoded; these replace any configured values.
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Content-Length", strconv.Itoa(len(data)))

	return req.WithContext(ctx), nil
}

func (h *HTTP) addHeaders(req *http.Request) {
	for key, vals := range h.headers {
		for _, v := range vals {
			req.Header.Add(key, v)
		}
	}
}
