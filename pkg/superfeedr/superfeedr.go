/*
Package superfeedr is a client for the Superfeedr flavour of PubSubHubbub
(https://documentation.superfeedr.com/subscribers.html).

A Client sends subscribe, unsubscribe, list and retrieve requests to the hub,
and verifies that push notifications arriving on a callback were signed by the
hub with the secret this client subscribed with.

The hub never sees the raw secret.  A Client derives a secret (the hex SHA-1
of the raw one) once at construction, sends it as hub.secret, and uses it as
the HMAC key when verifying notifications.
*/
package superfeedr

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/adamsanghera/go-superfeedr/pkg/transport"
)

// DefaultBaseURI is the public Superfeedr hub
const DefaultBaseURI = "https://push.superfeedr.com"

// Client talks to a Superfeedr hub.  It is safe for concurrent use; nothing is mutated after New returns.
type Client struct {
	creds     transport.Credentials
	secret    string
	transport transport.Sender
}

// New creates a Client for the given hub account.
// cfg is merged over NewConfig(); it may be nil.
func New(username, password, secret string, cfg *Config) (*Client, error) {
	if username == "" {
		return nil, ErrConfig{"username"}
	}
	if password == "" {
		return nil, ErrConfig{"password"}
	}

	defaults := NewConfig()
	defaults.Username = username
	defaults.Password = password
	merged := Merge(defaults, cfg)

	sender := merged.Sender
	if sender == nil {
		var err error
		sender, err = transport.NewHTTP(merged.BaseURI, merged.Headers, &merged.Transport)
		if err != nil {
			return nil, err
		}
	}

	return &Client{
		creds:     transport.Credentials{Username: merged.Username, Password: merged.Password},
		secret:    DeriveSecret(secret),
		transport: sender,
	}, nil
}

// String describes the Client without its secret
func (c Client) String() string {
	return fmt.Sprintf("superfeedr.Client{user: %q, secret: [redacted]}", c.creds.Username)
}

// GoString keeps %#v from printing the secret
func (c Client) GoString() string {
	return c.String()
}

func (c *Client) post(ctx context.Context, form url.Values) (*http.Response, error) {
	return c.transport.Send(ctx, http.MethodPost, "/", form, c.creds)
}

func (c *Client) get(ctx context.Context, form url.Values) (*http.Response, error) {
	return c.transport.Send(ctx, http.MethodGet, "/", form, c.creds)
}

// validateURL reports whether raw is an absolute url
func validateURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}
