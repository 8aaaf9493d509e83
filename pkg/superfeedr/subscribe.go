package superfeedr

import (
	"context"
	"net/http"
	"net/url"
)

// DefaultFormat is the notification format requested when none is given
const DefaultFormat = "json"

// SubscribeFeed asks the hub to push updates of feed to callback.
// An empty format means DefaultFormat.
// The hub's response is returned as-is; Superfeedr answers 202 on success.
func (c *Client) SubscribeFeed(ctx context.Context, feed, callback, format string) (*http.Response, error) {
	if !validateURL(feed) {
		return nil, ErrMalformedTopic
	}
	if !validateURL(callback) {
		return nil, ErrMalformedCallback
	}
	if format == "" {
		format = DefaultFormat
	}

	data := make(url.Values)
	data.Set("hub.mode", "subscribe")
	data.Set("hub.topic", feed)
	data.Set("hub.callback", callback)
	data.Set("hub.secret", c.secret)
	data.Set("format", format)

	return c.post(ctx, data)
}

// UnsubscribeFeed asks the hub to stop pushing feed to callback.
// An empty callback drops every callback this account registered for feed.
func (c *Client) UnsubscribeFeed(ctx context.Context, feed, callback string) (*http.Response, error) {
	if !validateURL(feed) {
		return nil, ErrMalformedTopic
	}

	data := make(url.Values)
	data.Set("hub.mode", "unsubscribe")
	data.Set("hub.topic", feed)

	if callback != "" {
		if !validateURL(callback) {
			return nil, ErrMalformedCallback
		}
		data.Set("hub.callback", callback)
	}

	return c.post(ctx, data)
}
