package superfeedr

import (
	"context"
	"net/http"
	"net/url"
)

// Keys understood by the hub in RetrieveFeeds extras
const (
	RetrieveCount    = "count"
	RetrieveBefore   = "before"
	RetrieveAfter    = "after"
	RetrieveFormat   = "format"
	RetrieveCallback = "callback"
)

// RetrieveFeeds fetches past entries of feed from the hub.
// Every key in extra is set over the base fields, so extra["format"] replaces
// the default json format and any other key is passed along.
func (c *Client) RetrieveFeeds(ctx context.Context, feed string, extra map[string]string) (*http.Response, error) {
	if !validateURL(feed) {
		return nil, ErrMalformedTopic
	}

	data := make(url.Values)
	data.Set("hub.mode", "retrieve")
	data.Set("hub.topic", feed)
	data.Set("format", DefaultFormat)

	for key, val := range extra {
		data.Set(key, val)
	}

	return c.get(ctx, data)
}
