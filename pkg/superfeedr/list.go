package superfeedr

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListFeeds returns the first page of subscriptions registered with callback
func (c *Client) ListFeeds(ctx context.Context, callback string) (*http.Response, error) {
	return c.ListFeedsPage(ctx, callback, 1)
}

// ListFeedsPage returns one page of subscriptions registered with callback.
// page is sent unvalidated; the hub decides what to do with values below 1.
func (c *Client) ListFeedsPage(ctx context.Context, callback string, page int) (*http.Response, error) {
	if !validateURL(callback) {
		return nil, ErrMalformedCallback
	}

	data := make(url.Values)
	data.Set("hub.mode", "list")
	data.Set("hub.callback", callback)
	data.Set("page", strconv.Itoa(page))

	return c.get(ctx, data)
}
