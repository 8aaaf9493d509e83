package superfeedr

import (
	"net/http"
	"sort"
	"strings"

	"github.com/adamsanghera/go-superfeedr/pkg/discovery"
)

// SignatureHeader carries the hub's HMAC of a notification body
const SignatureHeader = "X-Hub-Signature"

const signaturePrefix = "sha1="

// Notification is a push received on a callback, as handed over by whatever server received it
type Notification struct {
	Signature string // hex HMAC-SHA1, without the "sha1=" prefix
	Topic     string // rel=self link, empty if the hub sent none
	Hubs      []string // rel=hub links, sorted
	Body      []byte
}

// ParseNotification gathers what is needed to verify a push from its headers and raw body.
// It does not read or validate anything beyond the headers.
func ParseNotification(header http.Header, body []byte) *Notification {
	hubs, self := discovery.ParseHeader(header)

	n := &Notification{
		Signature: strings.TrimPrefix(header.Get(SignatureHeader), signaturePrefix),
		Topic:     self,
		Body:      body,
	}
	for hub := range hubs {
		n.Hubs = append(n.Hubs, hub)
	}
	sort.Strings(n.Hubs)
	return n
}

// VerifyNotification reports whether n was signed by the hub for this Client
func (c *Client) VerifyNotification(n *Notification) bool {
	if n == nil || n.Signature == "" {
		return false
	}
	return c.ValidateRequest(n.Signature, n.Body)
}
