/*
Package discovery finds the hubs a feed advertises, and the feed's canonical
(self) url, from Link headers or from <link> tags in an HTML <head>.

Superfeedr also sends these Link headers on every push, which is how
ParseHeader is used by pkg/superfeedr.
*/
package discovery

import (
	"context"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/peterhellberg/link"
	"golang.org/x/net/html"
)

var (
	// ErrUnparseable is returned when the topic response has neither usable Link headers nor an HTML body
	ErrUnparseable = errors.New("discovery: response from url provided was not parseable")

	// ErrMalformedHTML is returned when the HTML body could not be tokenized up to the end of its head
	ErrMalformedHTML = errors.New("discovery: received malformed html from target")

	// ErrNoSelf is returned when the target advertised no rel=self link
	ErrNoSelf = errors.New("discovery: target did not provide a self reference")
)

// DiscoverTopic fetches topic and returns the hubs it advertises along with its self url.
// A nil client means http.DefaultClient.
func DiscoverTopic(ctx context.Context, client *http.Client, topic string) (map[string]struct{}, string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequest("GET", topic, nil)
	if err != nil {
		return make(map[string]struct{}), "", err
	}

	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return make(map[string]struct{}), "", err
	}
	defer resp.Body.Close()

	// Headers win whenever they name a self link
	if _, ok := resp.Header["Link"]; ok {
		hubs, self := ParseHeader(resp.Header)
		if self != "" {
			return hubs, self, nil
		}
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return parseLinksFromHTML(resp.Body)
	}

	return make(map[string]struct{}), "", ErrUnparseable
}

// ParseHeader collects rel=hub and rel=self links from header.
// It returns an empty map and an empty string if there are none.
// Link values are parsed one at a time; link.ParseHeader keys its result by rel
// and would keep only the last hub.
func ParseHeader(header http.Header) (map[string]struct{}, string) {
	hubURLs := make(map[string]struct{})
	selfURL := ""

	for _, value := range header["Link"] {
		for _, linkValue := range splitLinkValues(value) {
			for _, l := range parseLinkValue(linkValue) {
				switch l.Rel {
				case "self":
					selfURL = l.URI
				case "hub":
					hubURLs[l.URI] = struct{}{}
				}
			}
		}
	}

	return hubURLs, selfURL
}

var linkValueSep = regexp.MustCompile(`,\s*<`)

// splitLinkValues splits one Link header value into its "<uri>; params" parts
func splitLinkValues(value string) []string {
	parts := linkValueSep.Split(strings.TrimSpace(value), -1)
	for i := 1; i < len(parts); i++ {
		parts[i] = "<" + parts[i]
	}
	return parts
}

// parseLinkValue parses a single link-value.  link.Parse panics on some
// malformed params (an unquoted rel, a param without "="); those yield nothing.
func parseLinkValue(linkValue string) (group link.Group) {
	defer func() {
		if recover() != nil {
			group = nil
		}
	}()
	return link.Parse(strings.TrimSpace(linkValue))
}

// Parse links from an html body.  Only links inside <head> count.
func parseLinksFromHTML(htmlReader io.Reader) (map[string]struct{}, string, error) {
	tokenizer := html.NewTokenizer(htmlReader)

	hubURLs := make(map[string]struct{})
	selfURL := ""
	inHead := false

	for {
		switch tokenizer.Next() {
		case html.StartTagToken, html.SelfClosingTagToken:
			t := tokenizer.Token()
			if t.Data == "head" {
				inHead = true
			} else if t.Data == "link" && inHead {
				rel, href := linkAttrs(t)
				if href == "" {
					continue
				}
				switch rel {
				case "hub":
					hubURLs[href] = struct{}{}
				case "self":
					selfURL = href
				}
			}

		case html.EndTagToken:
			tn, _ := tokenizer.TagName()
			if string(tn) == "head" || string(tn) == "html" {
				if selfURL == "" {
					return make(map[string]struct{}), "", ErrNoSelf
				}
				return hubURLs, selfURL, nil
			}

		case html.ErrorToken:
			return make(map[string]struct{}), "", ErrMalformedHTML
		}
	}
}

func linkAttrs(t html.Token) (rel, href string) {
	for _, a := range t.Attr {
		switch a.Key {
		case "rel":
			rel = a.Val
		case "href":
			href = a.Val
		}
	}
	return rel, href
}
