package superfeedr

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/url"
	"testing"

	"github.com/adamsanghera/go-superfeedr/pkg/transport"
	httpmock "gopkg.in/jarcoal/httpmock.v1"
)

var (
	hubURLTest      = DefaultBaseURI + "/"
	topicURLTest    = "https://example.com/feed.xml"
	callbackURLTest = "https://app.example/callback"
)

// capturedRequest is what a mocked hub saw
type capturedRequest struct {
	method   string
	form     url.Values
	rawBody  string
	username string
	password string
}

// newMockedClient returns a Client whose http.Client is intercepted by httpmock.
// The caller must httpmock.DeactivateAndReset().
func newMockedClient(t *testing.T) *Client {
	hc := &http.Client{}
	cfg := NewConfig()
	cfg.Transport.Client = hc

	c, err := New("user", "pass", "s3cr3t", cfg)
	if err != nil {
		t.Fatal(err)
	}
	httpmock.ActivateNonDefault(hc)
	return c
}

// setupHub registers a responder for method on the hub root that records the request into got
func setupHub(method string, code int, body string, got *capturedRequest) {
	httpmock.RegisterResponder(method, hubURLTest,
		func(req *http.Request) (*http.Response, error) {
			got.method = req.Method
			got.username, got.password, _ = req.BasicAuth()
			if method == "GET" {
				got.form = req.URL.Query()
				got.rawBody = req.URL.RawQuery
			} else {
				bdy, _ := ioutil.ReadAll(req.Body)
				got.rawBody = string(bdy)
				got.form, _ = url.ParseQuery(got.rawBody)
			}
			return httpmock.NewStringResponse(code, body), nil
		})
}

// expectFields fails unless form holds exactly the given fields
func expectFields(t *testing.T, form url.Values, fields map[string]string) {
	t.Helper()
	if len(form) != len(fields) {
		t.Fatalf("Expected %d fields but got %d: {%v}", len(fields), len(form), form)
	}
	for key, val := range fields {
		if got, ok := form[key]; !ok || len(got) != 1 || got[0] != val {
			t.Fatalf("Bad %s: %v instead of %v", key, got, val)
		}
	}
}

// recordingSender is a transport.Sender that never touches the network
type recordingSender struct {
	calls []recordedCall
	resp  *http.Response
	err   error
}

type recordedCall struct {
	method string
	path   string
	form   url.Values
	creds  transport.Credentials
}

func (r *recordingSender) Send(ctx context.Context, method, path string, form url.Values, creds transport.Credentials) (*http.Response, error) {
	r.calls = append(r.calls, recordedCall{method, path, form, creds})
	return r.resp, r.err
}
