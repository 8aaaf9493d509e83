package transport

import (
	"bytes"
	"context"
	"errors"
	"io/ioutil"
	"log"
	"net/http"
	"net/url"
	"strings"
	"testing"

	httpmock "gopkg.in/jarcoal/httpmock.v1"
)

var hubURLTest = "https://hub.example.com"

func newMockedHTTP(t *testing.T, logger Logger) (*HTTP, *http.Client) {
	client := &http.Client{}
	tr, err := NewHTTP(hubURLTest, http.Header{"X-Trace": {"a", "b"}}, &Config{Client: client, Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	return tr, client
}

func TestHTTP_Send_POST(t *testing.T) {
	tr, client := newMockedHTTP(t, nil)
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()

	var got url.Values
	var user, pass, contentType string
	var traces []string
	httpmock.RegisterResponder("POST", hubURLTest+"/",
		func(req *http.Request) (*http.Response, error) {
			bdy, _ := ioutil.ReadAll(req.Body)
			got, _ = url.ParseQuery(string(bdy))
			user, pass, _ = req.BasicAuth()
			contentType = req.Header.Get("Content-Type")
			traces = req.Header["X-Trace"]
			return httpmock.NewStringResponse(202, ""), nil
		})

	form := url.Values{}
	form.Set("hub.mode", "subscribe")

	resp, err := tr.Send(context.Background(), "POST", "/", form, Credentials{"user", "pass"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 202 {
		t.Fatalf("Expected code 202 but received %d", resp.StatusCode)
	}
	if got.Get("hub.mode") != "subscribe" {
		t.Fatalf("Bad mode %v", got.Get("hub.mode"))
	}
	if user != "user" || pass != "pass" {
		t.Fatalf("Bad basic auth %v:%v", user, pass)
	}
	if contentType != "application/x-www-form-urlencoded" {
		t.Fatalf("Bad content type %v", contentType)
	}
	if len(traces) != 2 {
		t.Fatalf("Expected both configured headers, got %v", traces)
	}
}

func TestHTTP_Send_GET(t *testing.T) {
	tr, client := newMockedHTTP(t, nil)
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()

	var query url.Values
	var bodyLen int
	httpmock.RegisterResponder("GET", hubURLTest+"/",
		func(req *http.Request) (*http.Response, error) {
			query = req.URL.Query()
			if req.Body != nil {
				bdy, _ := ioutil.ReadAll(req.Body)
				bodyLen = len(bdy)
			}
			return httpmock.NewStringResponse(200, "[]"), nil
		})

	form := url.Values{}
	form.Set("hub.mode", "list")
	form.Set("page", "2")

	resp, err := tr.Send(context.Background(), "GET", "/", form, Credentials{"user", "pass"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected code 200 but received %d", resp.StatusCode)
	}
	if query.Get("hub.mode") != "list" || query.Get("page") != "2" {
		t.Fatalf("Bad query %v", query)
	}
	if bodyLen != 0 {
		t.Fatalf("Expected an empty body on GET, got %d bytes", bodyLen)
	}
}

func TestHTTP_Send_TransportError(t *testing.T) {
	var buf bytes.Buffer
	tr, client := newMockedHTTP(t, log.New(&buf, "", 0))
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()

	dnsErr := errors.New("no such host")
	httpmock.RegisterResponder("POST", hubURLTest+"/",
		func(req *http.Request) (*http.Response, error) {
			return nil, dnsErr
		})

	_, err := tr.Send(context.Background(), "POST", "/", url.Values{}, Credentials{"user", "pass"})
	if err == nil {
		t.Fatal("Expected the transport error to surface")
	}
	if !strings.Contains(err.Error(), "no such host") {
		t.Fatalf("Unexpected error %v", err)
	}
	if !strings.Contains(buf.String(), "failed") {
		t.Fatalf("Expected failure to be logged, got {%s}", buf.String())
	}
}

func TestHTTP_Send_LogsWithoutForm(t *testing.T) {
	var buf bytes.Buffer
	tr, client := newMockedHTTP(t, log.New(&buf, "", 0))
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", hubURLTest+"/",
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewStringResponse(200, ""), nil
		})

	form := url.Values{}
	form.Set("hub.secret", "topsecretdigest")

	if _, err := tr.Send(context.Background(), "GET", "/", form, Credentials{"user", "pass"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "GET https://hub.example.com/ -> 200") {
		t.Fatalf("Unexpected log line {%s}", buf.String())
	}
	if strings.Contains(buf.String(), "topsecretdigest") {
		t.Fatal("Form values leaked into the log")
	}
}

func TestNewHTTP_MalformedBaseURI(t *testing.T) {
	for _, base := range []string{"", "push.superfeedr.com", "://nope", "/relative"} {
		if _, err := NewHTTP(base, nil, nil); err != ErrMalformedBaseURI {
			t.Errorf("Expected {%v} for base {%s} but got {%v}", ErrMalformedBaseURI, base, err)
		}
	}
}

func TestHTTP_Send_FormHeadersWin(t *testing.T) {
	client := &http.Client{}
	headers := http.Header{"Content-Type": {"application/json"}, "Accept": {"application/json"}}
	tr, err := NewHTTP(hubURLTest, headers, &Config{Client: client})
	if err != nil {
		t.Fatal(err)
	}
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()

	var contentTypes, accepts []string
	httpmock.RegisterResponder("POST", hubURLTest+"/",
		func(req *http.Request) (*http.Response, error) {
			contentTypes = req.Header["Content-Type"]
			accepts = req.Header["Accept"]
			return httpmock.NewStringResponse(202, ""), nil
		})

	if _, err := tr.Send(context.Background(), "POST", "/", url.Values{"hub.mode": {"subscribe"}}, Credentials{"user", "pass"}); err != nil {
		t.Fatal(err)
	}
	if len(contentTypes) != 1 || contentTypes[0] != "application/x-www-form-urlencoded" {
		t.Fatalf("Expected a single form content type, got %v", contentTypes)
	}
	if len(accepts) != 1 || accepts[0] != "application/json" {
		t.Fatalf("Configured header not sent, got %v", accepts)
	}
}
