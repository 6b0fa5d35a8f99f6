package internal

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrInsecureTransport is returned for plain-http requests when insecure transport is disabled
var ErrInsecureTransport = errors.New("plain http is disabled (set insecure_transport = true for local development)")

// guardedTransport refuses non-TLS requests unless explicitly allowed
type guardedTransport struct {
	base           http.RoundTripper
	allowPlainHTTP bool
}

func (t *guardedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" && !t.allowPlainHTTP {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Redacted(), ErrInsecureTransport)
	}
	return t.base.RoundTrip(req)
}

// NewHTTPClient builds the client shared by all upstream calls of a run.
// insecureTransport permits plain-http endpoints; it is scoped to the returned client.
func NewHTTPClient(timeout time.Duration, insecureTransport bool) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &guardedTransport{
			base:           http.DefaultTransport.(*http.Transport).Clone(),
			allowPlainHTTP: insecureTransport,
		},
	}
}
