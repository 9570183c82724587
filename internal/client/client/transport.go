package client

import (
	"context"
	"net/http"
	"net/url"
)

// Request is an outgoing call. Path is relative to the language-prefixed site
// root; Form, when set, is sent as an urlencoded body.
type Request struct {
	Method string
	Path   string
	Form   url.Values
	Header http.Header
}

// Response is a fully read reply.
type Response struct {
	Status     int
	Header     http.Header
	SetCookies []*http.Cookie
	Body       []byte
}

// Transport executes requests. Failures are reported once and never retried.
type Transport interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
}

// CookieStore is a read-only view of the cookies the transport would send to u.
type CookieStore interface {
	CookiesFor(u *url.URL) map[string]string
}
