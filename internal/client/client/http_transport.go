package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/lufa/internal/common"
	"github.com/dmitrijs2005/lufa/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
)

// Version is reported in the User-Agent header.
const Version = "0.1.0"

// DefaultBaseURL is the production site.
const DefaultBaseURL = "https://montreal.lufa.com"

var userAgent = "lufa-go/" + Version

// HTTPTransport is the net/http Transport. It owns a cookie jar, so it is
// also the CookieStore of the client built on it.
type HTTPTransport struct {
	siteURL *url.URL
	jar     http.CookieJar
	client  *http.Client
	log     logging.Logger
}

// NewHTTPTransport builds a transport rooted at <baseURL>/<lang>/. A zero
// timeout disables the client timeout.
func NewHTTPTransport(baseURL string, lang Language, timeout time.Duration, log logging.Logger) (*HTTPTransport, error) {
	if lang.IsZero() {
		lang = English
	}
	if log == nil {
		log = logging.Nop()
	}

	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("base url %q: missing host", baseURL)
	}
	site := base.JoinPath(lang.String(), "/")

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	return &HTTPTransport{
		siteURL: site,
		jar:     jar,
		client:  &http.Client{Jar: jar, Timeout: timeout},
		log:     log,
	}, nil
}

// SiteURL is the language-prefixed site root that paths are resolved against.
func (t *HTTPTransport) SiteURL() *url.URL {
	u := *t.siteURL
	return &u
}

func (t *HTTPTransport) resolve(path string) *url.URL {
	return t.siteURL.JoinPath(strings.TrimLeft(path, "/"))
}

// Execute sends req and reads the whole body. Set-Cookie headers of every
// redirect hop are collected, the final response's first.
func (t *HTTPTransport) Execute(ctx context.Context, req *Request) (*Response, error) {
	target := t.resolve(req.Path)
	requestID := uuid.NewString()

	var body io.Reader
	if req.Form != nil {
		body = strings.NewReader(req.Form.Encode())
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: build %s %s: %w", common.ErrTransport, req.Method, req.Path, err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if req.Form != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set(common.RequestIDHeaderName, requestID)

	log := t.log.With("request_id", requestID, "method", req.Method, "path", req.Path)

	start := time.Now()
	resp, err := t.client.Do(httpReq)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return nil, fmt.Errorf("%w: %s %s: %w", common.ErrTransport, req.Method, req.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "read response body failed", "error", err)
		return nil, fmt.Errorf("%w: read %s %s: %w", common.ErrTransport, req.Method, req.Path, err)
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "bytes", len(data), "elapsed", time.Since(start))

	return &Response{
		Status:     resp.StatusCode,
		Header:     resp.Header,
		SetCookies: responseCookies(resp),
		Body:       data,
	}, nil
}

func responseCookies(resp *http.Response) []*http.Cookie {
	var cookies []*http.Cookie
	for r := resp; r != nil; {
		cookies = append(cookies, r.Cookies()...)
		if r.Request == nil {
			break
		}
		r = r.Request.Response
	}
	return cookies
}

// CookiesFor returns the name/value pairs the jar would send to u.
func (t *HTTPTransport) CookiesFor(u *url.URL) map[string]string {
	out := make(map[string]string)
	for _, c := range t.jar.Cookies(u) {
		out[c.Name] = c.Value
	}
	return out
}
