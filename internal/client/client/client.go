package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/dmitrijs2005/lufa/internal/common"
	"github.com/dmitrijs2005/lufa/internal/logging"
)

// identity is the cached user of an authenticated session.
type identity struct {
	userID string
	email  string
}

// Client talks to the Lufa backend on behalf of at most one user.
type Client struct {
	transport Transport
	cookies   CookieStore
	siteURL   *url.URL
	log       logging.Logger

	// authMu serializes Login and Logout; mu guards current.
	authMu  sync.Mutex
	mu      sync.RWMutex
	current *identity
}

type Option func(*Client)

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New builds a Client over an arbitrary transport. siteURL is the URL the
// session cookie is looked up for.
func New(transport Transport, cookies CookieStore, siteURL *url.URL, opts ...Option) *Client {
	c := &Client{
		transport: transport,
		cookies:   cookies,
		siteURL:   siteURL,
		log:       logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewHTTPClient builds a Client over an HTTPTransport.
func NewHTTPClient(baseURL string, lang Language, timeout time.Duration, opts ...Option) (*Client, error) {
	c := New(nil, nil, nil, opts...)
	t, err := NewHTTPTransport(baseURL, lang, timeout, c.log)
	if err != nil {
		return nil, err
	}
	c.transport = t
	c.cookies = t
	c.siteURL = t.SiteURL()
	return c, nil
}

func (c *Client) cached() *identity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *Client) setIdentity(id *identity) {
	c.mu.Lock()
	c.current = id
	c.mu.Unlock()
}

func (c *Client) get(ctx context.Context, path string) (*Response, error) {
	return c.transport.Execute(ctx, &Request{Method: http.MethodGet, Path: path})
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) (*Response, error) {
	return c.transport.Execute(ctx, &Request{Method: http.MethodPost, Path: path, Form: form})
}

// decodeJSON checks for a 2xx status and decodes the body into out.
func decodeJSON(resp *Response, path string, out any) error {
	if resp.Status < 200 || resp.Status > 299 {
		return fmt.Errorf("%s: %w: %d", path, common.ErrUnexpectedStatus, resp.Status)
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		if errors.Is(err, common.ErrDecode) {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		return fmt.Errorf("decode %s: %w: %w", path, common.ErrDecode, err)
	}
	return nil
}
