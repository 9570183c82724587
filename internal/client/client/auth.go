package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/lufa/internal/client/models"
	"github.com/dmitrijs2005/lufa/internal/common"
)

// Login posts the credentials and, when the backend answers with a session
// cookie, replaces the cached identity with the one the cookie carries. On
// any failure the previous session is left untouched.
func (c *Client) Login(ctx context.Context, email, password string) error {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	form := models.LoginForm{Email: email, Password: password}
	resp, err := c.postForm(ctx, "/login", form.Values())
	if err != nil {
		return err
	}

	cookie := findSessionCookie(resp.SetCookies)
	if cookie == nil {
		c.log.Warn(ctx, "login rejected", "status", resp.Status)
		return fmt.Errorf("failed to login: %w", common.ErrAuthentication)
	}

	sc, err := parseSessionCookie(cookie.Value)
	if err != nil {
		c.log.Warn(ctx, "malformed session cookie", "error", err)
		return fmt.Errorf("failed to login: %w: %w", common.ErrAuthentication, err)
	}

	c.setIdentity(&identity{userID: sc.UserID, email: sc.Email})
	c.log.Info(ctx, "logged in", "user_id", sc.UserID)
	return nil
}

// Logout clears the session when the backend acknowledges with 200. Any other
// status keeps the session and is reported as ErrUnexpectedStatus.
func (c *Client) Logout(ctx context.Context) error {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	resp, err := c.get(ctx, "/logout")
	if err != nil {
		return err
	}
	if resp.Status != http.StatusOK {
		c.log.Warn(ctx, "logout not acknowledged", "status", resp.Status)
		return fmt.Errorf("logout: %w: %d", common.ErrUnexpectedStatus, resp.Status)
	}

	c.setIdentity(nil)
	c.log.Info(ctx, "logged out")
	return nil
}

// IsAuthenticated reports whether an identity is cached and the cookie store
// still holds a live session cookie.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	if c.cached() == nil {
		return false
	}
	v, ok := c.cookies.CookiesFor(c.siteURL)[common.SessionCookieName]
	return ok && liveCookieValue(v)
}

// GuardLoggedIn returns ErrNotLoggedIn unless IsAuthenticated.
func (c *Client) GuardLoggedIn(ctx context.Context) error {
	if !c.IsAuthenticated(ctx) {
		return common.ErrNotLoggedIn
	}
	return nil
}

// CurrentUserID returns the cached user id. It does not consult the cookie
// store.
func (c *Client) CurrentUserID(ctx context.Context) (string, error) {
	id := c.cached()
	if id == nil {
		return "", common.ErrNotLoggedIn
	}
	return id.userID, nil
}

// CurrentEmail returns the email the session cookie carried.
func (c *Client) CurrentEmail(ctx context.Context) (string, error) {
	id := c.cached()
	if id == nil {
		return "", common.ErrNotLoggedIn
	}
	return id.email, nil
}

func liveCookieValue(v string) bool {
	return v != "" && v != common.DeletedCookieValue
}

func findSessionCookie(cookies []*http.Cookie) *http.Cookie {
	for _, c := range cookies {
		if c.Name == common.SessionCookieName && liveCookieValue(c.Value) {
			return c
		}
	}
	return nil
}

// parseSessionCookie drops the opaque prefix, percent-decodes the rest and
// decodes the serialized identity.
func parseSessionCookie(value string) (models.SessionCookie, error) {
	if len(value) <= common.SessionCookiePrefixLen {
		return models.SessionCookie{}, fmt.Errorf("session cookie too short (%d bytes)", len(value))
	}
	payload, err := url.PathUnescape(value[common.SessionCookiePrefixLen:])
	if err != nil {
		return models.SessionCookie{}, fmt.Errorf("session cookie: %w", err)
	}
	return models.DecodeSessionCookie([]byte(payload))
}
