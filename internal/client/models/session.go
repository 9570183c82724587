package models

import (
	"fmt"

	"github.com/dmitrijs2005/lufa/internal/phpser"
)

// SessionCookie is the identity carried by the session cookie payload, a
// serialized positional array (user id, email, counter, info map).
type SessionCookie struct {
	UserID string
	Email  string

	// Info is filled when the fourth element is present and well formed.
	Info *SessionInfo
}

type SessionInfo struct {
	UserEmail string
	FirstName string
}

// DecodeSessionCookie decodes a percent-decoded session cookie payload. Only
// the first two positional elements are required.
func DecodeSessionCookie(payload []byte) (SessionCookie, error) {
	v, err := phpser.Decode(payload)
	if err != nil {
		return SessionCookie{}, fmt.Errorf("session cookie: %w", err)
	}
	elems, err := phpser.Tuple(v)
	if err != nil {
		return SessionCookie{}, fmt.Errorf("session cookie: %w", err)
	}
	if len(elems) < 2 {
		return SessionCookie{}, fmt.Errorf("session cookie: %d elements, want at least 2: %w", len(elems), phpser.ErrSyntax)
	}

	userID, ok := elems[0].AsString()
	if !ok || userID == "" {
		return SessionCookie{}, fmt.Errorf("session cookie: invalid user id: %w", phpser.ErrSyntax)
	}
	if elems[1].Kind != phpser.String {
		return SessionCookie{}, fmt.Errorf("session cookie: invalid email: %w", phpser.ErrSyntax)
	}

	sc := SessionCookie{UserID: userID, Email: elems[1].Str}
	if len(elems) > 3 {
		sc.Info = sessionInfo(elems[3])
	}
	return sc, nil
}

func sessionInfo(v phpser.Value) *SessionInfo {
	email, ok := v.Get("user_email")
	if !ok || email.Kind != phpser.String {
		return nil
	}
	info := &SessionInfo{UserEmail: email.Str}
	if name, ok := v.Get("first_name"); ok && name.Kind == phpser.String {
		info.FirstName = name.Str
	}
	return info
}
