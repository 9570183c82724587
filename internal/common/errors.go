// Package common defines shared constants and sentinel errors used across
// the decoding, session and transport layers. Callers should use errors.Is
// to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Decoding errors (malformed money, boolean, date or collection values).
	ErrDecode = errors.New("decode error")

	// Session errors.
	ErrAuthentication = errors.New("authentication error")
	ErrNotLoggedIn    = fmt.Errorf("not logged in: %w", ErrAuthentication)

	// Transport-level failures, passed through unchanged by the client.
	ErrTransport = errors.New("transport error")

	// Response-level errors.
	ErrUnexpectedStatus   = errors.New("unexpected status")
	ErrUnexpectedResponse = errors.New("unexpected response")
)
