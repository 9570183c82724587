// Package common contains shared constants and sentinel errors used across
// the Lufa client components.
package common

// SessionCookieName is the cookie the backend sets on a successful login.
// Its presence in the cookie store is what makes a session live.
const SessionCookieName = "lufaState"

// DeletedCookieValue is the value the backend writes into a cookie it wants
// the browser to drop.
const DeletedCookieValue = "deleted"

// SessionCookiePrefixLen is the length of the opaque prefix that precedes the
// percent-encoded payload of the session cookie.
const SessionCookiePrefixLen = 40

// RequestIDHeaderName carries the per-request correlation id on outbound requests.
const RequestIDHeaderName = "X-Request-ID"
