// Package client is a client for the Lufa Farms grocery backend.
//
// # Overview
//
// The package provides:
//  1. A transport boundary (see Transport and CookieStore) and its net/http
//     implementation (see HTTPTransport) with a public-suffix aware cookie
//     jar, per-request correlation ids and the site language in the URL.
//  2. The Client, which builds requests, owns the session state machine
//     (Anonymous or Authenticated) and decodes JSON records from the models
//     package.
//  3. Account operations: Login/Logout, Profile, Cards, Transactions,
//     ActiveOrder and TrackOrder.
//
// # Sessions
//
// Login decodes the identity from the lufaState cookie set by the backend
// and caches it. The cookie store stays the authority: IsAuthenticated is
// true only while the identity is cached AND the cookie store still holds a
// live lufaState cookie. Authenticated operations check this before any
// request is sent.
//
// # Error Handling
//
// Errors match the sentinels of the common package with errors.Is:
// ErrTransport (network failures, never retried), ErrAuthentication (login
// failures), ErrNotLoggedIn (precondition failures, also an
// ErrAuthentication), ErrDecode (malformed records), ErrUnexpectedStatus and
// ErrUnexpectedResponse.
//
// # Concurrency
//
// A Client is safe for concurrent use. Readers of the session share a read
// lock; Login and Logout are serialized against each other.
package client
