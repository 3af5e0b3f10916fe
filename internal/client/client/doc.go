// Package client talks to the portal backend and to the static page host.
//
// # Overview
//
// The Client interface is the transport-agnostic contract used by services:
// Login, Logout, Me and FetchFragment. HTTPClient implements it over
// net/http: login posts form-encoded credentials, logout and me carry the
// bearer token, and fragments are fetched relative to the pages base URL.
// Every request carries a fresh X-Request-ID.
//
// # Error Handling
//
// Transport failures map to ErrUnavailable, 401/403 to ErrUnauthorized,
// other non-2xx statuses to ErrBadStatus and undecodable or incomplete
// bodies to ErrBadResponse. Match them with errors.Is.
package client
