package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadStatus    = errors.New("unexpected status")
	ErrBadResponse  = errors.New("malformed response")
)
