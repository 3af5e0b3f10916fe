package common

import "errors"

var (
	// Storage errors.
	ErrorNotFound = errors.New("not found")

	// Session errors.
	ErrNoSession      = errors.New("no session")
	ErrSessionExpired = errors.New("session expired")

	// Login flow errors.
	ErrLoginInProgress  = errors.New("login already in progress")
	ErrEmptyCredentials = errors.New("username and password are required")

	// Header fragment errors.
	ErrFragmentIncomplete = errors.New("header fragment is missing required elements")
)
