// Package page wires services into the two kinds of pages the portal has:
// the login page and every page that carries the shared header (Shell).
//
// Navigation and blocking dialogs are abstracted behind Navigator and
// Dialogs so that the same page logic drives the terminal client and tests.
package page

import "context"

// Navigator moves the user to another page, e.g. common.PageLogin.
type Navigator interface {
	Navigate(ctx context.Context, page string)
}

// Dialogs are the blocking prompts a page may raise.
type Dialogs interface {
	Alert(ctx context.Context, msg string)
	Confirm(ctx context.Context, msg string) bool
}
