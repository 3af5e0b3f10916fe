// Package store is the client's durable key/value storage: the equivalent of
// a browser's localStorage, kept in a single SQLite table.
//
// Values are plain strings. Callers that need structure (the session
// identity) serialize it themselves. Missing keys are reported as
// common.ErrorNotFound so they can be told apart from I/O failures.
package store
