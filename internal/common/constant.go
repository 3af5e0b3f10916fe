// Package common contains shared constants and sentinel errors used across
// portal client components.
package common

// Durable storage keys. The backend and every page agree on these names.
const (
	KeyUser    = "wh_user"
	KeyToken   = "wh_token"
	KeyAPIBase = "wh_api_base"

	// Keys written by the session-scoped revision of the login page.
	// They are only read while migrating into KeyUser.
	LegacyKeyRole     = "role"
	LegacyKeyUsername = "username"
)

// Fixed page paths, relative to the pages base URL.
const (
	PageLogin     = "login.html"
	PageDashboard = "dashboard.html"
	PageHeader    = "header.html"
)

// Backend endpoints, relative to the API base.
const (
	EndpointLogin  = "/auth/login"
	EndpointLogout = "/auth/logout"
	EndpointMe     = "/auth/me"
)

// RequestIDHeaderName is set on every outbound request.
const RequestIDHeaderName = "X-Request-ID"

// DefaultAPIBase is used when neither config nor storage provide an origin.
const DefaultAPIBase = "http://localhost:8000"

// User-facing messages.
const (
	MsgLoginFailed   = "Login failed!"
	MsgConfirmLogout = "Are you sure you want to logout?"
)
