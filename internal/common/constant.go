// Package common contains shared constants and small helpers used across
// the gownshop client packages.
package common

// Keys of the persisted session state. The names match the ones the browser
// storefront keeps in localStorage, so a store seeded from it stays readable.
const (
	TokenKey        = "auth_token"
	IsAdminKey      = "is_admin"
	MobileNumberKey = "mobile_number"
)

// Header names set on outbound API requests.
const (
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"

	MIMEApplicationJSON = "application/json"
	BearerPrefix        = "Bearer "
)

// LoginPath is the credentials endpoint. A 401 from any path under it means
// "wrong credentials", not "session died".
const LoginPath = "/auth/login"
