// Package controllers file: controllers/config.go
package controllers

var (
	ApplicationURL string
	WebsocketURL   string
)

// SetConfig stores the externally visible URLs for handlers that need them.
func SetConfig(appURL, wsURL string) {
	ApplicationURL = appURL
	WebsocketURL = wsURL
}
