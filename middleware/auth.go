// Package middleware provides request filters and security checks for the portal.
// File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-officials-portal/logger"
)

// -------------- authentication middleware --------------

// AuthRequired ensures a persona has been picked for this session.
// How it works:
// - Retrieves the session from the request context.
// - Checks if the "persona" session variable is set.
// - If not, redirects to "/login" and aborts execution.
// - Otherwise, the request proceeds.
// Usage:
//
//	protected := router.Group("/", middleware.AuthRequired)
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	persona := session.Get("persona")

	// block request if no persona was picked yet
	if persona == nil {
		logger.Warn.Printf("AuthRequired: no persona in session; redirecting to /login")
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	logger.Debug.Println("[AuthRequired] Persona present - proceeding with request")
	c.Next()
}
