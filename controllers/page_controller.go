// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-officials-portal/logger"
)

// Health is the load balancer health check endpoint.
func Health(c *gin.Context) {
	logger.Info.Println("Health: Health check requested")
	c.String(http.StatusOK, "OK")
}

// Logout clears the session and sends the user back to the login page.
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	persona := session.Get("persona")

	if persona != nil {
		logger.Info.Printf("Logout: Logging out persona %v", persona)
	}

	session.Clear()
	if err := session.Save(); err != nil {
		logger.Error.Printf("Logout: Error saving session during logout: %v", err)
	} else {
		logger.Info.Println("Logout: Session cleared successfully")
	}

	c.Redirect(http.StatusFound, "/login")
}
