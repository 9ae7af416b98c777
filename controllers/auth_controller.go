// Package controllers handles persona selection and session management.
// File: controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-officials-portal/logger"
	"go-officials-portal/services"
)

// AuthController signs sessions in and out by switching personas.
type AuthController struct {
	Store *services.DemoStore
}

// NewAuthController constructs the controller with its store dependency.
func NewAuthController(store *services.DemoStore) *AuthController {
	return &AuthController{Store: store}
}

// ------------------ login handling ------------------

// ShowLoginPage returns the preset personas the demo can sign in as.
func (ac *AuthController) ShowLoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"personas": ac.Store.Personas(),
		"branding": ac.Store.Branding(),
	})
}

// PerformLogin switches the store to the requested persona and marks the
// session as signed in. An unknown persona label is rejected without
// touching the active identity.
func (ac *AuthController) PerformLogin(c *gin.Context) {
	session := sessions.Default(c)

	label := c.PostForm("persona")
	if label == "" {
		logger.Warn.Println("PerformLogin: missing persona field")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please pick a persona."})
		return
	}

	if err := ac.Store.SetPersona(label); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			logger.Warn.Printf("PerformLogin: unknown persona %q", label)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown persona."})
			return
		}
		logger.Error.Printf("PerformLogin: persona switch failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error, please try again."})
		return
	}

	session.Set("persona", label)
	if err := session.Save(); err != nil {
		logger.Error.Println("PerformLogin: Failed to save session:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving session"})
		return
	}

	user, _ := ac.Store.ActiveUser()
	logger.Info.Printf("PerformLogin: session signed in as %q (user=%s)", label, user.ID)
	c.JSON(http.StatusOK, gin.H{
		"persona": label,
		"role":    ac.Store.CurrentRole(),
		"user":    user,
	})
}
