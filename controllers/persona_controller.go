// Package controllers file: controllers/persona_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-officials-portal/logger"
	"go-officials-portal/services"
)

// ---------------- Persona Controller ----------------

// PersonaController switches the active persona and role while signed in.
type PersonaController struct {
	Store *services.DemoStore
}

// NewPersonaController initializes a new instance of PersonaController.
func NewPersonaController(store *services.DemoStore) *PersonaController {
	return &PersonaController{Store: store}
}

// SetPersona switches to another preset persona mid-session.
func (pc *PersonaController) SetPersona(c *gin.Context) {
	label := c.PostForm("persona")
	if label == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing persona"})
		return
	}

	if err := pc.Store.SetPersona(label); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown persona"})
			return
		}
		logger.Error.Printf("SetPersona: unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	// keep the session label in step with the store
	session := sessions.Default(c)
	session.Set("persona", label)
	if err := session.Save(); err != nil {
		logger.Error.Printf("SetPersona: error saving session: %v", err)
	}

	user, _ := pc.Store.ActiveUser()
	c.JSON(http.StatusOK, gin.H{
		"persona": label,
		"role":    pc.Store.CurrentRole(),
		"user":    user,
	})
}

// SetRole overrides the current role without changing personas. The override
// may diverge from the active user's stored role; this is a deliberate
// demo-only escape hatch for testing role-gated screens.
func (pc *PersonaController) SetRole(c *gin.Context) {
	role := c.PostForm("role")
	if role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing role"})
		return
	}

	normalized := pc.Store.SetRole(role)
	c.JSON(http.StatusOK, gin.H{"role": normalized})
}
