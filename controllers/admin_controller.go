// Package controllers provides HTTP handlers for various admin operations.
// File: controllers/admin_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-officials-portal/logger"
	"go-officials-portal/models"
	"go-officials-portal/services"
	"go-officials-portal/websocket"
)

// ---------------- Admin Controller ----------------

// AdminController provides admin operations for settings, feature flags,
// and demo data management. Routes using it sit behind ElevatedRequired.
type AdminController struct {
	Store *services.DemoStore
}

// NewAdminController initializes a new instance of AdminController.
func NewAdminController(store *services.DemoStore) *AdminController {
	return &AdminController{Store: store}
}

// ToggleFlag flips one feature flag.
func (ac *AdminController) ToggleFlag(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing flag name"})
		return
	}

	enabled := ac.Store.ToggleFlag(name)
	c.JSON(http.StatusOK, gin.H{"flag": name, "enabled": enabled})
}

// SetBranding replaces the branding settings.
func (ac *AdminController) SetBranding(c *gin.Context) {
	var branding models.Branding
	if err := c.ShouldBindJSON(&branding); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid branding payload"})
		return
	}

	ac.Store.SetBranding(branding)
	c.JSON(http.StatusOK, gin.H{"branding": branding})
}

// SetRateLimits replaces the rate limit settings.
func (ac *AdminController) SetRateLimits(c *gin.Context) {
	var limits models.RateLimits
	if err := c.ShouldBindJSON(&limits); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rate limit payload"})
		return
	}

	ac.Store.SetRateLimits(limits)
	c.JSON(http.StatusOK, gin.H{"rateLimits": limits})
}

// UpdateNotes sets the per-event notes override.
func (ac *AdminController) UpdateNotes(c *gin.Context) {
	eventID := c.Param("id")
	notes := c.PostForm("notes")

	if err := ac.Store.UpdateNotes(eventID, notes); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown event"})
			return
		}
		logger.Error.Printf("UpdateNotes: unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"eventId": eventID, "notes": notes})
}

// GenerateSample adds a batch of synthetic schools, teams, and events.
func (ac *AdminController) GenerateSample(c *gin.Context) {
	count := 3
	if raw := c.PostForm("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be a positive integer"})
			return
		}
		count = parsed
	}

	ac.Store.GenerateSample(count)
	websocket.PublishSampleBatch(count)
	c.JSON(http.StatusOK, gin.H{"generated": count})
}

// LogAction appends a free-form activity entry.
func (ac *AdminController) LogAction(c *gin.Context) {
	message := c.PostForm("message")
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing message"})
		return
	}

	entry := ac.Store.LogAction(message)
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}
