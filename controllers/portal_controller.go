// Package controllers provides the read-side handlers for the portal.
// File: controllers/portal_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-officials-portal/logger"
	"go-officials-portal/models"
	"go-officials-portal/services"
)

// ---------------- Portal Controller ----------------

// PortalController serves the read-only projections of store state that the
// UI renders from.
type PortalController struct {
	Store *services.DemoStore
}

// NewPortalController initializes a new instance of PortalController.
func NewPortalController(store *services.DemoStore) *PortalController {
	logger.Debug.Println("NewPortalController: Initializing PortalController")
	return &PortalController{Store: store}
}

// Navigation returns the sidebar destinations for the current role.
func (pc *PortalController) Navigation(c *gin.Context) {
	role := models.NormalizeRole(string(pc.Store.CurrentRole()))
	items := models.NavForRole(role)

	logger.Debug.Printf("Navigation: %d destinations for role %s", len(items), role)
	c.JSON(http.StatusOK, gin.H{
		"role":  role,
		"items": items,
	})
}

// State returns a summary projection of the whole store for the dashboard.
func (pc *PortalController) State(c *gin.Context) {
	user, _ := pc.Store.ActiveUser()

	counts := gin.H{
		"leagues":       len(pc.Store.Leagues()),
		"schools":       len(pc.Store.Schools()),
		"teams":         len(pc.Store.Teams()),
		"venues":        len(pc.Store.Venues()),
		"users":         len(pc.Store.Users()),
		"events":        len(pc.Store.Events()),
		"requests":      len(pc.Store.Requests()),
		"assignments":   len(pc.Store.Assignments()),
		"announcements": len(pc.Store.Announcements()),
	}

	c.JSON(http.StatusOK, gin.H{
		"persona":      pc.Store.CurrentPersona(),
		"role":         pc.Store.CurrentRole(),
		"activeUser":   user,
		"branding":     pc.Store.Branding(),
		"rateLimits":   pc.Store.RateLimits(),
		"flags":        pc.Store.Flags(),
		"counts":       counts,
		"websocketUrl": WebsocketURL,
	})
}

// Events lists all events, most recent first.
func (pc *PortalController) Events(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": pc.Store.Events()})
}

// Requests lists all requests, most recent first.
func (pc *PortalController) Requests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"requests": pc.Store.Requests()})
}

// Assignments lists all assignments, most recent first.
func (pc *PortalController) Assignments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"assignments": pc.Store.Assignments()})
}

// Users lists all users.
func (pc *PortalController) Users(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": pc.Store.Users()})
}

// Announcements lists all announcements.
func (pc *PortalController) Announcements(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"announcements": pc.Store.Announcements()})
}

// Activity returns the activity feed, newest first.
func (pc *PortalController) Activity(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"activity": pc.Store.Activity()})
}

// EventQRCode returns a PNG QR code linking to the event's check-in page.
func (pc *PortalController) EventQRCode(c *gin.Context) {
	eventID := c.Param("id")
	if _, ok := pc.Store.EventByID(eventID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown event"})
		return
	}

	size := 256
	if raw := c.Query("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			size = parsed
		}
	}

	png, err := services.GenerateEventQRCode(eventID, size)
	if err != nil {
		logger.Error.Printf("EventQRCode: failed to generate QR code for event %s: %v", eventID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
