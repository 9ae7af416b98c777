// Package controllers provides HTTP handlers for the request lifecycle.
// File: controllers/request_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-officials-portal/logger"
	"go-officials-portal/services"
	"go-officials-portal/websocket"
)

// ---------------- Request Controller ----------------

// RequestController handles work request submission and resolution.
type RequestController struct {
	Store *services.DemoStore
}

// NewRequestController initializes a new instance of RequestController.
func NewRequestController(store *services.DemoStore) *RequestController {
	return &RequestController{Store: store}
}

// batchPayload carries the ids for bulk approve/decline.
type batchPayload struct {
	IDs []string `json:"ids" binding:"required"`
}

// Submit creates a PENDING work request for the acting official.
func (rc *RequestController) Submit(c *gin.Context) {
	eventID := c.PostForm("eventId")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing eventId"})
		return
	}

	request, err := rc.Store.RequestToWork(eventID)
	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Only officials can request to work events"})
		return
	case errors.Is(err, services.ErrDuplicateRequest):
		c.JSON(http.StatusConflict, gin.H{"error": "You already have a pending request for this event"})
		return
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown event"})
		return
	case err != nil:
		logger.Error.Printf("Submit: unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"request": request})
}

// Approve transitions one request to APPROVED and creates its assignment.
func (rc *RequestController) Approve(c *gin.Context) {
	rc.resolve(c, "approve")
}

// Decline transitions one request to DECLINED.
func (rc *RequestController) Decline(c *gin.Context) {
	rc.resolve(c, "decline")
}

func (rc *RequestController) resolve(c *gin.Context, action string) {
	requestID := c.Param("id")

	var err error
	if action == "approve" {
		err = rc.Store.ApproveRequest(requestID)
	} else {
		err = rc.Store.DeclineRequest(requestID)
	}

	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Elevated role required"})
		return
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found or already resolved"})
		return
	case err != nil:
		logger.Error.Printf("resolve: unexpected error on %s %s: %v", action, requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	websocket.PublishRequestDecision(action)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "action": action, "requestId": requestID})
}

// ApproveBatch applies Approve to each id in order. Partial application is
// reported, not rolled back.
func (rc *RequestController) ApproveBatch(c *gin.Context) {
	rc.resolveBatch(c, "approve")
}

// DeclineBatch applies Decline to each id in order.
func (rc *RequestController) DeclineBatch(c *gin.Context) {
	rc.resolveBatch(c, "decline")
}

func (rc *RequestController) resolveBatch(c *gin.Context, action string) {
	var payload batchPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing ids"})
		return
	}

	var applied int
	if action == "approve" {
		applied = rc.Store.ApproveRequests(payload.IDs)
	} else {
		applied = rc.Store.DeclineRequests(payload.IDs)
	}

	logger.Info.Printf("resolveBatch: %s applied to %d of %d requests", action, applied, len(payload.IDs))
	websocket.PublishRequestDecision(action)
	c.JSON(http.StatusOK, gin.H{
		"action":    action,
		"applied":   applied,
		"requested": len(payload.IDs),
	})
}
