// Package controllers file: controllers/sudo_controller.go
package controllers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"go-officials-portal/logger"
	"go-officials-portal/services"
)

// SudoController handles destructive, whole-store operations. All of its
// routes sit behind middleware.SudoRequired; Unlock is the way in.
type SudoController struct {
	Store *services.DemoStore
}

// NewSudoController constructs the controller, injecting the store.
func NewSudoController(store *services.DemoStore) *SudoController {
	return &SudoController{Store: store}
}

// checkAccessCode verifies the provided code against the bcrypt hash in
// SUDO_ACCESS_HASH. An unset hash keeps the sudo console locked.
func checkAccessCode(code string) bool {
	hash := os.Getenv("SUDO_ACCESS_HASH")
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}

// Unlock marks the session as sudo-unlocked after verifying the access code.
func (sc *SudoController) Unlock(c *gin.Context) {
	code := c.PostForm("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing access code"})
		return
	}

	if !checkAccessCode(code) {
		logger.Warn.Println("Unlock: invalid sudo access code")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid access code"})
		return
	}

	session := sessions.Default(c)
	session.Set("sudo", true)
	if err := session.Save(); err != nil {
		logger.Error.Printf("Unlock: error saving session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving session"})
		return
	}

	logger.Info.Println("Unlock: sudo console unlocked for this session")
	c.JSON(http.StatusOK, gin.H{"sudo": true})
}

// Wipe empties every entity collection.
func (sc *SudoController) Wipe(c *gin.Context) {
	sc.Store.Wipe()
	c.JSON(http.StatusOK, gin.H{"status": "wiped"})
}

// Reseed restores the store to seed state.
func (sc *SudoController) Reseed(c *gin.Context) {
	sc.Store.Reseed()
	c.JSON(http.StatusOK, gin.H{"status": "reseeded"})
}

// UpdateUserRole changes a stored user's role. The store enforces that only
// a SUPER_ADMIN actor may do this.
func (sc *SudoController) UpdateUserRole(c *gin.Context) {
	userID := c.Param("id")
	role := c.PostForm("role")
	if role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing role"})
		return
	}

	err := sc.Store.UpdateUserRole(userID, role)
	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Super admin role required"})
		return
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown user"})
		return
	case err != nil:
		logger.Error.Printf("UpdateUserRole: unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
}
