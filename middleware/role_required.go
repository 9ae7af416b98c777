// Package middleware - gate for elevated-role operations.
// file: middleware/role_required.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-officials-portal/logger"
	"go-officials-portal/models"
	"go-officials-portal/services"
)

// ElevatedRequired blocks requests unless the store's current role may
// approve or decline requests (SUPER_ADMIN, ADMIN, AD).
func ElevatedRequired(store *services.DemoStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := store.CurrentRole()

		logger.Debug.Printf("ElevatedRequired Middleware - role=%s", role)

		if !role.IsElevated() {
			logger.Warn.Printf("ElevatedRequired Middleware - blocked role %s", role)
			c.JSON(http.StatusForbidden, gin.H{"error": "Elevated role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// SuperAdminRequired blocks requests unless the store's current role is
// SUPER_ADMIN. Used for user-role management.
func SuperAdminRequired(store *services.DemoStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := store.CurrentRole()

		if role != models.RoleSuperAdmin {
			logger.Warn.Printf("SuperAdminRequired Middleware - blocked role %s", role)
			c.JSON(http.StatusForbidden, gin.H{"error": "Super admin role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
