// File: middleware/sudo_required.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-officials-portal/logger"
)

// SudoRequired ensures the session has been unlocked with the sudo access
// code (POST /sudo/unlock) before destructive operations are allowed.
func SudoRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		isSudo, ok := session.Get("sudo").(bool)

		if !ok || !isSudo {
			logger.Warn.Println("SudoRequired: session is not sudo-unlocked; blocking access")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sudo unlock required"})
			c.Abort()
			return
		}

		// Pass through if unlocked
		c.Next()
	}
}
