package middleware

import (
	"net/http"
	"strings"

	"supplier-backend/services"

	"github.com/gin-gonic/gin"
)

// TokenHeader carries the admin session token on every authenticated request.
const TokenHeader = "X-Admin-Token"

// AuthRequired rejects requests whose token is missing or not registered.
func AuthRequired(sessions *services.SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(TokenHeader))
		if token == "" || !sessions.Valid(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
