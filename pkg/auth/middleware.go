package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKeyCallerID is where the middleware stores the authenticated
// subject's ID on the gin context.
const ContextKeyCallerID = "caller_id"

// RequireRole authenticates the bearer token and enforces the caller's role.
func RequireRole(issuer *TokenIssuer, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		subject, tokenRole, err := issuer.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if tokenRole != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Set(ContextKeyCallerID, subject)
		c.Next()
	}
}

// CallerID returns the authenticated subject ID set by RequireRole.
func CallerID(c *gin.Context) string {
	return c.GetString(ContextKeyCallerID)
}
