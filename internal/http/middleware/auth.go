// README: Bearer-token auth middleware backed by a TokenVerifier.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kottage/internal/infra"
)

const (
	ctxKeyUID   = "auth_uid"
	ctxKeyEmail = "auth_email"
)

// Auth verifies the Authorization bearer token on every request and stashes
// the caller identity in the Gin context. Missing or invalid tokens abort
// with 401.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		auth, err := verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ctxKeyUID, auth.UID)
		c.Set(ctxKeyEmail, auth.Email)
		c.Next()
	}
}

// CallerUID returns the verified identity id, empty when unauthenticated.
func CallerUID(c *gin.Context) string {
	return c.GetString(ctxKeyUID)
}

// CallerEmail returns the verified email claim, empty when absent.
func CallerEmail(c *gin.Context) string {
	return c.GetString(ctxKeyEmail)
}
