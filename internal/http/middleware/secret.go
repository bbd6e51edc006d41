package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const SecretHeader = "X-Dashboard-Secret"

// DashboardSecret gates a route group behind the shared dashboard secret, sent
// either as X-Dashboard-Secret or as a bearer token. An empty secret disables it.
func DashboardSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		got := c.GetHeader(SecretHeader)
		if got == "" {
			if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				got = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid dashboard secret"})
			return
		}
		c.Next()
	}
}
