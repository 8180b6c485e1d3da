package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/shared/apperr"
)

// ContextUserID is the gin context key under which the authenticated user id is stored.
const ContextUserID = "userID"

// Verifier validates a presented token and returns its identity payload.
type Verifier interface {
	Verify(tokenString string) (entity.TokenPayload, error)
}

// AuthRequired returns a Gin middleware function that validates bearer tokens
// and restricts access to authenticated users only. The verifier is injected;
// the middleware never reads configuration from the environment.
func AuthRequired(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperr.Unauthorized("missing bearer token"))
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify signature and expiry
		payload, err := verifier.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperr.Unauthorized("invalid token"))
			return
		}

		// 3. Expose the authenticated user id to downstream handlers
		c.Set(ContextUserID, payload.ID)
		c.Next()
	}
}
