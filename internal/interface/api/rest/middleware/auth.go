package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"files-manager-api/internal/application/ports"
)

const (
	// TokenHeader carries the opaque session token on every
	// authenticated call.
	TokenHeader = "X-Token"
	CtxUserID   = "userID"
)

func AuthMiddleware(auth ports.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)

		userID, err := auth.Resolve(c.Request.Context(), token)
		if err != nil {
			// absent, invalid and expired tokens all answer the same
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Unauthorized"},
			)
			return
		}

		c.Set(CtxUserID, userID)

		c.Next()
	}
}
