package rest

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"files-manager-api/internal/application/ports"
	"files-manager-api/internal/application/services"
	"files-manager-api/internal/interface/api/rest/middleware"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.GET(RouteConnect, ac.ConnectHandler)
	r.GET(RouteDisconnect, ac.DisconnectHandler)

	return ac
}

// ConnectHandler trades Basic credentials for an opaque session token.
func (ac *AuthController) ConnectHandler(c *gin.Context) {
	email, password, ok := parseBasicAuth(c.GetHeader("Authorization"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	token, err := ac.authService.Connect(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a session"},
		)
		ac.logger.Error("Connect() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (ac *AuthController) DisconnectHandler(c *gin.Context) {
	token := c.GetHeader(middleware.TokenHeader)

	if err := ac.authService.Disconnect(c.Request.Context(), token); err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to destroy the session"},
		)
		ac.logger.Error("Disconnect() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// parseBasicAuth decodes "Basic base64(email:password)". Credentials
// never travel past this boundary in clear form.
func parseBasicAuth(header string) (email, password string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}

	raw, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}

	email, password, ok = strings.Cut(string(raw), ":")
	if !ok || email == "" || password == "" {
		return "", "", false
	}

	return email, password, true
}
