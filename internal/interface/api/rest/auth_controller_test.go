package rest

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"files-manager-api/internal/application/ports"
	"files-manager-api/internal/application/services"
	"files-manager-api/internal/interface/api/rest/middleware"
)

func setupAuthRouter(t *testing.T, auth ports.Auth) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewAuthController(r, zap.NewNop(), auth)
	return r
}

func basicHeader(email, password string) map[string]string {
	creds := base64.StdEncoding.EncodeToString([]byte(email + ":" + password))
	return map[string]string{"Authorization": "Basic " + creds}
}

func TestAuthController_ConnectHandler(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		mockAuth   func() ports.Auth
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 no header",
			headers:    nil,
			mockAuth:   func() ports.Auth { return &FakeAuth{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "Unauthorized",
		},
		{
			name:       "401 wrong scheme",
			headers:    map[string]string{"Authorization": "Bearer token"},
			mockAuth:   func() ports.Auth { return &FakeAuth{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "Unauthorized",
		},
		{
			name:       "401 broken base64",
			headers:    map[string]string{"Authorization": "Basic %%%"},
			mockAuth:   func() ports.Auth { return &FakeAuth{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "Unauthorized",
		},
		{
			name: "401 no colon in credentials",
			headers: map[string]string{
				"Authorization": "Basic " + base64.StdEncoding.EncodeToString([]byte("justemail")),
			},
			mockAuth:   func() ports.Auth { return &FakeAuth{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "Unauthorized",
		},
		{
			name:    "401 bad credentials",
			headers: basicHeader("bob@example.com", "wrong"),
			mockAuth: func() ports.Auth {
				return &FakeAuth{
					ConnectFunc: func(ctx context.Context, email, password string) (string, error) {
						return "", services.ErrInvalidCredentials
					},
				}
			},
			wantStatus: http.StatusUnauthorized,
			wantErr:    "Unauthorized",
		},
		{
			name:    "500 store error",
			headers: basicHeader("bob@example.com", "pw"),
			mockAuth: func() ports.Auth {
				return &FakeAuth{
					ConnectFunc: func(ctx context.Context, email, password string) (string, error) {
						return "", errors.New("db down")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to create a session",
		},
		{
			name:    "200 returns the token",
			headers: basicHeader("bob@example.com", "pw"),
			mockAuth: func() ports.Auth {
				return &FakeAuth{
					ConnectFunc: func(ctx context.Context, email, password string) (string, error) {
						assert.Equal(t, "bob@example.com", email)
						assert.Equal(t, "pw", password)
						return "the-token", nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupAuthRouter(t, tt.mockAuth())
			rr := doReq(t, r, http.MethodGet, RouteConnect, nil, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errBody(t, rr))
				return
			}
			if tt.wantStatus == http.StatusOK {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "the-token", resp["token"])
			}
		})
	}
}

func TestAuthController_ConnectHandler_PasswordWithColon(t *testing.T) {
	// only the first colon separates email and password
	r := setupAuthRouter(t, &FakeAuth{
		ConnectFunc: func(ctx context.Context, email, password string) (string, error) {
			assert.Equal(t, "bob@example.com", email)
			assert.Equal(t, "p:w:d", password)
			return "tok", nil
		},
	})

	rr := doReq(t, r, http.MethodGet, RouteConnect, nil, basicHeader("bob@example.com", "p:w:d"))
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestAuthController_DisconnectHandler(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		mockAuth   func() ports.Auth
		wantStatus int
	}{
		{
			name:  "401 unknown or expired token",
			token: "gone",
			mockAuth: func() ports.Auth {
				return &FakeAuth{
					DisconnectFunc: func(ctx context.Context, token string) error {
						return services.ErrUnauthorized
					},
				}
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "500 store error",
			token: "tok",
			mockAuth: func() ports.Auth {
				return &FakeAuth{
					DisconnectFunc: func(ctx context.Context, token string) error {
						return errors.New("db down")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:  "204 revoked",
			token: "tok",
			mockAuth: func() ports.Auth {
				return &FakeAuth{
					DisconnectFunc: func(ctx context.Context, token string) error {
						assert.Equal(t, "tok", token)
						return nil
					},
				}
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupAuthRouter(t, tt.mockAuth())
			rr := doReq(t, r, http.MethodGet, RouteDisconnect, nil,
				map[string]string{middleware.TokenHeader: tt.token})
			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
