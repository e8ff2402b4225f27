package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, func(roles ...string) (uuid.UUID, string)) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "middleware-access-secret"
	cfg.SecretKey.Refresh = "middleware-refresh-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	issue := func(roles ...string) (uuid.UUID, string) {
		userID := uuid.New()
		access, _, err := tokenSvc.GenerateTokens(userID, roles)
		require.NoError(t, err)

		return userID, access
	}

	return NewAuthMiddleware(tokenSvc), issue
}

func serve(t *testing.T, handler echo.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	m, issue := newTestAuthMiddleware(t)
	userID, token := issue(entity.RoleUser.String())

	var seen uuid.UUID
	handler := m.Authenticate(func(c echo.Context) error {
		seen, _ = GetUserID(c)

		return c.NoContent(http.StatusNoContent)
	})

	rec := serve(t, handler, "Bearer "+token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, userID, seen)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	m, issue := newTestAuthMiddleware(t)
	_, token := issue()

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"missing header", "", `"MISSING_TOKEN"`},
		{"not bearer", "Basic abc", `"INVALID_TOKEN"`},
		{"empty bearer", "Bearer ", `"INVALID_TOKEN"`},
		{"garbage token", "Bearer not.a.jwt", `"INVALID_TOKEN"`},
		{"tampered token", "Bearer " + token + "x", `"INVALID_TOKEN"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := m.Authenticate(func(echo.Context) error {
				t.Fatal("next handler must not run")

				return nil
			})

			rec := serve(t, handler, tt.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	tests := []struct {
		name  string
		roles []string
		want  int
	}{
		{"admin allowed", []string{"user", "admin"}, http.StatusNoContent},
		{"user forbidden", []string{"user"}, http.StatusForbidden},
		{"no roles forbidden", nil, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := func(c echo.Context) error {
				deliverycontext.SetUser(c, uuid.New(), tt.roles)

				return m.RequireRole(entity.RoleAdmin)(next)(c)
			}

			rec := serve(t, handler, "")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
