package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		handler echo.HandlerFunc
		logged  bool
		status  int
	}{
		{
			name:    "quiet success without debug",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			status:  http.StatusOK,
		},
		{
			name:    "success with debug",
			debug:   true,
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			logged:  true,
			status:  http.StatusOK,
		},
		{
			name:    "server error always logged",
			handler: func(echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway) },
			logged:  true,
			status:  http.StatusBadGateway,
		},
		{
			name:    "client error without debug",
			handler: func(echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) },
			status:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			_ = NewLoggerMiddleware(logger, cfg).Handle(tt.handler)(c)

			require.Equal(t, tt.status, rec.Code)
			if !tt.logged {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), `"msg":"HTTP request"`)
			assert.Contains(t, buf.String(), `"uri":"/api/cart"`)
		})
	}
}
