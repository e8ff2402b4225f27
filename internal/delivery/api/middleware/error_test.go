package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/cart", nil), rec)

	m.HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return rec, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body := handleError(t, errors.Wrap(domainerrors.ErrCartItemNotFound, "update quantity"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CART_ITEM_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Item not found in cart", body.Error.Message)
}

func TestErrorMiddleware_AppErrorDetails(t *testing.T) {
	_, body := handleError(t, domainerrors.ErrInsufficientStock.WithDetails("only 2 left"))
	assert.Equal(t, "only 2 left", body.Error.Details)

	_, body = handleError(t, domainerrors.ErrTransactionFailed.WithDetails("pq: deadlock detected"))
	assert.Nil(t, body.Error.Details)
}

func TestErrorMiddleware_Timeout(t *testing.T) {
	rec, body := handleError(t, errors.Wrap(context.DeadlineExceeded, "find cart"))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "REQUEST_TIMEOUT", body.Error.Code)

	// A store error wrapping the deadline is still a timeout.
	rec, body = handleError(t, domainerrors.NewDatabaseExecuteError(context.DeadlineExceeded, "failed to save cart"))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "REQUEST_TIMEOUT", body.Error.Code)

	rec, body = handleError(t, domainerrors.NewDatabaseExecuteError(errors.New("pq: relation missing"), "failed to save cart"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", body.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)

	rec, body = handleError(t, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "REQUEST_TOO_LARGE", body.Error.Code)
}

func TestErrorMiddleware_UnknownErrorIsHidden(t *testing.T) {
	rec, body := handleError(t, errors.New("connection refused to 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "10.0.0.3")
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusAccepted))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}
