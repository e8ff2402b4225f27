package errors

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := errors.Wrap(ErrInsufficientStock.WithDetails("only 1 left"), "add item")

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.NotErrorIs(t, err, ErrInvalidQuantity)

	var appErr AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "only 1 left", appErr.Details())
	assert.Empty(t, ErrInsufficientStock.Details())
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	err := NewDatabaseExecuteError(context.DeadlineExceeded, "failed to save cart")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
}
