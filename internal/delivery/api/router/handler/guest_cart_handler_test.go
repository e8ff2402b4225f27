package handler

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGuestCartHandler_AddItem_MintsGuestID(t *testing.T) {
	guestUC := mockUsecase.NewMockGuestCartUsecase(t)
	h := NewGuestCartHandler(guestUC)

	itemID := uuid.New()
	c, rec := newTestContext(http.MethodPost, "/api/guest/cart/add", `{"itemId":"`+itemID.String()+`","quantity":2}`)

	var mintedID string
	guestUC.EXPECT().AddItem(mock.Anything, mock.AnythingOfType("string"), itemID, 2).
		RunAndReturn(func(_ context.Context, guestID string, itemID uuid.UUID, quantity int) (*entity.GuestCart, error) {
			mintedID = guestID
			cart := entity.NewGuestCart(guestID)
			cart.Lines = cart.Lines.Add(itemID, quantity, decimal.Zero)

			return cart, nil
		})

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotEmpty(t, mintedID)
	assert.Equal(t, mintedID, rec.Header().Get(constants.HeaderXGuestCartID))

	var got GuestCartData
	decodeData(t, rec, &got)
	assert.Equal(t, mintedID, got.GuestID)
	assert.Equal(t, 2, got.Count)
	assert.True(t, got.TotalAmount.IsZero())
}

func TestGuestCartHandler_AddItem_KeepsExistingGuestID(t *testing.T) {
	guestUC := mockUsecase.NewMockGuestCartUsecase(t)
	h := NewGuestCartHandler(guestUC)

	itemID := uuid.New()
	c, rec := newTestContext(http.MethodPost, "/api/guest/cart/add", `{"itemId":"`+itemID.String()+`","quantity":1}`)
	c.Request().Header.Set(constants.HeaderXGuestCartID, "guest-42")

	guestUC.EXPECT().AddItem(mock.Anything, "guest-42", itemID, 1).Return(entity.NewGuestCart("guest-42"), nil)

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, "guest-42", rec.Header().Get(constants.HeaderXGuestCartID))
}

func TestGuestCartHandler_GetCart_WithoutIDIsEmpty(t *testing.T) {
	h := NewGuestCartHandler(mockUsecase.NewMockGuestCartUsecase(t))
	c, rec := newTestContext(http.MethodGet, "/api/guest/cart", "")

	require.NoError(t, h.GetCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(constants.HeaderXGuestCartID))

	var got GuestCartData
	decodeData(t, rec, &got)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
	assert.Zero(t, got.Count)
}

func TestGuestCartHandler_CountAndClear(t *testing.T) {
	guestUC := mockUsecase.NewMockGuestCartUsecase(t)
	h := NewGuestCartHandler(guestUC)

	c, rec := newTestContext(http.MethodGet, "/api/guest/cart/count", "")
	c.Request().Header.Set(constants.HeaderXGuestCartID, "guest-1")
	guestUC.EXPECT().Count(mock.Anything, "guest-1").Return(3, nil)

	require.NoError(t, h.Count(c))
	var count CountData
	decodeData(t, rec, &count)
	assert.Equal(t, 3, count.Count)

	c, rec = newTestContext(http.MethodDelete, "/api/guest/cart/clear", "")
	c.Request().Header.Set(constants.HeaderXGuestCartID, "guest-1")
	guestUC.EXPECT().Clear(mock.Anything, "guest-1").Return(nil)

	require.NoError(t, h.Clear(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuestCartHandler_ClearWithoutIDSkipsStore(t *testing.T) {
	h := NewGuestCartHandler(mockUsecase.NewMockGuestCartUsecase(t))
	c, rec := newTestContext(http.MethodDelete, "/api/guest/cart/clear", "")

	require.NoError(t, h.Clear(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
