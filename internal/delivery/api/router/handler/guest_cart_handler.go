package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// GuestCartHandler serves carts of unauthenticated visitors, keyed by the X-Guest-Cart-Id header
type GuestCartHandler struct {
	guestCartUC usecase.GuestCartUsecase
}

// NewGuestCartHandler is the constructor for GuestCartHandler
func NewGuestCartHandler(guestCartUC usecase.GuestCartUsecase) *GuestCartHandler {
	return &GuestCartHandler{guestCartUC: guestCartUC}
}

// GuestCartData is the JSON schema of a guest cart in responses
type GuestCartData struct {
	GuestID     string           `json:"guestId"`
	Items       entity.CartLines `json:"items"`
	TotalAmount decimal.Decimal  `json:"totalAmount"`
	Count       int              `json:"count"`
}

func newGuestCartData(cart *entity.GuestCart) GuestCartData {
	items := cart.Lines
	if items == nil {
		items = entity.CartLines{}
	}

	return GuestCartData{
		GuestID:     cart.ID,
		Items:       items,
		TotalAmount: cart.TotalAmount(),
		Count:       cart.Count(),
	}
}

// guestID returns the caller's guest id. When create is set and the header is absent a new id
// is minted and echoed back in the response header.
func guestID(c echo.Context, create bool) string {
	id := c.Request().Header.Get(constants.HeaderXGuestCartID)
	if id == "" && create {
		id = uuid.NewString()
	}
	if id != "" {
		c.Response().Header().Set(constants.HeaderXGuestCartID, id)
	}

	return id
}

// GetCart returns the guest cart; a visitor without an id gets an empty cart
func (h *GuestCartHandler) GetCart(c echo.Context) error {
	id := guestID(c, false)
	if id == "" {
		return response.Success(c, http.StatusOK, newGuestCartData(entity.NewGuestCart("")))
	}

	cart, err := h.guestCartUC.GetCart(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newGuestCartData(cart))
}

// AddItem adds an item to the guest cart, minting a guest id on first use
func (h *GuestCartHandler) AddItem(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	cart, err := h.guestCartUC.AddItem(c.Request().Context(), guestID(c, true), uuid.MustParse(req.ItemID), req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newGuestCartData(cart))
}

// UpdateQuantity sets the quantity of a guest cart line; absent lines are left alone
func (h *GuestCartHandler) UpdateQuantity(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ITEM_ID", "Invalid item ID format")
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	cart, err := h.guestCartUC.UpdateQuantity(c.Request().Context(), guestID(c, true), itemID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newGuestCartData(cart))
}

// RemoveItem drops a guest cart line
func (h *GuestCartHandler) RemoveItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ITEM_ID", "Invalid item ID format")
	}

	cart, err := h.guestCartUC.RemoveItem(c.Request().Context(), guestID(c, true), itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newGuestCartData(cart))
}

// Clear deletes the stored guest cart
func (h *GuestCartHandler) Clear(c echo.Context) error {
	id := guestID(c, false)
	if id != "" {
		if err := h.guestCartUC.Clear(c.Request().Context(), id); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	return response.Success(c, http.StatusOK, response.MessageData{
		Message: "Cart cleared successfully",
		Cart:    newGuestCartData(entity.NewGuestCart(id)),
	})
}

// Count returns the number of units in the guest cart
func (h *GuestCartHandler) Count(c echo.Context) error {
	id := guestID(c, false)
	if id == "" {
		return response.Success(c, http.StatusOK, CountData{})
	}

	count, err := h.guestCartUC.Count(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CountData{Count: count})
}
