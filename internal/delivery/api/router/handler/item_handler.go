package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// categoryAll is the listing filter value meaning "every category".
const categoryAll = "all"

// ItemHandlerParams holds dependencies for ItemHandler, injected by Fx.
type ItemHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ItemHandler serves the catalog endpoints
type ItemHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler
func NewItemHandler(params ItemHandlerParams) *ItemHandler {
	return &ItemHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

func (h *ItemHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}

// ListItemsRequest represents the catalog listing query string
type ListItemsRequest struct {
	Category string `query:"category"`
	MinPrice string `query:"minPrice"`
	MaxPrice string `query:"maxPrice"`
	Search   string `query:"search"`
	Sort     string `query:"sort" validate:"omitempty,oneof=price-low price-high name rating"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	Limit    int    `query:"limit" validate:"omitempty,min=1"`
}

// CreateItemRequest represents the request body for creating an item
type CreateItemRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Description string          `json:"description" validate:"required,max=500"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	Category    string          `json:"category" validate:"required,category"`
	Image       string          `json:"image" validate:"omitempty,url"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

// UpdateItemRequest represents a partial item update; omitted fields are left untouched
type UpdateItemRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description" validate:"omitempty,min=1,max=500"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	Category    *string          `json:"category" validate:"omitempty,category"`
	Image       *string          `json:"image" validate:"omitempty,url"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	Rating      *float64         `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Reviews     *int             `json:"reviews" validate:"omitempty,gte=0"`
}

// ListItems returns one page of the catalog
func (h *ItemHandler) ListItems(c echo.Context) error {
	var req ListItemsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing query")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	query := usecase.ListItemsQuery{
		Filter: entity.ItemFilter{
			Search: strings.TrimSpace(req.Search),
		},
		Sort:  entity.ItemSort(req.Sort),
		Page:  req.Page,
		Limit: req.Limit,
	}
	if req.Category != "" && !strings.EqualFold(req.Category, categoryAll) {
		query.Filter.Category = entity.Category(req.Category)
	}

	var err error
	if query.Filter.MinPrice, err = parsePrice(req.MinPrice); err != nil {
		return response.BadRequest(c, "INVALID_PRICE", "minPrice must be a number")
	}
	if query.Filter.MaxPrice, err = parsePrice(req.MaxPrice); err != nil {
		return response.BadRequest(c, "INVALID_PRICE", "maxPrice must be a number")
	}

	page, err := h.catalogUC.ListItems(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetItem returns a single item
func (h *ItemHandler) GetItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ITEM_ID", "Invalid item ID format")
	}

	item, err := h.catalogUC.GetItem(c.Request().Context(), itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// ListCategories returns the categories that currently have items
func (h *ItemHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// GetItemQRCode renders the item's share URL as a PNG QR code
func (h *ItemHandler) GetItemQRCode(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ITEM_ID", "Invalid item ID format")
	}

	png, err := h.catalogUC.ItemQRCode(c.Request().Context(), itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateItem adds an item to the catalog
func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	item, err := h.catalogUC.CreateItem(c.Request().Context(), &usecase.CreateItemInput{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Category:    entity.Category(req.Category),
		Image:       req.Image,
		Stock:       req.Stock,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.log(c).Info("Catalog item created", slog.String("item_id", item.ID.String()))

	return response.Success(c, http.StatusCreated, item)
}

// UpdateItem applies a partial update to an item
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ITEM_ID", "Invalid item ID format")
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := &usecase.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Stock:       req.Stock,
		Rating:      req.Rating,
		Reviews:     req.Reviews,
	}
	if req.Category != nil {
		category := entity.Category(*req.Category)
		input.Category = &category
	}

	item, err := h.catalogUC.UpdateItem(c.Request().Context(), itemID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// DeleteItem removes an item from the catalog
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ITEM_ID", "Invalid item ID format")
	}

	if err := h.catalogUC.DeleteItem(c.Request().Context(), itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	h.log(c).Info("Catalog item deleted", slog.String("item_id", itemID.String()))

	return response.Success(c, http.StatusOK, response.MessageData{Message: "Item deleted successfully"})
}

func parsePrice(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}

	return &price, nil
}
