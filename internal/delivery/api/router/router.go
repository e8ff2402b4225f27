// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler      *handler.CartHandler
	GuestCartHandler *handler.GuestCartHandler
	ItemHandler      *handler.ItemHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler      *handler.CartHandler
	guestCartHandler *handler.GuestCartHandler
	itemHandler      *handler.ItemHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:      params.CartHandler,
		guestCartHandler: params.GuestCartHandler,
		itemHandler:      params.ItemHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Cart routes require authentication
	cartGroup := api.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/add", r.cartHandler.AddItem)
		cartGroup.PUT("/update/:itemId", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/remove/:itemId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("/clear", r.cartHandler.Clear)
		cartGroup.GET("/count", r.cartHandler.Count)

		if r.config.Cart.GuestMerge.Enabled {
			cartGroup.POST("/merge", r.cartHandler.MergeGuestCart)
		}
	}

	// Guest cart routes, keyed by the X-Guest-Cart-Id header
	guestGroup := api.Group("/guest/cart")
	{
		guestGroup.GET("", r.guestCartHandler.GetCart)
		guestGroup.POST("/add", r.guestCartHandler.AddItem)
		guestGroup.PUT("/update/:itemId", r.guestCartHandler.UpdateQuantity)
		guestGroup.DELETE("/remove/:itemId", r.guestCartHandler.RemoveItem)
		guestGroup.DELETE("/clear", r.guestCartHandler.Clear)
		guestGroup.GET("/count", r.guestCartHandler.Count)
	}

	// Public catalog routes
	itemsGroup := api.Group("/items")
	{
		itemsGroup.GET("", r.itemHandler.ListItems)
		itemsGroup.GET("/categories/list", r.itemHandler.ListCategories)
		itemsGroup.GET("/:id", r.itemHandler.GetItem)
		itemsGroup.GET("/:id/qrcode", r.itemHandler.GetItemQRCode)
	}

	// Catalog management requires the admin role
	adminItems := api.Group("/items", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminItems.POST("", r.itemHandler.CreateItem)
		adminItems.PUT("/:id", r.itemHandler.UpdateItem)
		adminItems.DELETE("/:id", r.itemHandler.DeleteItem)
	}
}
