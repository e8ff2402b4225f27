package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/auth"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerTestFixture struct {
	echo      *echo.Echo
	cartUC    *mockUsecase.MockCartUsecase
	catalogUC *mockUsecase.MockCatalogUsecase
	issue     func(roles ...string) (uuid.UUID, string)
}

func newRouterTestFixture(t *testing.T, mergeEnabled bool) *routerTestFixture {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "router-access-secret"
	cfg.SecretKey.Refresh = "router-refresh-secret"
	cfg.Cart.GuestMerge.Enabled = mergeEnabled

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	cartUC := mockUsecase.NewMockCartUsecase(t)
	guestCartUC := mockUsecase.NewMockGuestCartUsecase(t)
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	NewRouter(RouterParams{
		CartHandler:      handler.NewCartHandler(handler.CartHandlerParams{CartUC: cartUC, Logger: logger}),
		GuestCartHandler: handler.NewGuestCartHandler(guestCartUC),
		ItemHandler:      handler.NewItemHandler(handler.ItemHandlerParams{CatalogUC: catalogUC, Logger: logger}),
		AuthMiddleware:   middleware.NewAuthMiddleware(tokenSvc),
		Config:           cfg,
	}).RegisterRoutes(e)

	issue := func(roles ...string) (uuid.UUID, string) {
		userID := uuid.New()
		access, _, err := tokenSvc.GenerateTokens(userID, roles)
		require.NoError(t, err)

		return userID, access
	}

	return &routerTestFixture{echo: e, cartUC: cartUC, catalogUC: catalogUC, issue: issue}
}

func (fx *routerTestFixture) serve(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_GuestMergeRoute(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		fx := newRouterTestFixture(t, false)
		_, token := fx.issue(entity.RoleUser.String())

		rec := fx.serve(http.MethodPost, "/api/cart/merge", `{"guestId":"guest-1"}`, token)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("enabled", func(t *testing.T) {
		fx := newRouterTestFixture(t, true)
		userID, token := fx.issue(entity.RoleUser.String())

		fx.cartUC.EXPECT().MergeGuestCart(mock.Anything, userID, "guest-1").
			Return(&entity.CartView{UserID: userID}, nil)

		rec := fx.serve(http.MethodPost, "/api/cart/merge", `{"guestId":"guest-1"}`, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("enabled still requires a token", func(t *testing.T) {
		fx := newRouterTestFixture(t, true)

		rec := fx.serve(http.MethodPost, "/api/cart/merge", `{"guestId":"guest-1"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRouter_CartRequiresAuthentication(t *testing.T) {
	fx := newRouterTestFixture(t, false)

	rec := fx.serve(http.MethodGet, "/api/cart", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"MISSING_TOKEN"`)

	rec = fx.serve(http.MethodGet, "/api/cart/count", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_CatalogManagementRequiresAdmin(t *testing.T) {
	fx := newRouterTestFixture(t, false)
	itemID := uuid.New()
	body := `{"name":"Desk Lamp","price":"24.50","category":"Home & Garden","stock":3}`

	rec := fx.serve(http.MethodPost, "/api/items", body, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, userToken := fx.issue(entity.RoleUser.String())
	rec = fx.serve(http.MethodPost, "/api/items", body, userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = fx.serve(http.MethodDelete, "/api/items/"+itemID.String(), "", userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	_, adminToken := fx.issue(entity.RoleAdmin.String())
	fx.catalogUC.EXPECT().DeleteItem(mock.Anything, itemID).Return(nil)

	rec = fx.serve(http.MethodDelete, "/api/items/"+itemID.String(), "", adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_PublicRoutes(t *testing.T) {
	fx := newRouterTestFixture(t, false)

	fx.catalogUC.EXPECT().ListCategories(mock.Anything).Return([]entity.Category{entity.CategoryBooks}, nil)

	rec := fx.serve(http.MethodGet, "/api/items/categories/list", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.serve(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
