package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// UpdateCartLineRequest represents the request body for changing a line's quantity
type UpdateCartLineRequest struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	OptionIDs []int64 `json:"option_ids"`
	Quantity  int32   `json:"quantity" validate:"gte=0"`
}

// RemoveCartLineRequest represents the request body for removing a line
type RemoveCartLineRequest struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	OptionIDs []int64 `json:"option_ids"`
}

// AddItem handles adding a product to the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	var req usecase.AddToCartInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	identity := middleware.GetIdentity(c)
	if err := h.cartUC.Add(c.Request().Context(), identity, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.cartUC.Summary(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, summary, "Item added to cart")
}

// UpdateItem handles replacing a line's quantity; zero removes the line
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req UpdateCartLineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	identity := middleware.GetIdentity(c)
	err := h.cartUC.UpdateQuantity(c.Request().Context(), identity, req.ProductID, req.OptionIDs, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.cartUC.Summary(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Cart updated")
}

// RemoveItem handles deleting a line from the cart
func (h *CartHandler) RemoveItem(c echo.Context) error {
	var req RemoveCartLineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	identity := middleware.GetIdentity(c)
	if err := h.cartUC.Remove(c.Request().Context(), identity, req.ProductID, req.OptionIDs); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Item removed"}, "Item removed from cart")
}

// GetCart handles retrieving the cart grouped by vendor
func (h *CartHandler) GetCart(c echo.Context) error {
	groups, err := h.cartUC.GroupedByVendor(c.Request().Context(), middleware.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, groups, "Cart retrieved successfully")
}

// GetSummary handles retrieving the cart badge counts
func (h *CartHandler) GetSummary(c echo.Context) error {
	summary, err := h.cartUC.Summary(c.Request().Context(), middleware.GetIdentity(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Cart summary retrieved successfully")
}

// Migrate handles moving the cookie cart into the signed-in user's cart
func (h *CartHandler) Migrate(c echo.Context) error {
	identity := middleware.GetIdentity(c)
	if err := h.cartUC.Migrate(c.Request().Context(), identity); err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.cartUC.Summary(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Cart migrated successfully")
}
