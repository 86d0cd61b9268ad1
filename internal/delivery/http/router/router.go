// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler        *handler.CartHandler
	CheckoutHandler    *handler.CheckoutHandler
	WebhookHandler     *handler.WebhookHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler        *handler.CartHandler
	checkoutHandler    *handler.CheckoutHandler
	webhookHandler     *handler.WebhookHandler
	identityMiddleware *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:        params.CartHandler,
		checkoutHandler:    params.CheckoutHandler,
		webhookHandler:     params.WebhookHandler,
		identityMiddleware: params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Cart and checkout routes work for both anonymous and signed-in
	// shoppers; the identity middleware resolves which backend serves them.
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.identityMiddleware.Identify)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.GET("/summary", r.cartHandler.GetSummary)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items", r.cartHandler.RemoveItem)
		cartGroup.POST("/migrate", r.cartHandler.Migrate)
	}

	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.identityMiddleware.Identify)
	{
		checkoutGroup.POST("", r.checkoutHandler.Checkout)
	}

	// Gateway webhooks authenticate by signature, not by user identity.
	e.POST("/webhooks/stripe", r.webhookHandler.HandleStripeEvent)
}
