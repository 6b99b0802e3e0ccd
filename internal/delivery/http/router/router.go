// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shop/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler  *handler.ProductHandler
	CustomerHandler *handler.CustomerHandler
	CartHandler     *handler.CartHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler  *handler.ProductHandler
	customerHandler *handler.CustomerHandler
	cartHandler     *handler.CartHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:  params.ProductHandler,
		customerHandler: params.CustomerHandler,
		cartHandler:     params.CartHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	productGroup := e.Group("/products")
	{
		productGroup.POST("", r.productHandler.Create)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.DELETE("/:id", r.productHandler.Delete)
		productGroup.POST("/:id/buy", r.productHandler.Buy)
		productGroup.POST("/:id/properties", r.productHandler.AddProperty)
		productGroup.DELETE("/:id/properties", r.productHandler.RemoveProperty)
		productGroup.PATCH("/:id/name", r.productHandler.UpdateName)
		productGroup.PATCH("/:id/price", r.productHandler.UpdatePrice)
		productGroup.PATCH("/:id/quantity", r.productHandler.UpdateQuantity)
		productGroup.PATCH("/:id/description", r.productHandler.UpdateDescription)
		productGroup.PATCH("/:id/discount", r.productHandler.UpdateDiscount)
	}

	customerGroup := e.Group("/customers")
	{
		customerGroup.POST("", r.customerHandler.Create)
		customerGroup.GET("/:id", r.customerHandler.Get)
		customerGroup.DELETE("/:id", r.customerHandler.Delete)
		customerGroup.PATCH("/:id/email", r.customerHandler.UpdateEmail)
		customerGroup.PATCH("/:id/password", r.customerHandler.UpdatePassword)
		customerGroup.PATCH("/:id/admin", r.customerHandler.UpdateIsAdmin)
		customerGroup.PUT("/:id/address", r.customerHandler.UpdateAddress)
	}

	cartGroup := e.Group("/carts")
	{
		cartGroup.POST("", r.cartHandler.Create)
		cartGroup.GET("/:id", r.cartHandler.Get)
		cartGroup.DELETE("/:id", r.cartHandler.Delete)
		cartGroup.POST("/:id/products/:productId", r.cartHandler.AddProduct)
		cartGroup.DELETE("/:id/products/:productId", r.cartHandler.RemoveProduct)
		cartGroup.PUT("/:id/customer", r.cartHandler.UpdateCustomer)
	}
}
