// Package router contains routing setup for the storefront delivery.
package router

import (
	"pharmacy/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
	}
}

// RegisterRoutes sets up all the storefront routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Catalog routes
	apiV1.GET("/products", r.catalogHandler.ListProducts)
	apiV1.GET("/products/:id", r.catalogHandler.GetProduct)
	apiV1.GET("/categories", r.catalogHandler.ListCategories)
	apiV1.GET("/poster", r.catalogHandler.GetPoster)

	// Cart routes
	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	// Favorites and display settings
	apiV1.GET("/favorites", r.cartHandler.ListFavorites)
	apiV1.POST("/favorites/:productId/toggle", r.cartHandler.ToggleFavorite)
	settingsGroup := apiV1.Group("/settings")
	{
		settingsGroup.GET("", r.cartHandler.GetSettings)
		settingsGroup.POST("/dark-mode/toggle", r.cartHandler.ToggleDarkMode)
		settingsGroup.POST("/language/toggle", r.cartHandler.ToggleLanguage)
	}

	// Direct-order routes
	orderGroup := apiV1.Group("/order")
	{
		orderGroup.POST("", r.orderHandler.Open)
		orderGroup.GET("", r.orderHandler.GetForm)
		orderGroup.PUT("/quantity", r.orderHandler.SetQuantity)
		orderGroup.POST("/location", r.orderHandler.CaptureLocation)
		orderGroup.POST("/submit", r.orderHandler.Submit)
		orderGroup.DELETE("", r.orderHandler.Cancel)
	}

	// Chat contact routes
	contactGroup := apiV1.Group("/contact")
	{
		contactGroup.GET("/whatsapp", r.orderHandler.ContactLink)
		contactGroup.GET("/whatsapp/qr", r.orderHandler.ContactQR)
	}
}
