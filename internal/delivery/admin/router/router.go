// Package router contains routing setup for the back-office delivery.
package router

import (
	"pharmacy/internal/delivery/admin/middleware"
	"pharmacy/internal/delivery/admin/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	PosterHandler  *handler.PosterHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	posterHandler  *handler.PosterHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		posterHandler:  params.PosterHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the back-office routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session)
	}

	// Back-office routes that require an active operator session
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.PUT("/auth/password", r.authHandler.ChangePassword)

	// Product management routes
	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct)
		productsGroup.POST("/image", r.productHandler.UploadImage)
	}

	// Order management routes
	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.PUT("/:id/status", r.orderHandler.UpdateStatus)
		ordersGroup.DELETE("/:id", r.orderHandler.DeleteOrder)
	}

	// Dashboard statistics
	apiV1.GET("/stats", r.orderHandler.Statistics)

	// Poster management routes
	posterGroup := apiV1.Group("/poster")
	{
		posterGroup.GET("", r.posterHandler.GetPoster)
		posterGroup.POST("", r.posterHandler.UploadPoster)
		posterGroup.PUT("/visibility", r.posterHandler.SetVisibility)
		posterGroup.DELETE("", r.posterHandler.DeletePoster)
	}
}
