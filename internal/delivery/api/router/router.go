// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stampshop/internal/delivery/api/middleware"
	"stampshop/internal/delivery/api/router/handler"
	"stampshop/internal/domain/constants"
	"stampshop/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler   *handler.OrderHandler
	PaymentHandler *handler.PaymentHandler
	UploadHandler  *handler.UploadHandler
	AdminHandler   *handler.AdminHandler
	AdminAuth      *middleware.AdminAuthMiddleware
	Metrics        *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler   *handler.OrderHandler
	paymentHandler *handler.PaymentHandler
	uploadHandler  *handler.UploadHandler
	adminHandler   *handler.AdminHandler
	adminAuth      *middleware.AdminAuthMiddleware
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:   params.OrderHandler,
		paymentHandler: params.PaymentHandler,
		uploadHandler:  params.UploadHandler,
		adminHandler:   params.AdminHandler,
		adminAuth:      params.AdminAuth,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	// Storefront
	ordersGroup := e.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.SubmitOrder)
		ordersGroup.GET("/track", r.orderHandler.TrackOrder)
		ordersGroup.GET("/:friendlyId/qr", r.orderHandler.TrackingQR)
	}

	paymentGroup := e.Group("/payment")
	{
		paymentGroup.POST("/checkout", r.paymentHandler.CreateCheckoutSession)
		paymentGroup.GET("/verify-session", r.paymentHandler.VerifySession)
		paymentGroup.POST("/webhook", r.paymentHandler.Webhook)
	}

	e.POST("/uploads", r.uploadHandler.UploadDocument)
	e.GET(constants.DocumentsPath+"/*", r.uploadHandler.ServeDocument)

	// Back office
	adminGroup := e.Group("/admin")
	{
		adminGroup.POST("/login", r.adminHandler.Login)
		adminGroup.POST("/logout", r.adminHandler.Logout)
	}

	adminOrders := adminGroup.Group("/orders")
	adminOrders.Use(r.adminAuth.Authenticate)
	{
		adminOrders.GET("", r.adminHandler.ListOrders)
		adminOrders.GET("/:id", r.adminHandler.GetOrder)
		adminOrders.PATCH("/:id", r.adminHandler.UpdateStatus)
	}
}
