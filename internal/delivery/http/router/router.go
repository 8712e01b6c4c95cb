// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inndoor/internal/delivery/http/middleware"
	"inndoor/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler          *handler.UserHandler
	PropertyHandler      *handler.PropertyHandler
	InspectionHandler    *handler.InspectionHandler
	DealHandler          *handler.DealHandler
	ReviewHandler        *handler.ReviewHandler
	MessageHandler       *handler.MessageHandler
	NotificationHandler  *handler.NotificationHandler
	SavedPropertyHandler *handler.SavedPropertyHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)
	e.Use(r.params.LoggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/refresh", r.params.UserHandler.Refresh)
		authGroup.POST("/logout", r.params.UserHandler.Logout)
	}

	authed := r.params.AuthMiddleware.Authenticate

	// Account and profile routes
	accountGroup := e.Group("/accounts", authed)
	{
		accountGroup.GET("/me", r.params.UserHandler.Me)
		accountGroup.PATCH("/me/profile", r.params.UserHandler.UpdateProfile)
		accountGroup.GET("/:accountId", r.params.UserHandler.GetAccount)
		accountGroup.POST("/:accountId/verification/review", r.params.UserHandler.ReviewVerification)
	}

	// Property catalog routes
	propertyGroup := e.Group("/properties", authed)
	{
		propertyGroup.POST("", r.params.PropertyHandler.Create)
		propertyGroup.GET("", r.params.PropertyHandler.List)
		propertyGroup.GET("/:propertyId", r.params.PropertyHandler.Get)
		propertyGroup.PATCH("/:propertyId", r.params.PropertyHandler.Update)
		propertyGroup.DELETE("/:propertyId", r.params.PropertyHandler.Delete)
		propertyGroup.POST("/:propertyId/increment-views", r.params.PropertyHandler.IncrementViews)
		propertyGroup.POST("/:propertyId/verify", r.params.PropertyHandler.Verify)
		propertyGroup.GET("/:propertyId/qrcode", r.params.PropertyHandler.ShareQR)

		propertyGroup.POST("/:propertyId/images", r.params.PropertyHandler.AddImage)
		propertyGroup.GET("/:propertyId/images", r.params.PropertyHandler.ListImages)
		propertyGroup.POST("/:propertyId/images/:imageId/primary", r.params.PropertyHandler.SetPrimaryImage)
		propertyGroup.DELETE("/:propertyId/images/:imageId", r.params.PropertyHandler.DeleteImage)
	}

	// Inspection scheduler routes
	inspectionGroup := e.Group("/inspections", authed)
	{
		inspectionGroup.POST("", r.params.InspectionHandler.Request)
		inspectionGroup.GET("", r.params.InspectionHandler.List)
		inspectionGroup.GET("/:inspectionId", r.params.InspectionHandler.Get)
		inspectionGroup.PATCH("/:inspectionId", r.params.InspectionHandler.Update)
		inspectionGroup.DELETE("/:inspectionId", r.params.InspectionHandler.Delete)
		inspectionGroup.POST("/:inspectionId/confirm", r.params.InspectionHandler.Confirm)
		inspectionGroup.POST("/:inspectionId/assign-agent", r.params.InspectionHandler.AssignAgent)
	}

	// Deal ledger routes
	dealGroup := e.Group("/deals", authed)
	{
		dealGroup.POST("", r.params.DealHandler.Initiate)
		dealGroup.GET("", r.params.DealHandler.List)
		dealGroup.GET("/:dealId", r.params.DealHandler.Get)
		dealGroup.POST("/:dealId/status", r.params.DealHandler.UpdateStatus)
		dealGroup.POST("/:dealId/mark-paid", r.params.DealHandler.MarkPaid)
	}

	// Review routes
	reviewGroup := e.Group("/reviews", authed)
	{
		reviewGroup.POST("", r.params.ReviewHandler.Create)
		reviewGroup.GET("", r.params.ReviewHandler.List)
		reviewGroup.GET("/:reviewId", r.params.ReviewHandler.Get)
		reviewGroup.PATCH("/:reviewId", r.params.ReviewHandler.Update)
		reviewGroup.DELETE("/:reviewId", r.params.ReviewHandler.Delete)
		reviewGroup.POST("/:reviewId/flag", r.params.ReviewHandler.Flag)
	}

	// Messaging routes
	messageGroup := e.Group("/messages", authed)
	{
		messageGroup.POST("", r.params.MessageHandler.Send)
		messageGroup.GET("", r.params.MessageHandler.List)
		messageGroup.GET("/:messageId", r.params.MessageHandler.Get)
		messageGroup.POST("/:messageId/mark-read", r.params.MessageHandler.MarkRead)
	}

	// Notification feed routes
	notificationGroup := e.Group("/notifications", authed)
	{
		notificationGroup.GET("", r.params.NotificationHandler.List)
		notificationGroup.POST("/:notificationId/mark-read", r.params.NotificationHandler.MarkRead)
	}

	// Bookmark routes
	savedGroup := e.Group("/saved-properties", authed)
	{
		savedGroup.POST("", r.params.SavedPropertyHandler.Save)
		savedGroup.GET("", r.params.SavedPropertyHandler.List)
		savedGroup.DELETE("/:savedId", r.params.SavedPropertyHandler.Unsave)
	}
}
