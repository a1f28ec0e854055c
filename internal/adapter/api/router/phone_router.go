package router

import (
	"github.com/labstack/echo/v4"

	"phonedeck/internal/adapter/api/handler"
	"phonedeck/internal/adapter/api/middleware"
	"phonedeck/internal/infrastructure/ratelimit"
)

func SetupPhoneRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, limiter *ratelimit.RateLimiter) {
	phoneHandler := handler.GetPhoneHandler()

	// Public catalog
	e.GET("/v1/phones", phoneHandler.ListPhones)
	e.GET("/v1/phones/:id", phoneHandler.GetPhone)

	// Review submission requires a signed-in user and is rate limited
	reviews := e.Group("/v1/phones/:id/reviews")
	reviews.Use(authMiddleware.Authenticate)
	reviews.Use(middleware.RateLimit(limiter, "submit_review"))
	reviews.POST("", phoneHandler.AddReview)

	// Catalog management
	admin := e.Group("/v1/admin/phones")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", phoneHandler.CreatePhone)
	admin.PUT("/:id", phoneHandler.UpdatePhone)
	admin.DELETE("/:id", phoneHandler.DeletePhone)
}
