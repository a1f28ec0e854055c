package router

import (
	"github.com/labstack/echo/v4"

	"phonedeck/internal/adapter/api/handler"
	"phonedeck/internal/adapter/api/middleware"
	"phonedeck/internal/infrastructure/ratelimit"
)

func SetupWishlistRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	wishlistHandler := handler.GetWishlistHandler()

	wishlistGroup := e.Group("/v1/wishlist")
	wishlistGroup.Use(authMiddleware.Authenticate)

	wishlistGroup.GET("", wishlistHandler.GetUserWishlist)

	// Mutations share the toggle budget so a client flipping the heart icon
	// in a loop gets throttled, not the whole account
	toggle := middleware.RateLimit(limiter, "wishlist_toggle")
	wishlistGroup.POST("/:phoneId", wishlistHandler.AddToWishlist, toggle)
	wishlistGroup.DELETE("/item/:id", wishlistHandler.RemoveWishlistItem, toggle)
	wishlistGroup.DELETE("/:phoneId", wishlistHandler.RemoveFromWishlist, toggle)
}
