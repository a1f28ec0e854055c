package router

import (
	"github.com/labstack/echo/v4"

	"phonedeck/internal/adapter/api/middleware"
	"phonedeck/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, limiter *ratelimit.RateLimiter) {
	SetupPhoneRouter(e, authMiddleware, adminMiddleware, limiter)
	SetupWishlistRouter(e, authMiddleware, limiter)
	SetupCompareRouter(e, authMiddleware)
	SetupBlogRouter(e, authMiddleware, adminMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
