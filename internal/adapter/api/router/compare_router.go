package router

import (
	"github.com/labstack/echo/v4"

	"phonedeck/internal/adapter/api/handler"
	"phonedeck/internal/adapter/api/middleware"
)

func SetupCompareRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	compareHandler := handler.GetCompareHandler()

	compareGroup := e.Group("/v1/compare")
	compareGroup.Use(authMiddleware.Authenticate)

	compareGroup.GET("", compareHandler.GetCompareList)
	compareGroup.POST("/:phoneId", compareHandler.AddToCompare)
	compareGroup.DELETE("/:phoneId", compareHandler.RemoveFromCompare)
	compareGroup.DELETE("", compareHandler.ClearCompare)
}
