package router

import (
	"github.com/labstack/echo/v4"

	"phonedeck/internal/adapter/api/handler"
	"phonedeck/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()
	uploadHandler := handler.GetUploadHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	// Delegated-admin allow-list management
	admin.GET("/admins", adminHandler.ListAdmins)
	admin.POST("/admins", adminHandler.AddAdmin)
	admin.DELETE("/admins/:id", adminHandler.RemoveAdmin)

	// Cover image uploads
	admin.POST("/uploads", uploadHandler.UploadImage)
}
