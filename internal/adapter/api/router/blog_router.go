package router

import (
	"github.com/labstack/echo/v4"

	"phonedeck/internal/adapter/api/handler"
	"phonedeck/internal/adapter/api/middleware"
)

func SetupBlogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	blogHandler := handler.GetBlogHandler()

	// Public routes
	e.GET("/v1/blogs", blogHandler.ListBlogs)
	e.GET("/v1/blogs/:id", blogHandler.GetBlog)

	// Admin routes
	admin := e.Group("/v1/admin/blogs")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", blogHandler.CreateBlog)
	admin.PUT("/:id", blogHandler.UpdateBlog)
	admin.DELETE("/:id", blogHandler.DeleteBlog)
}
