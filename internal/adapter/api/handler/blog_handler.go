package handler

import (
	"github.com/labstack/echo/v4"

	"phonedeck/internal/usecase"
	"phonedeck/pkg/response"
	"phonedeck/pkg/utils"
)

type BlogHandler struct {
	blogUseCase *usecase.BlogUseCase
}

func NewBlogHandler(blogUseCase *usecase.BlogUseCase) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
	}
}

type blogRequest struct {
	Title    string `json:"title" validate:"required"`
	Excerpt  string `json:"excerpt" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Author   string `json:"author"`
}

func (h *BlogHandler) ListBlogs(c echo.Context) error {
	category := c.QueryParam("category")
	pagination := utils.GetPaginationParams(c)

	blogs, total, err := h.blogUseCase.ListBlogs(
		c.Request().Context(),
		category,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, blogs, total, pagination.Page, pagination.PageSize)
}

func (h *BlogHandler) GetBlog(c echo.Context) error {
	blog, err := h.blogUseCase.GetBlog(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, blog)
}

func (h *BlogHandler) CreateBlog(c echo.Context) error {
	var req blogRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	blog, err := h.blogUseCase.CreateBlog(c.Request().Context(), usecase.BlogInput{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Image:    req.Image,
		Author:   req.Author,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, blog)
}

func (h *BlogHandler) UpdateBlog(c echo.Context) error {
	var req blogRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	blog, err := h.blogUseCase.UpdateBlog(c.Request().Context(), c.Param("id"), usecase.BlogInput{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Image:    req.Image,
		Author:   req.Author,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, blog)
}

func (h *BlogHandler) DeleteBlog(c echo.Context) error {
	if err := h.blogUseCase.DeleteBlog(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Blog post deleted successfully",
	})
}
