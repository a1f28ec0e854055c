package handler

import (
	"github.com/labstack/echo/v4"

	"phonedeck/internal/usecase"
	"phonedeck/pkg/response"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

type addAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *AdminHandler) ListAdmins(c echo.Context) error {
	admins, err := h.adminUseCase.ListAdmins(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, admins)
}

func (h *AdminHandler) AddAdmin(c echo.Context) error {
	var req addAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	admin, err := h.adminUseCase.AddAdmin(c.Request().Context(), req.Email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, admin)
}

func (h *AdminHandler) RemoveAdmin(c echo.Context) error {
	if err := h.adminUseCase.RemoveAdmin(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Admin removed successfully",
	})
}
