package handler

import (
	"github.com/labstack/echo/v4"

	"phonedeck/internal/usecase"
	"phonedeck/pkg/errors"
	"phonedeck/pkg/response"
)

type CompareHandler struct {
	compareUseCase *usecase.CompareUseCase
}

func NewCompareHandler(compareUseCase *usecase.CompareUseCase) *CompareHandler {
	return &CompareHandler{
		compareUseCase: compareUseCase,
	}
}

func (h *CompareHandler) GetCompareList(c echo.Context) error {
	userID := c.Get("uid").(string)

	view, err := h.compareUseCase.GetCompareList(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, view)
}

func (h *CompareHandler) AddToCompare(c echo.Context) error {
	userID := c.Get("uid").(string)
	phoneID := c.Param("phoneId")

	if phoneID == "" {
		return response.Error(c, errors.BadRequest("Phone ID is required", nil))
	}

	list, err := h.compareUseCase.AddToCompare(c.Request().Context(), userID, phoneID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, list)
}

func (h *CompareHandler) RemoveFromCompare(c echo.Context) error {
	userID := c.Get("uid").(string)
	phoneID := c.Param("phoneId")

	if phoneID == "" {
		return response.Error(c, errors.BadRequest("Phone ID is required", nil))
	}

	list, err := h.compareUseCase.RemoveFromCompare(c.Request().Context(), userID, phoneID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, list)
}

func (h *CompareHandler) ClearCompare(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.compareUseCase.ClearCompare(c.Request().Context(), userID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Compare list cleared",
	})
}
