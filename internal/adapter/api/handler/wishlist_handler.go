package handler

import (
	"github.com/labstack/echo/v4"

	"phonedeck/internal/usecase"
	"phonedeck/pkg/errors"
	"phonedeck/pkg/response"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	userID := c.Get("uid").(string)
	phoneID := c.Param("phoneId")

	if phoneID == "" {
		return response.Error(c, errors.BadRequest("Phone ID is required", nil))
	}

	result, err := h.wishlistUseCase.AddToWishlist(c.Request().Context(), userID, phoneID)
	if err != nil {
		return response.Error(c, err)
	}

	if result.AlreadyExists {
		return response.Success(c, result)
	}
	return response.Created(c, result)
}

func (h *WishlistHandler) GetUserWishlist(c echo.Context) error {
	userID := c.Get("uid").(string)

	items, err := h.wishlistUseCase.GetUserWishlist(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	userID := c.Get("uid").(string)
	phoneID := c.Param("phoneId")

	if phoneID == "" {
		return response.Error(c, errors.BadRequest("Phone ID is required", nil))
	}

	if err := h.wishlistUseCase.RemoveByPair(c.Request().Context(), userID, phoneID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Phone removed from wishlist successfully",
	})
}

// RemoveWishlistItem deletes by the entry's own ID; a second UI surface
// addresses entries this way instead of by (user, phone). The entry must
// belong to the authenticated caller.
func (h *WishlistHandler) RemoveWishlistItem(c echo.Context) error {
	userID := c.Get("uid").(string)
	id := c.Param("id")

	if id == "" {
		return response.Error(c, errors.BadRequest("Wishlist item ID is required", nil))
	}

	if err := h.wishlistUseCase.RemoveByID(c.Request().Context(), userID, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Phone removed from wishlist successfully",
	})
}
