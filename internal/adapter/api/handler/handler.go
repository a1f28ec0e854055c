package handler

import (
	"phonedeck/internal/usecase"
)

var (
	phoneHandler    *PhoneHandler
	wishlistHandler *WishlistHandler
	compareHandler  *CompareHandler
	adminHandler    *AdminHandler
	blogHandler     *BlogHandler
)

func Setup(
	phoneUseCase *usecase.PhoneUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	compareUseCase *usecase.CompareUseCase,
	adminUseCase *usecase.AdminUseCase,
	blogUseCase *usecase.BlogUseCase,
) {
	phoneHandler = NewPhoneHandler(phoneUseCase)
	wishlistHandler = NewWishlistHandler(wishlistUseCase)
	compareHandler = NewCompareHandler(compareUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
	blogHandler = NewBlogHandler(blogUseCase)
}

func GetPhoneHandler() *PhoneHandler {
	return phoneHandler
}

func GetWishlistHandler() *WishlistHandler {
	return wishlistHandler
}

func GetCompareHandler() *CompareHandler {
	return compareHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetBlogHandler() *BlogHandler {
	return blogHandler
}
