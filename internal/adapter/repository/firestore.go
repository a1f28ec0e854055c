package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	phonesCollection   = "phones"
	wishlistCollection = "wishlists"
	adminsCollection   = "admins"
	blogsCollection    = "blogs"
	compareCollection  = "compare_lists"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
