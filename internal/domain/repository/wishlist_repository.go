package repository

import (
	"context"

	"phonedeck/internal/domain/entity"
)

type WishlistRepository interface {
	// Add inserts an entry for the (user, phone) pair. When the pair is
	// already present the existing entry is returned with existed=true;
	// the uniqueness constraint never surfaces as an error.
	Add(ctx context.Context, userID, phoneID string) (item *entity.WishlistItem, existed bool, err error)

	// GetUserWishlist returns the user's entries joined with their phone
	// documents, newest first. Dangling phone references are kept and
	// flagged unavailable.
	GetUserWishlist(ctx context.Context, userID string) ([]entity.WishlistItemWithPhone, error)

	// RemoveByPair deletes by the (user, phone) natural key.
	RemoveByPair(ctx context.Context, userID, phoneID string) error

	// RemoveByID deletes by the entry's surrogate key. Entries owned by a
	// different user are reported as not found.
	RemoveByID(ctx context.Context, userID, id string) error
}
