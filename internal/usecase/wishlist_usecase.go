package usecase

import (
	"context"

	"phonedeck/internal/domain/entity"
	"phonedeck/internal/domain/repository"
	"phonedeck/pkg/logger"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	phoneRepo    repository.PhoneRepository
}

func NewWishlistUseCase(
	wishlistRepo repository.WishlistRepository,
	phoneRepo repository.PhoneRepository,
) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		phoneRepo:    phoneRepo,
	}
}

type WishlistAddResult struct {
	Item          *entity.WishlistItem `json:"item"`
	AlreadyExists bool                 `json:"already_exists"`
}

// AddToWishlist is idempotent: re-adding a phone returns the existing entry
// flagged already_exists instead of an error, so clients can toggle freely.
func (uc *WishlistUseCase) AddToWishlist(ctx context.Context, userID, phoneID string) (*WishlistAddResult, error) {
	if _, err := uc.phoneRepo.GetByID(ctx, phoneID); err != nil {
		return nil, err
	}

	item, existed, err := uc.wishlistRepo.Add(ctx, userID, phoneID)
	if err != nil {
		return nil, err
	}

	if existed {
		logger.Debug("Wishlist add for user %s was a no-op, phone %s already present", userID, phoneID)
	}

	return &WishlistAddResult{Item: item, AlreadyExists: existed}, nil
}

func (uc *WishlistUseCase) GetUserWishlist(ctx context.Context, userID string) ([]entity.WishlistItemWithPhone, error) {
	return uc.wishlistRepo.GetUserWishlist(ctx, userID)
}

func (uc *WishlistUseCase) RemoveByPair(ctx context.Context, userID, phoneID string) error {
	return uc.wishlistRepo.RemoveByPair(ctx, userID, phoneID)
}

// RemoveByID deletes one of the caller's own entries by its surrogate key.
func (uc *WishlistUseCase) RemoveByID(ctx context.Context, userID, id string) error {
	return uc.wishlistRepo.RemoveByID(ctx, userID, id)
}
