package repository

import (
	"context"

	"phonedeck/internal/domain/entity"
)

type CompareRepository interface {
	// Get returns the user's compare list, empty when none exists yet.
	Get(ctx context.Context, userID string) (*entity.CompareList, error)

	// AddPhone adds the phone to the user's list. Re-adding a selected
	// phone is a no-op; a full list rejects a new phone and is left
	// unchanged.
	AddPhone(ctx context.Context, userID, phoneID string) (*entity.CompareList, error)

	RemovePhone(ctx context.Context, userID, phoneID string) (*entity.CompareList, error)
	Clear(ctx context.Context, userID string) error
}
