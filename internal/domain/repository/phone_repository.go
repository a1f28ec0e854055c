package repository

import (
	"context"

	"phonedeck/internal/domain/entity"
)

type PhoneRepository interface {
	Create(ctx context.Context, phone *entity.Phone) error
	GetByID(ctx context.Context, id string) (*entity.Phone, error)
	List(ctx context.Context, filter map[string]interface{}, sort string) ([]*entity.Phone, error)
	Update(ctx context.Context, phone *entity.Phone) error
	Delete(ctx context.Context, id string) error

	// AppendReview appends the review and recomputes the derived rating and
	// review count inside a single atomic document update.
	AppendReview(ctx context.Context, phoneID string, review entity.Review) (*entity.Phone, error)
}
