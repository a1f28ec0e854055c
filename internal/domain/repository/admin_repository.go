package repository

import (
	"context"

	"phonedeck/internal/domain/entity"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
	List(ctx context.Context) ([]*entity.Admin, error)
	Delete(ctx context.Context, id string) error
}
