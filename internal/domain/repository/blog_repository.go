package repository

import (
	"context"

	"phonedeck/internal/domain/entity"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *entity.Blog) error
	GetByID(ctx context.Context, id string) (*entity.Blog, error)
	List(ctx context.Context, category string, limit, offset int) ([]*entity.Blog, int64, error)
	Update(ctx context.Context, blog *entity.Blog) error
	Delete(ctx context.Context, id string) error
}
