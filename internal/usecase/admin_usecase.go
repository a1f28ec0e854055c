package usecase

import (
	"context"
	"strings"

	"phonedeck/internal/domain/entity"
	"phonedeck/internal/domain/repository"
	"phonedeck/pkg/errors"
)

type AdminUseCase struct {
	adminRepo       repository.AdminRepository
	superAdminEmail string
}

func NewAdminUseCase(adminRepo repository.AdminRepository, superAdminEmail string) *AdminUseCase {
	return &AdminUseCase{
		adminRepo:       adminRepo,
		superAdminEmail: strings.ToLower(superAdminEmail),
	}
}

func (uc *AdminUseCase) ListAdmins(ctx context.Context) ([]*entity.Admin, error) {
	admins, err := uc.adminRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if admins == nil {
		admins = []*entity.Admin{}
	}
	return admins, nil
}

func (uc *AdminUseCase) AddAdmin(ctx context.Context, email string) (*entity.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := uc.adminRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("Email already exists")
	}

	admin := &entity.Admin{Email: email}
	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

func (uc *AdminUseCase) RemoveAdmin(ctx context.Context, id string) error {
	return uc.adminRepo.Delete(ctx, id)
}

// IsAdmin resolves the role server-side: the configured super-admin email or
// any allow-list entry counts as an administrator.
func (uc *AdminUseCase) IsAdmin(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false, nil
	}

	if uc.superAdminEmail != "" && email == uc.superAdminEmail {
		return true, nil
	}

	_, err := uc.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
