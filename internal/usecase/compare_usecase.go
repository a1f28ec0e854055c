package usecase

import (
	"context"

	"phonedeck/internal/domain/entity"
	"phonedeck/internal/domain/repository"
)

type CompareUseCase struct {
	compareRepo repository.CompareRepository
	phoneRepo   repository.PhoneRepository
}

func NewCompareUseCase(
	compareRepo repository.CompareRepository,
	phoneRepo repository.PhoneRepository,
) *CompareUseCase {
	return &CompareUseCase{
		compareRepo: compareRepo,
		phoneRepo:   phoneRepo,
	}
}

type CompareView struct {
	PhoneIDs []string        `json:"phone_ids"`
	Phones   []*entity.Phone `json:"phones"`
	Slots    int             `json:"slots"`
}

// GetCompareList returns the selection joined with phone documents. IDs of
// phones deleted since selection are dropped from the view but kept in the
// stored list until the user removes them.
func (uc *CompareUseCase) GetCompareList(ctx context.Context, userID string) (*CompareView, error) {
	list, err := uc.compareRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	phones := make([]*entity.Phone, 0, len(list.PhoneIDs))
	for _, id := range list.PhoneIDs {
		phone, err := uc.phoneRepo.GetByID(ctx, id)
		if err != nil {
			continue
		}
		phones = append(phones, phone)
	}

	return &CompareView{
		PhoneIDs: list.PhoneIDs,
		Phones:   phones,
		Slots:    entity.CompareSlots,
	}, nil
}

func (uc *CompareUseCase) AddToCompare(ctx context.Context, userID, phoneID string) (*entity.CompareList, error) {
	if _, err := uc.phoneRepo.GetByID(ctx, phoneID); err != nil {
		return nil, err
	}

	return uc.compareRepo.AddPhone(ctx, userID, phoneID)
}

func (uc *CompareUseCase) RemoveFromCompare(ctx context.Context, userID, phoneID string) (*entity.CompareList, error) {
	return uc.compareRepo.RemovePhone(ctx, userID, phoneID)
}

func (uc *CompareUseCase) ClearCompare(ctx context.Context, userID string) error {
	return uc.compareRepo.Clear(ctx, userID)
}
