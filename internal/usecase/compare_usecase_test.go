package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonedeck/internal/domain/entity"
	"phonedeck/pkg/errors"
)

func newCompareFixture(t *testing.T, phones int) (*CompareUseCase, *PhoneUseCase, []string) {
	t.Helper()
	phoneRepo := newFakePhoneRepo()
	phoneUC := NewPhoneUseCase(phoneRepo)
	compareUC := NewCompareUseCase(newFakeCompareRepo(), phoneRepo)

	ids := make([]string, 0, phones)
	for i := 0; i < phones; i++ {
		phone, err := phoneUC.CreatePhone(context.Background(), CreatePhoneInput{
			Name:     fmt.Sprintf("Phone %d", i+1),
			Category: "samsung",
			Price:    float64(500 + i*100),
		})
		require.NoError(t, err)
		ids = append(ids, phone.ID)
	}
	return compareUC, phoneUC, ids
}

func TestAddToCompareCapacity(t *testing.T) {
	uc, _, ids := newCompareFixture(t, 4)
	ctx := context.Background()

	for _, id := range ids[:3] {
		_, err := uc.AddToCompare(ctx, "user-1", id)
		require.NoError(t, err)
	}

	// 4th distinct phone is rejected, selection unchanged
	_, err := uc.AddToCompare(ctx, "user-1", ids[3])
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	view, err := uc.GetCompareList(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, ids[:3], view.PhoneIDs)
	assert.Equal(t, entity.CompareSlots, view.Slots)
}

func TestAddToCompareIsIdempotent(t *testing.T) {
	uc, _, ids := newCompareFixture(t, 3)
	ctx := context.Background()

	for _, id := range ids {
		_, err := uc.AddToCompare(ctx, "user-1", id)
		require.NoError(t, err)
	}

	// re-adding a selected phone succeeds even at capacity
	list, err := uc.AddToCompare(ctx, "user-1", ids[1])
	require.NoError(t, err)
	assert.Equal(t, ids, list.PhoneIDs)
}

func TestAddToCompareMissingPhone(t *testing.T) {
	uc, _, _ := newCompareFixture(t, 1)

	_, err := uc.AddToCompare(context.Background(), "user-1", "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestRemoveFromCompareFreesSlot(t *testing.T) {
	uc, _, ids := newCompareFixture(t, 4)
	ctx := context.Background()

	for _, id := range ids[:3] {
		_, err := uc.AddToCompare(ctx, "user-1", id)
		require.NoError(t, err)
	}

	list, err := uc.RemoveFromCompare(ctx, "user-1", ids[0])
	require.NoError(t, err)
	assert.Equal(t, ids[1:3], list.PhoneIDs)

	list, err = uc.AddToCompare(ctx, "user-1", ids[3])
	require.NoError(t, err)
	assert.Equal(t, []string{ids[1], ids[2], ids[3]}, list.PhoneIDs)
}

func TestGetCompareListDropsDeletedPhones(t *testing.T) {
	uc, phoneUC, ids := newCompareFixture(t, 2)
	ctx := context.Background()

	for _, id := range ids {
		_, err := uc.AddToCompare(ctx, "user-1", id)
		require.NoError(t, err)
	}

	require.NoError(t, phoneUC.DeletePhone(ctx, ids[0]))

	// the stored selection keeps the id, the joined view does not
	view, err := uc.GetCompareList(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, ids, view.PhoneIDs)
	require.Len(t, view.Phones, 1)
	assert.Equal(t, ids[1], view.Phones[0].ID)
}

func TestGetCompareListEmpty(t *testing.T) {
	uc, _, _ := newCompareFixture(t, 0)

	view, err := uc.GetCompareList(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, view.PhoneIDs)
	assert.Empty(t, view.Phones)
	assert.Equal(t, entity.CompareSlots, view.Slots)
}

func TestClearCompare(t *testing.T) {
	uc, _, ids := newCompareFixture(t, 2)
	ctx := context.Background()

	for _, id := range ids {
		_, err := uc.AddToCompare(ctx, "user-1", id)
		require.NoError(t, err)
	}

	require.NoError(t, uc.ClearCompare(ctx, "user-1"))

	view, err := uc.GetCompareList(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, view.PhoneIDs)
}
