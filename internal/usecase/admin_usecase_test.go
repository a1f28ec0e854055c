package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonedeck/pkg/errors"
)

func TestAddAdminRejectsDuplicateEmail(t *testing.T) {
	uc := NewAdminUseCase(newFakeAdminRepo(), "boss@phonedeck.dev")
	ctx := context.Background()

	admin, err := uc.AddAdmin(ctx, "editor@phonedeck.dev")
	require.NoError(t, err)
	assert.Equal(t, "editor@phonedeck.dev", admin.Email)
	assert.NotEmpty(t, admin.ID)

	_, err = uc.AddAdmin(ctx, "editor@phonedeck.dev")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))

	// emails are normalized before the uniqueness check
	_, err = uc.AddAdmin(ctx, "  Editor@PhoneDeck.dev ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))

	admins, err := uc.ListAdmins(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}

func TestIsAdmin(t *testing.T) {
	uc := NewAdminUseCase(newFakeAdminRepo(), "boss@phonedeck.dev")
	ctx := context.Background()

	_, err := uc.AddAdmin(ctx, "editor@phonedeck.dev")
	require.NoError(t, err)

	cases := []struct {
		email string
		want  bool
	}{
		{"boss@phonedeck.dev", true},
		{"Boss@PhoneDeck.dev", true},
		{"editor@phonedeck.dev", true},
		{"EDITOR@phonedeck.dev", true},
		{"visitor@phonedeck.dev", false},
		{"", false},
	}
	for _, tc := range cases {
		got, err := uc.IsAdmin(ctx, tc.email)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "email %q", tc.email)
	}
}

func TestIsAdminWithoutSuperAdmin(t *testing.T) {
	uc := NewAdminUseCase(newFakeAdminRepo(), "")

	ok, err := uc.IsAdmin(context.Background(), "anyone@phonedeck.dev")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemoveAdmin(t *testing.T) {
	uc := NewAdminUseCase(newFakeAdminRepo(), "boss@phonedeck.dev")
	ctx := context.Background()

	admin, err := uc.AddAdmin(ctx, "editor@phonedeck.dev")
	require.NoError(t, err)

	require.NoError(t, uc.RemoveAdmin(ctx, admin.ID))

	ok, err := uc.IsAdmin(ctx, "editor@phonedeck.dev")
	require.NoError(t, err)
	assert.False(t, ok)

	err = uc.RemoveAdmin(ctx, admin.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
