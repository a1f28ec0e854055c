package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonedeck/internal/domain/entity"
	"phonedeck/internal/usecase"
	"phonedeck/pkg/errors"
)

type stubWishlistRepo struct {
	items map[string]entity.WishlistItem
}

func newStubWishlistRepo() *stubWishlistRepo {
	return &stubWishlistRepo{items: make(map[string]entity.WishlistItem)}
}

func (r *stubWishlistRepo) Add(ctx context.Context, userID, phoneID string) (*entity.WishlistItem, bool, error) {
	id := userID + "_" + phoneID
	if existing, ok := r.items[id]; ok {
		return &existing, true, nil
	}
	item := entity.WishlistItem{ID: id, UserID: userID, PhoneID: phoneID}
	r.items[id] = item
	return &item, false, nil
}

func (r *stubWishlistRepo) GetUserWishlist(ctx context.Context, userID string) ([]entity.WishlistItemWithPhone, error) {
	result := []entity.WishlistItemWithPhone{}
	for _, item := range r.items {
		if item.UserID == userID {
			result = append(result, entity.WishlistItemWithPhone{
				ID: item.ID, UserID: item.UserID, PhoneID: item.PhoneID, Available: true,
			})
		}
	}
	return result, nil
}

func (r *stubWishlistRepo) RemoveByPair(ctx context.Context, userID, phoneID string) error {
	id := userID + "_" + phoneID
	if _, ok := r.items[id]; !ok {
		return errors.NotFound("Wishlist item", nil)
	}
	delete(r.items, id)
	return nil
}

func (r *stubWishlistRepo) RemoveByID(ctx context.Context, userID, id string) error {
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return errors.NotFound("Wishlist item", nil)
	}
	delete(r.items, id)
	return nil
}

func TestRemoveWishlistItemScopedToCaller(t *testing.T) {
	e := echo.New()
	phoneRepo := newStubPhoneRepo()
	phone := &entity.Phone{Name: "Galaxy S23", Category: "samsung", Price: 899}
	require.NoError(t, phoneRepo.Create(context.Background(), phone))

	wishlistRepo := newStubWishlistRepo()
	h := NewWishlistHandler(usecase.NewWishlistUseCase(wishlistRepo, phoneRepo))

	item, _, err := wishlistRepo.Add(context.Background(), "user-1", phone.ID)
	require.NoError(t, err)

	remove := func(uid, id string) (*httptest.ResponseRecorder, envelope) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/wishlist/item/"+id, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("uid", uid)
		c.SetParamNames("id")
		c.SetParamValues(id)
		_ = h.RemoveWishlistItem(c)

		var env envelope
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
		return rec, env
	}

	// another signed-in user guessing the composite id gets a 404 and the
	// entry stays put
	rec, env := remove("user-2", item.ID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Len(t, wishlistRepo.items, 1)

	// the owner's delete goes through
	rec, _ = remove("user-1", item.ID)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, wishlistRepo.items)
}
