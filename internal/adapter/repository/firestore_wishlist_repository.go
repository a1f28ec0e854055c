package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"phonedeck/internal/domain/entity"
	"phonedeck/internal/domain/repository"
	"phonedeck/pkg/errors"
	"phonedeck/pkg/logger"
)

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{client: client}
}

// wishlistID is the composite document ID that enforces the one-entry-per-
// (user, phone) invariant at the store level.
func wishlistID(userID, phoneID string) string {
	return fmt.Sprintf("%s_%s", userID, phoneID)
}

func (r *firestoreWishlistRepository) Add(ctx context.Context, userID, phoneID string) (*entity.WishlistItem, bool, error) {
	id := wishlistID(userID, phoneID)
	docRef := r.client.Collection(wishlistCollection).Doc(id)

	doc, err := docRef.Get(ctx)
	if err == nil && doc.Exists() {
		var existing entity.WishlistItem
		if err := doc.DataTo(&existing); err != nil {
			return nil, false, errors.Internal("Failed to parse wishlist item", err)
		}
		return &existing, true, nil
	}
	if err != nil && !isNotFound(err) {
		return nil, false, errors.Internal("Failed to check wishlist", err)
	}

	item := entity.WishlistItem{
		ID:        id,
		UserID:    userID,
		PhoneID:   phoneID,
		CreatedAt: time.Now(),
	}

	if _, err := docRef.Set(ctx, item); err != nil {
		return nil, false, errors.Internal("Failed to add to wishlist", err)
	}

	logger.Debug("Added phone %s to wishlist for user %s", phoneID, userID)
	return &item, false, nil
}

func (r *firestoreWishlistRepository) GetUserWishlist(ctx context.Context, userID string) ([]entity.WishlistItemWithPhone, error) {
	query := r.client.Collection(wishlistCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to get wishlist", err)
	}

	items := make([]entity.WishlistItem, 0, len(docs))
	phoneIDs := make([]string, 0, len(docs))
	for _, doc := range docs {
		var item entity.WishlistItem
		if err := doc.DataTo(&item); err != nil {
			logger.Warn("Skipping unparseable wishlist item %s: %v", doc.Ref.ID, err)
			continue
		}
		items = append(items, item)
		phoneIDs = append(phoneIDs, item.PhoneID)
	}

	if len(items) == 0 {
		return []entity.WishlistItemWithPhone{}, nil
	}

	// Batch fetch the referenced phones, 30 refs per GetAll call.
	phoneMap := make(map[string]*entity.Phone)
	for i := 0; i < len(phoneIDs); i += 30 {
		end := i + 30
		if end > len(phoneIDs) {
			end = len(phoneIDs)
		}

		batchIDs := phoneIDs[i:end]
		docRefs := make([]*firestore.DocumentRef, len(batchIDs))
		for j, id := range batchIDs {
			docRefs[j] = r.client.Collection(phonesCollection).Doc(id)
		}

		phoneDocs, err := r.client.GetAll(ctx, docRefs)
		if err != nil {
			return nil, errors.Internal("Failed to fetch wishlist phones", err)
		}

		for _, doc := range phoneDocs {
			if doc == nil || !doc.Exists() {
				continue
			}
			var phone entity.Phone
			if err := doc.DataTo(&phone); err != nil {
				continue
			}
			phoneMap[doc.Ref.ID] = &phone
		}
	}

	// Dangling references are kept and flagged unavailable rather than
	// dropped, so the client can show the entry as gone.
	result := make([]entity.WishlistItemWithPhone, 0, len(items))
	for _, item := range items {
		phone, available := phoneMap[item.PhoneID]
		result = append(result, entity.WishlistItemWithPhone{
			ID:        item.ID,
			UserID:    item.UserID,
			PhoneID:   item.PhoneID,
			Phone:     phone,
			Available: available,
			CreatedAt: item.CreatedAt,
		})
	}

	return result, nil
}

func (r *firestoreWishlistRepository) RemoveByPair(ctx context.Context, userID, phoneID string) error {
	return r.remove(ctx, wishlistID(userID, phoneID))
}

func (r *firestoreWishlistRepository) RemoveByID(ctx context.Context, userID, id string) error {
	docRef := r.client.Collection(wishlistCollection).Doc(id)

	doc, err := docRef.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Wishlist item", err)
		}
		return errors.Internal("Failed to check wishlist item", err)
	}

	var item entity.WishlistItem
	if err := doc.DataTo(&item); err != nil {
		return errors.Internal("Failed to parse wishlist item", err)
	}

	// Surrogate IDs are guessable composites, so another user's entry is
	// indistinguishable from a missing one.
	if item.UserID != userID {
		return errors.NotFound("Wishlist item", nil)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return errors.Internal("Failed to remove from wishlist", err)
	}

	return nil
}

func (r *firestoreWishlistRepository) remove(ctx context.Context, id string) error {
	docRef := r.client.Collection(wishlistCollection).Doc(id)

	doc, err := docRef.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Wishlist item", err)
		}
		return errors.Internal("Failed to check wishlist item", err)
	}
	if !doc.Exists() {
		return errors.NotFound("Wishlist item", nil)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return errors.Internal("Failed to remove from wishlist", err)
	}

	return nil
}
