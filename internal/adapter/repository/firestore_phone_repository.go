package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"phonedeck/internal/domain/entity"
	"phonedeck/internal/domain/repository"
	"phonedeck/pkg/errors"
)

type firestorePhoneRepository struct {
	client *firestore.Client
}

func NewFirestorePhoneRepository(client *firestore.Client) repository.PhoneRepository {
	return &firestorePhoneRepository{
		client: client,
	}
}

func (r *firestorePhoneRepository) Create(ctx context.Context, phone *entity.Phone) error {
	if phone.ID == "" {
		doc := r.client.Collection(phonesCollection).NewDoc()
		phone.ID = doc.ID
	}

	now := time.Now()
	if phone.CreatedAt.IsZero() {
		phone.CreatedAt = now
	}
	phone.UpdatedAt = now

	if phone.Reviews == nil {
		phone.Reviews = []entity.Review{}
	}
	if phone.Stores == nil {
		phone.Stores = []entity.StoreOffer{}
	}

	_, err := r.client.Collection(phonesCollection).Doc(phone.ID).Set(ctx, phone)
	if err != nil {
		return errors.Internal("Failed to create phone", err)
	}

	return nil
}

func (r *firestorePhoneRepository) GetByID(ctx context.Context, id string) (*entity.Phone, error) {
	doc, err := r.client.Collection(phonesCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Phone", err)
		}
		return nil, errors.Internal("Failed to get phone", err)
	}

	var phone entity.Phone
	if err := doc.DataTo(&phone); err != nil {
		return nil, errors.Internal("Failed to parse phone data", err)
	}

	return &phone, nil
}

func (r *firestorePhoneRepository) List(ctx context.Context, filter map[string]interface{}, sort string) ([]*entity.Phone, error) {
	query := r.client.Collection(phonesCollection).Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	if sort != "" {
		parts := strings.Split(sort, "_")
		field := parts[0]
		order := firestore.Asc
		if len(parts) > 1 && parts[1] == "desc" {
			order = firestore.Desc
		}
		query = query.OrderBy(field, order)
	} else {
		query = query.OrderBy("createdAt", firestore.Desc)
	}

	iter := query.Documents(ctx)
	var phones []*entity.Phone

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate phones", err)
		}
		var phone entity.Phone
		if err := doc.DataTo(&phone); err != nil {
			return nil, errors.Internal("Failed to parse phone data", err)
		}
		phones = append(phones, &phone)
	}

	return phones, nil
}

func (r *firestorePhoneRepository) Update(ctx context.Context, phone *entity.Phone) error {
	phone.UpdatedAt = time.Now()

	_, err := r.client.Collection(phonesCollection).Doc(phone.ID).Set(ctx, phone)
	if err != nil {
		return errors.Internal("Failed to update phone", err)
	}

	return nil
}

func (r *firestorePhoneRepository) Delete(ctx context.Context, id string) error {
	doc := r.client.Collection(phonesCollection).Doc(id)

	if _, err := doc.Get(ctx); err != nil {
		if isNotFound(err) {
			return errors.NotFound("Phone", err)
		}
		return errors.Internal("Failed to get phone", err)
	}

	// Unconditional delete: wishlist entries referencing this phone stay
	// behind as dangling references and are flagged unavailable on read.
	if _, err := doc.Delete(ctx); err != nil {
		return errors.Internal("Failed to delete phone", err)
	}

	return nil
}

func (r *firestorePhoneRepository) AppendReview(ctx context.Context, phoneID string, review entity.Review) (*entity.Phone, error) {
	docRef := r.client.Collection(phonesCollection).Doc(phoneID)

	var updated entity.Phone
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var phone entity.Phone
		if err := doc.DataTo(&phone); err != nil {
			return err
		}

		phone.Reviews = append(phone.Reviews, review)
		phone.Rating = entity.MeanRating(phone.Reviews)
		phone.ReviewCount = len(phone.Reviews)
		phone.UpdatedAt = time.Now()

		updated = phone
		return tx.Set(docRef, &phone)
	})
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Phone", err)
		}
		return nil, errors.Internal("Failed to append review", err)
	}

	return &updated, nil
}
