package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"phonedeck/internal/domain/entity"
	"phonedeck/internal/domain/repository"
	"phonedeck/pkg/errors"
)

type firestoreCompareRepository struct {
	client *firestore.Client
}

func NewFirestoreCompareRepository(client *firestore.Client) repository.CompareRepository {
	return &firestoreCompareRepository{client: client}
}

func (r *firestoreCompareRepository) Get(ctx context.Context, userID string) (*entity.CompareList, error) {
	doc, err := r.client.Collection(compareCollection).Doc(userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return &entity.CompareList{UserID: userID, PhoneIDs: []string{}}, nil
		}
		return nil, errors.Internal("Failed to get compare list", err)
	}

	var list entity.CompareList
	if err := doc.DataTo(&list); err != nil {
		return nil, errors.Internal("Failed to parse compare list", err)
	}

	return &list, nil
}

func (r *firestoreCompareRepository) AddPhone(ctx context.Context, userID, phoneID string) (*entity.CompareList, error) {
	docRef := r.client.Collection(compareCollection).Doc(userID)

	var result entity.CompareList
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		list := entity.CompareList{UserID: userID, PhoneIDs: []string{}}

		doc, err := tx.Get(docRef)
		if err != nil && !isNotFound(err) {
			return err
		}
		if err == nil {
			if err := doc.DataTo(&list); err != nil {
				return err
			}
		}

		before := len(list.PhoneIDs)
		if err := list.Add(phoneID); err != nil {
			return errors.BadRequest("Compare list is full, remove a phone first (max 3)", err)
		}
		if len(list.PhoneIDs) == before {
			// Re-adding a selected phone is a no-op.
			result = list
			return nil
		}

		list.UpdatedAt = time.Now()
		result = list
		return tx.Set(docRef, &list)
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		return nil, errors.Internal("Failed to update compare list", err)
	}

	return &result, nil
}

func (r *firestoreCompareRepository) RemovePhone(ctx context.Context, userID, phoneID string) (*entity.CompareList, error) {
	docRef := r.client.Collection(compareCollection).Doc(userID)

	var result entity.CompareList
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if isNotFound(err) {
				return errors.NotFound("Compare list", err)
			}
			return err
		}

		var list entity.CompareList
		if err := doc.DataTo(&list); err != nil {
			return err
		}

		list.Remove(phoneID)
		list.UpdatedAt = time.Now()
		result = list
		return tx.Set(docRef, &list)
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		return nil, errors.Internal("Failed to update compare list", err)
	}

	return &result, nil
}

func (r *firestoreCompareRepository) Clear(ctx context.Context, userID string) error {
	_, err := r.client.Collection(compareCollection).Doc(userID).Delete(ctx)
	if err != nil && !isNotFound(err) {
		return errors.Internal("Failed to clear compare list", err)
	}
	return nil
}
