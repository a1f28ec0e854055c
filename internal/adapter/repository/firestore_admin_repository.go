package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"phonedeck/internal/domain/entity"
	"phonedeck/internal/domain/repository"
	"phonedeck/pkg/errors"
)

type firestoreAdminRepository struct {
	client *firestore.Client
}

func NewFirestoreAdminRepository(client *firestore.Client) repository.AdminRepository {
	return &firestoreAdminRepository{client: client}
}

func (r *firestoreAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	if admin.ID == "" {
		doc := r.client.Collection(adminsCollection).NewDoc()
		admin.ID = doc.ID
	}
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(adminsCollection).Doc(admin.ID).Set(ctx, admin)
	if err != nil {
		return errors.Internal("Failed to create admin", err)
	}

	return nil
}

func (r *firestoreAdminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	iter := r.client.Collection(adminsCollection).Where("email", "==", email).Limit(1).Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Admin", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query admin", err)
	}

	var admin entity.Admin
	if err := doc.DataTo(&admin); err != nil {
		return nil, errors.Internal("Failed to parse admin data", err)
	}

	return &admin, nil
}

func (r *firestoreAdminRepository) List(ctx context.Context) ([]*entity.Admin, error) {
	iter := r.client.Collection(adminsCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)

	var admins []*entity.Admin
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate admins", err)
		}
		var admin entity.Admin
		if err := doc.DataTo(&admin); err != nil {
			return nil, errors.Internal("Failed to parse admin data", err)
		}
		admins = append(admins, &admin)
	}

	return admins, nil
}

func (r *firestoreAdminRepository) Delete(ctx context.Context, id string) error {
	docRef := r.client.Collection(adminsCollection).Doc(id)

	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return errors.NotFound("Admin", err)
		}
		return errors.Internal("Failed to get admin", err)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return errors.Internal("Failed to delete admin", err)
	}

	return nil
}
