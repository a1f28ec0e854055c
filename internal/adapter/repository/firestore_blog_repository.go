package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"

	"phonedeck/internal/domain/entity"
	"phonedeck/internal/domain/repository"
	"phonedeck/pkg/errors"
)

type firestoreBlogRepository struct {
	client *firestore.Client
}

func NewFirestoreBlogRepository(client *firestore.Client) repository.BlogRepository {
	return &firestoreBlogRepository{client: client}
}

func (r *firestoreBlogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	if blog.ID == "" {
		doc := r.client.Collection(blogsCollection).NewDoc()
		blog.ID = doc.ID
	}

	now := time.Now()
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = now
	}
	blog.UpdatedAt = now

	_, err := r.client.Collection(blogsCollection).Doc(blog.ID).Set(ctx, blog)
	if err != nil {
		return errors.Internal("Failed to create blog post", err)
	}

	return nil
}

func (r *firestoreBlogRepository) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	doc, err := r.client.Collection(blogsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Blog post", err)
		}
		return nil, errors.Internal("Failed to get blog post", err)
	}

	var blog entity.Blog
	if err := doc.DataTo(&blog); err != nil {
		return nil, errors.Internal("Failed to parse blog data", err)
	}

	return &blog, nil
}

func (r *firestoreBlogRepository) List(ctx context.Context, category string, limit, offset int) ([]*entity.Blog, int64, error) {
	base := r.client.Collection(blogsCollection).Query
	if category != "" {
		base = base.Where("category", "==", category)
	}

	// Server-side count aggregation; documents never leave the store for
	// the total.
	aggResult, err := base.NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count blog posts", err)
	}
	var total int64
	if value, ok := aggResult["total"].(*firestorepb.Value); ok {
		total = value.GetIntegerValue()
	}

	query := base.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var blogs []*entity.Blog

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate blog posts", err)
		}
		var blog entity.Blog
		if err := doc.DataTo(&blog); err != nil {
			return nil, 0, errors.Internal("Failed to parse blog data", err)
		}
		blogs = append(blogs, &blog)
	}

	return blogs, total, nil
}

func (r *firestoreBlogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	blog.UpdatedAt = time.Now()

	_, err := r.client.Collection(blogsCollection).Doc(blog.ID).Set(ctx, blog)
	if err != nil {
		return errors.Internal("Failed to update blog post", err)
	}

	return nil
}

func (r *firestoreBlogRepository) Delete(ctx context.Context, id string) error {
	docRef := r.client.Collection(blogsCollection).Doc(id)

	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return errors.NotFound("Blog post", err)
		}
		return errors.Internal("Failed to get blog post", err)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return errors.Internal("Failed to delete blog post", err)
	}

	return nil
}
