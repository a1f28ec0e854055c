package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonedeck/pkg/errors"
)

func TestCreateBlogAppliesDefaults(t *testing.T) {
	uc := NewBlogUseCase(newFakeBlogRepo())
	ctx := context.Background()

	blog, err := uc.CreateBlog(ctx, BlogInput{
		Title:   "Best phones of 2026",
		Excerpt: "Our picks",
		Content: "The full rundown.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Technology", blog.Category)
	assert.Equal(t, "Admin", blog.Author)
	assert.NotEmpty(t, blog.ID)
	assert.False(t, blog.CreatedAt.IsZero())

	blog, err = uc.CreateBlog(ctx, BlogInput{
		Title:    "Camera shootout",
		Excerpt:  "Night mode compared",
		Content:  "Samples below.",
		Category: "Reviews",
		Author:   "Dina",
	})
	require.NoError(t, err)
	assert.Equal(t, "Reviews", blog.Category)
	assert.Equal(t, "Dina", blog.Author)
}

func TestListBlogsFiltersByCategory(t *testing.T) {
	uc := NewBlogUseCase(newFakeBlogRepo())
	ctx := context.Background()

	for _, input := range []BlogInput{
		{Title: "One", Excerpt: "e", Content: "c", Category: "Reviews"},
		{Title: "Two", Excerpt: "e", Content: "c", Category: "News"},
		{Title: "Three", Excerpt: "e", Content: "c", Category: "Reviews"},
	} {
		_, err := uc.CreateBlog(ctx, input)
		require.NoError(t, err)
	}

	blogs, total, err := uc.ListBlogs(ctx, "Reviews", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, blogs, 2)

	blogs, total, err = uc.ListBlogs(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, blogs, 3)

	blogs, total, err = uc.ListBlogs(ctx, "Gaming", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, blogs)
}

func TestUpdateBlogKeepsDefaultsWhenOmitted(t *testing.T) {
	uc := NewBlogUseCase(newFakeBlogRepo())
	ctx := context.Background()

	created, err := uc.CreateBlog(ctx, BlogInput{
		Title:    "Draft",
		Excerpt:  "e",
		Content:  "c",
		Category: "News",
		Author:   "Dina",
	})
	require.NoError(t, err)

	// empty category/author keep the stored values
	updated, err := uc.UpdateBlog(ctx, created.ID, BlogInput{
		Title:   "Published",
		Excerpt: "e2",
		Content: "c2",
	})
	require.NoError(t, err)
	assert.Equal(t, "Published", updated.Title)
	assert.Equal(t, "News", updated.Category)
	assert.Equal(t, "Dina", updated.Author)
}

func TestBlogNotFound(t *testing.T) {
	uc := NewBlogUseCase(newFakeBlogRepo())
	ctx := context.Background()

	_, err := uc.GetBlog(ctx, "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	_, err = uc.UpdateBlog(ctx, "missing", BlogInput{Title: "t", Excerpt: "e", Content: "c"})
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	err = uc.DeleteBlog(ctx, "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
