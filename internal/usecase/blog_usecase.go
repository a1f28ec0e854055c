package usecase

import (
	"context"

	"phonedeck/internal/domain/entity"
	"phonedeck/internal/domain/repository"
)

const (
	defaultBlogCategory = "Technology"
	defaultBlogAuthor   = "Admin"
)

type BlogUseCase struct {
	blogRepo repository.BlogRepository
}

func NewBlogUseCase(blogRepo repository.BlogRepository) *BlogUseCase {
	return &BlogUseCase{
		blogRepo: blogRepo,
	}
}

type BlogInput struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Author   string `json:"author"`
}

func (uc *BlogUseCase) CreateBlog(ctx context.Context, input BlogInput) (*entity.Blog, error) {
	blog := &entity.Blog{
		Title:    input.Title,
		Excerpt:  input.Excerpt,
		Content:  input.Content,
		Category: input.Category,
		Image:    input.Image,
		Author:   input.Author,
	}
	if blog.Category == "" {
		blog.Category = defaultBlogCategory
	}
	if blog.Author == "" {
		blog.Author = defaultBlogAuthor
	}

	if err := uc.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

func (uc *BlogUseCase) GetBlog(ctx context.Context, id string) (*entity.Blog, error) {
	return uc.blogRepo.GetByID(ctx, id)
}

func (uc *BlogUseCase) ListBlogs(ctx context.Context, category string, page, pageSize int) ([]*entity.Blog, int64, error) {
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}

	blogs, total, err := uc.blogRepo.List(ctx, category, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	if blogs == nil {
		blogs = []*entity.Blog{}
	}

	return blogs, total, nil
}

func (uc *BlogUseCase) UpdateBlog(ctx context.Context, id string, input BlogInput) (*entity.Blog, error) {
	blog, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	blog.Title = input.Title
	blog.Excerpt = input.Excerpt
	blog.Content = input.Content
	if input.Category != "" {
		blog.Category = input.Category
	}
	blog.Image = input.Image
	if input.Author != "" {
		blog.Author = input.Author
	}

	if err := uc.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

func (uc *BlogUseCase) DeleteBlog(ctx context.Context, id string) error {
	if _, err := uc.blogRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.blogRepo.Delete(ctx, id)
}
