package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/inkwell/inkwell/internal/metrics"
	"github.com/inkwell/inkwell/internal/model"
	"github.com/inkwell/inkwell/internal/repository"
)

// Listing defaults applied when the caller supplies no usable values.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// BlogService handles blog business logic.
type BlogService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewBlogService creates a new BlogService.
func NewBlogService(repo *repository.Repository, recorder metrics.Recorder) *BlogService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &BlogService{
		repo:    repo,
		metrics: recorder,
	}
}

// ListBlogsInput defines input for listing blogs.
// UserID and CategoryID bound every query; the remaining criteria are
// optional. Date bounds are inclusive.
type ListBlogsInput struct {
	UserID     string
	CategoryID string
	Keyword    string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

// ListBlogs returns the requested window of blogs matching the scope and
// criteria, ordered ascending by creation time. An empty window is a
// successful, empty result.
func (s *BlogService) ListBlogs(ctx context.Context, input ListBlogsInput) ([]*model.Blog, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveBlogListDuration(time.Since(start))
	}()

	owner, category, err := s.resolveScope(ctx, input.UserID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	page := input.Page
	if page <= 0 {
		page = DefaultPage
	}
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	// The keyword is passed through verbatim, surrounding whitespace
	// included; it filters as a literal substring.
	filter := repository.BlogFilter{
		Owner:       owner,
		Category:    category,
		Keyword:     input.Keyword,
		CreatedFrom: input.StartDate,
		CreatedTo:   input.EndDate,
	}
	window := repository.Page{Number: int64(page), Size: int64(limit)}

	blogs, err := s.repo.ListBlogs(ctx, filter, window)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	return blogs, nil
}

// GetBlog retrieves a single blog scoped to its owner and category.
func (s *BlogService) GetBlog(ctx context.Context, userID, categoryID, blogID string) (*model.Blog, error) {
	// All identifier checks happen before any store lookup.
	owner, err := parseID(userID, ErrInvalidUserID)
	if err != nil {
		return nil, err
	}
	category, err := parseID(categoryID, ErrInvalidCategoryID)
	if err != nil {
		return nil, err
	}
	id, err := parseID(blogID, ErrInvalidBlogID)
	if err != nil {
		return nil, err
	}

	if err := s.requireUser(ctx, owner); err != nil {
		return nil, err
	}
	if _, err := s.requireCategory(ctx, category); err != nil {
		return nil, err
	}

	blog, err := s.repo.GetBlog(ctx, id, owner, category)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	return blog, nil
}

// CreateBlogInput defines input for creating a blog.
type CreateBlogInput struct {
	UserID      string
	CategoryID  string
	Title       string
	Description string
}

// CreateBlog creates a blog under the given user and category.
// The category must exist and be owned by the same user; a category owned
// by someone else is reported as not found.
func (s *BlogService) CreateBlog(ctx context.Context, input CreateBlogInput) (*model.Blog, error) {
	owner, err := parseID(input.UserID, ErrInvalidUserID)
	if err != nil {
		return nil, err
	}
	category, err := parseID(input.CategoryID, ErrInvalidCategoryID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrMissingTitle
	}

	if err := s.requireUser(ctx, owner); err != nil {
		return nil, err
	}
	cat, err := s.requireCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if cat.UserID != owner {
		return nil, ErrCategoryNotFound
	}

	now := time.Now().UTC()
	blog := &model.Blog{
		Title:       input.Title,
		Description: input.Description,
		UserID:      owner,
		CategoryID:  category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateBlog(ctx, blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	s.metrics.IncBlogCreated()

	return blog, nil
}

// UpdateBlogInput defines input for updating a blog.
type UpdateBlogInput struct {
	UserID      string
	BlogID      string
	Title       *string
	Description *string
}

// UpdateBlog updates a blog's title and/or description. The lookup is
// scoped to (blog id, owner); the category linkage is not re-verified.
func (s *BlogService) UpdateBlog(ctx context.Context, input UpdateBlogInput) (*model.Blog, error) {
	owner, err := parseID(input.UserID, ErrInvalidUserID)
	if err != nil {
		return nil, err
	}
	id, err := parseID(input.BlogID, ErrInvalidBlogID)
	if err != nil {
		return nil, err
	}

	if err := s.requireUser(ctx, owner); err != nil {
		return nil, err
	}

	blog, err := s.repo.GetBlogByOwner(ctx, id, owner)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrMissingTitle
		}
		blog.Title = *input.Title
	}
	if input.Description != nil {
		blog.Description = *input.Description
	}
	blog.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateBlog(ctx, blog); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	s.metrics.IncBlogUpdated()

	return blog, nil
}

// DeleteBlog deletes a blog scoped to (blog id, owner).
func (s *BlogService) DeleteBlog(ctx context.Context, userID, blogID string) error {
	owner, err := parseID(userID, ErrInvalidUserID)
	if err != nil {
		return err
	}
	id, err := parseID(blogID, ErrInvalidBlogID)
	if err != nil {
		return err
	}

	if err := s.requireUser(ctx, owner); err != nil {
		return err
	}

	if err := s.repo.DeleteBlog(ctx, id, owner); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return ErrBlogNotFound
		}
		return err
	}

	s.metrics.IncBlogDeleted()

	return nil
}

// resolveScope validates the (owner, category) pair that bounds a listing
// query: identifier formats first, then user existence, then category
// existence by id alone. Ownership is carried into the listing predicate.
func (s *BlogService) resolveScope(ctx context.Context, userID, categoryID string) (owner, category primitive.ObjectID, err error) {
	owner, err = parseID(userID, ErrInvalidUserID)
	if err != nil {
		return owner, category, err
	}
	category, err = parseID(categoryID, ErrInvalidCategoryID)
	if err != nil {
		return owner, category, err
	}

	if err = s.requireUser(ctx, owner); err != nil {
		return owner, category, err
	}
	if _, err = s.requireCategory(ctx, category); err != nil {
		return owner, category, err
	}

	return owner, category, nil
}

// requireUser checks that a user exists.
func (s *BlogService) requireUser(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.repo.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// requireCategory checks that a category exists and returns it.
func (s *BlogService) requireCategory(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}
