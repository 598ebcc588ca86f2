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

// CategoryService handles category business logic.
type CategoryService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo *repository.Repository, recorder metrics.Recorder) *CategoryService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &CategoryService{
		repo:    repo,
		metrics: recorder,
	}
}

// ListCategories returns all categories owned by the given user.
func (s *CategoryService) ListCategories(ctx context.Context, userID string) ([]*model.Category, error) {
	owner, err := parseID(userID, ErrInvalidUserID)
	if err != nil {
		return nil, err
	}

	if err := s.requireUser(ctx, owner); err != nil {
		return nil, err
	}

	categories, err := s.repo.ListCategories(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// CreateCategory creates a category owned by the given user.
func (s *CategoryService) CreateCategory(ctx context.Context, userID, title string) (*model.Category, error) {
	owner, err := parseID(userID, ErrInvalidUserID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}

	if err := s.requireUser(ctx, owner); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	category := &model.Category{
		Title:     title,
		UserID:    owner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.metrics.IncCategoryCreated()

	return category, nil
}

// UpdateCategory renames a category scoped to (category id, owner).
func (s *CategoryService) UpdateCategory(ctx context.Context, userID, categoryID, title string) (*model.Category, error) {
	owner, err := parseID(userID, ErrInvalidUserID)
	if err != nil {
		return nil, err
	}
	id, err := parseID(categoryID, ErrInvalidCategoryID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}

	if err := s.requireUser(ctx, owner); err != nil {
		return nil, err
	}

	category, err := s.repo.GetCategoryByOwner(ctx, id, owner)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	category.Title = title
	category.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	s.metrics.IncCategoryUpdated()

	return category, nil
}

// DeleteCategory deletes a category scoped to (category id, owner).
// Blogs filed under the category are left untouched.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	owner, err := parseID(userID, ErrInvalidUserID)
	if err != nil {
		return err
	}
	id, err := parseID(categoryID, ErrInvalidCategoryID)
	if err != nil {
		return err
	}

	if err := s.requireUser(ctx, owner); err != nil {
		return err
	}

	if err := s.repo.DeleteCategory(ctx, id, owner); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	s.metrics.IncCategoryDeleted()

	return nil
}

// requireUser checks that a user exists.
func (s *CategoryService) requireUser(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.repo.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
