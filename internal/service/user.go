package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/inkwell/inkwell/internal/model"
	"github.com/inkwell/inkwell/internal/repository"
)

// UserService handles user business logic.
type UserService struct {
	repo *repository.Repository
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.Repository) *UserService {
	return &UserService{repo: repo}
}

// ListUsers returns all users.
func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateUser creates a new user.
func (s *UserService) CreateUser(ctx context.Context, username, email string) (*model.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrMissingUsername
	}
	if strings.TrimSpace(email) == "" {
		return nil, ErrMissingEmail
	}

	now := time.Now().UTC()
	user := &model.User{
		Username:  username,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateUser renames a user.
func (s *UserService) UpdateUser(ctx context.Context, userID, username string) (*model.User, error) {
	id, err := parseID(userID, ErrInvalidUserID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(username) == "" {
		return nil, ErrMissingUsername
	}

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Username = username
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// DeleteUser deletes a user. Records owned by the user are not cascaded.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	id, err := parseID(userID, ErrInvalidUserID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return nil
}
