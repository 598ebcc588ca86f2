package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateCategory_ValidationErrors(t *testing.T) {
	svc := NewCategoryService(nil, nil)
	validID := primitive.NewObjectID().Hex()

	tests := []struct {
		name    string
		userID  string
		title   string
		wantErr error
	}{
		{"malformed user id", "bogus", "Tech", ErrInvalidUserID},
		{"missing title", validID, "", ErrMissingTitle},
		{"blank title", validID, "  ", ErrMissingTitle},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := svc.CreateCategory(context.Background(), test.userID, test.title)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestUpdateCategory_ValidationErrors(t *testing.T) {
	svc := NewCategoryService(nil, nil)
	validID := primitive.NewObjectID().Hex()

	tests := []struct {
		name       string
		userID     string
		categoryID string
		title      string
		wantErr    error
	}{
		{"malformed user id", "bogus", validID, "Tech", ErrInvalidUserID},
		{"malformed category id", validID, "bogus", "Tech", ErrInvalidCategoryID},
		{"missing title", validID, validID, "", ErrMissingTitle},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := svc.UpdateCategory(context.Background(), test.userID, test.categoryID, test.title)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestDeleteCategory_IdentifierValidation(t *testing.T) {
	svc := NewCategoryService(nil, nil)
	validID := primitive.NewObjectID().Hex()

	if err := svc.DeleteCategory(context.Background(), "x", validID); !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
	if err := svc.DeleteCategory(context.Background(), validID, "x"); !errors.Is(err, ErrInvalidCategoryID) {
		t.Fatalf("expected ErrInvalidCategoryID, got %v", err)
	}
}

func TestUserService_ValidationErrors(t *testing.T) {
	svc := NewUserService(nil)

	if _, err := svc.CreateUser(context.Background(), "", "a@example.com"); !errors.Is(err, ErrMissingUsername) {
		t.Fatalf("expected ErrMissingUsername, got %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), "ada", ""); !errors.Is(err, ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}
	if _, err := svc.UpdateUser(context.Background(), "bogus", "ada"); !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
	if err := svc.DeleteUser(context.Background(), "bogus"); !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
}
