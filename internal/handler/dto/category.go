package dto

import (
	"time"

	"github.com/inkwell/inkwell/internal/model"
)

// CreateCategoryRequest represents the request body for creating a category.
type CreateCategoryRequest struct {
	Title string `json:"title"`
}

// UpdateCategoryRequest represents the request body for renaming a category.
type UpdateCategoryRequest struct {
	Title string `json:"title"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a Category model to CategoryResponse DTO.
func ToCategoryResponse(category *model.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        category.ID.Hex(),
		Title:     category.Title,
		UserID:    category.UserID.Hex(),
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryListResponse converts a slice of Category models to DTOs.
func ToCategoryListResponse(categories []*model.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *ToCategoryResponse(category)
	}
	return responses
}
