package dto

import (
	"time"

	"github.com/inkwell/inkwell/internal/model"
)

// CreateBlogRequest represents the request body for creating a blog.
type CreateBlogRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// UpdateBlogRequest represents the request body for updating a blog.
type UpdateBlogRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// BlogResponse represents a blog in API responses.
type BlogResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      string    `json:"user_id"`
	CategoryID  string    `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BlogListResponse represents one page of a blog listing.
type BlogListResponse struct {
	Data  []BlogResponse `json:"data"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// ToBlogResponse converts a Blog model to BlogResponse DTO.
func ToBlogResponse(blog *model.Blog) *BlogResponse {
	return &BlogResponse{
		ID:          blog.ID.Hex(),
		Title:       blog.Title,
		Description: blog.Description,
		UserID:      blog.UserID.Hex(),
		CategoryID:  blog.CategoryID.Hex(),
		CreatedAt:   blog.CreatedAt,
		UpdatedAt:   blog.UpdatedAt,
	}
}

// ToBlogListResponse converts a slice of Blog models to BlogListResponse.
func ToBlogListResponse(blogs []*model.Blog, page, limit int) *BlogListResponse {
	responses := make([]BlogResponse, len(blogs))
	for i, blog := range blogs {
		responses[i] = *ToBlogResponse(blog)
	}
	return &BlogListResponse{
		Data:  responses,
		Page:  page,
		Limit: limit,
	}
}
