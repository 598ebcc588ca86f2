package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/inkwell/inkwell/internal/handler/dto"
	"github.com/inkwell/inkwell/internal/service"
)

// writeError writes a structured error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// writeServiceError maps service errors to HTTP responses.
// Ownership mismatches arrive here already collapsed into not-found
// sentinels, so nothing about another user's records can leak. Unknown
// errors are logged and answered with a generic 500.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidUserID):
		writeError(w, http.StatusBadRequest, "INVALID_USER_ID", "Invalid user id")
	case errors.Is(err, service.ErrInvalidCategoryID):
		writeError(w, http.StatusBadRequest, "INVALID_CATEGORY_ID", "Invalid category id")
	case errors.Is(err, service.ErrInvalidBlogID):
		writeError(w, http.StatusBadRequest, "INVALID_BLOG_ID", "Invalid blog id")
	case errors.Is(err, service.ErrMissingTitle):
		writeError(w, http.StatusBadRequest, "MISSING_TITLE", "Title is required")
	case errors.Is(err, service.ErrMissingUsername):
		writeError(w, http.StatusBadRequest, "MISSING_USERNAME", "Username is required")
	case errors.Is(err, service.ErrMissingEmail):
		writeError(w, http.StatusBadRequest, "MISSING_EMAIL", "Email is required")
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, service.ErrCategoryNotFound):
		writeError(w, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
	case errors.Is(err, service.ErrBlogNotFound):
		writeError(w, http.StatusNotFound, "BLOG_NOT_FOUND", "Blog not found")
	default:
		logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
