package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inkwell/inkwell/internal/service"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "invalid user id", err: service.ErrInvalidUserID, wantStatus: http.StatusBadRequest, wantCode: "INVALID_USER_ID"},
		{name: "invalid category id", err: service.ErrInvalidCategoryID, wantStatus: http.StatusBadRequest, wantCode: "INVALID_CATEGORY_ID"},
		{name: "invalid blog id", err: service.ErrInvalidBlogID, wantStatus: http.StatusBadRequest, wantCode: "INVALID_BLOG_ID"},
		{name: "missing title", err: service.ErrMissingTitle, wantStatus: http.StatusBadRequest, wantCode: "MISSING_TITLE"},
		{name: "user not found", err: service.ErrUserNotFound, wantStatus: http.StatusNotFound, wantCode: "USER_NOT_FOUND"},
		{name: "category not found", err: service.ErrCategoryNotFound, wantStatus: http.StatusNotFound, wantCode: "CATEGORY_NOT_FOUND"},
		{name: "blog not found", err: service.ErrBlogNotFound, wantStatus: http.StatusNotFound, wantCode: "BLOG_NOT_FOUND"},
		{name: "wrapped sentinel", err: errors.Join(errors.New("context"), service.ErrBlogNotFound), wantStatus: http.StatusNotFound, wantCode: "BLOG_NOT_FOUND"},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			writeServiceError(rec, testLogger(), tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if body := decodeError(t, rec); body.Code != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, body.Code)
			}
		})
	}
}

func TestWriteServiceError_UnknownErrorHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()

	writeServiceError(rec, testLogger(), errors.New("dial tcp 10.0.0.5: connection refused"))

	body := decodeError(t, rec)
	if body.Error != "An internal error occurred" {
		t.Errorf("expected generic message, got %q", body.Error)
	}
}
