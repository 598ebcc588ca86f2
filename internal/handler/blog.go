package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell/inkwell/internal/handler/dto"
	"github.com/inkwell/inkwell/internal/service"
)

// Date formats accepted for start_date / end_date query parameters.
var dateFormats = []string{time.RFC3339, "2006-01-02"}

// BlogHandler handles HTTP requests for blog operations.
type BlogHandler struct {
	svc    *service.BlogService
	logger *slog.Logger
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(svc *service.BlogService, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/v1/blogs.
//
// Query parameters: user_id and category_id (required scope), keyword,
// start_date, end_date (inclusive bounds), page and limit (1-based,
// defaulted to 1 and 10 when absent, non-numeric or non-positive).
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	input := service.ListBlogsInput{
		UserID:     query.Get("user_id"),
		CategoryID: query.Get("category_id"),
		Keyword:    query.Get("keyword"),
		Page:       parsePositiveInt(query.Get("page"), service.DefaultPage),
		Limit:      parsePositiveInt(query.Get("limit"), service.DefaultLimit),
	}

	if raw := query.Get("start_date"); raw != "" {
		t, ok := parseDate(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_START_DATE", "Invalid start_date")
			return
		}
		input.StartDate = &t
	}
	if raw := query.Get("end_date"); raw != "" {
		t, ok := parseDate(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_END_DATE", "Invalid end_date")
			return
		}
		input.EndDate = &t
	}

	blogs, err := h.svc.ListBlogs(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBlogListResponse(blogs, input.Page, input.Limit))
}

// Get handles GET /api/v1/blogs/{id}.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	blog, err := h.svc.GetBlog(r.Context(),
		query.Get("user_id"),
		query.Get("category_id"),
		chi.URLParam(r, "id"),
	)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBlogResponse(blog))
}

// Create handles POST /api/v1/blogs.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	query := r.URL.Query()
	input := service.CreateBlogInput{
		UserID:      query.Get("user_id"),
		CategoryID:  query.Get("category_id"),
		Title:       req.Title,
		Description: req.Description,
	}

	blog, err := h.svc.CreateBlog(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("blog_created",
		"blog_id", blog.ID.Hex(),
		"user_id", blog.UserID.Hex(),
		"category_id", blog.CategoryID.Hex(),
	)

	writeJSON(w, http.StatusCreated, dto.ToBlogResponse(blog))
}

// Update handles PATCH /api/v1/blogs/{id}.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.UpdateBlogInput{
		UserID:      r.URL.Query().Get("user_id"),
		BlogID:      chi.URLParam(r, "id"),
		Title:       req.Title,
		Description: req.Description,
	}

	blog, err := h.svc.UpdateBlog(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("blog_updated", "blog_id", blog.ID.Hex())

	writeJSON(w, http.StatusOK, dto.ToBlogResponse(blog))
}

// Delete handles DELETE /api/v1/blogs/{id}.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	blogID := chi.URLParam(r, "id")

	if err := h.svc.DeleteBlog(r.Context(), userID, blogID); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("blog_deleted", "blog_id", blogID)

	w.WriteHeader(http.StatusNoContent)
}

// parsePositiveInt parses a 1-based query parameter, falling back to the
// default for absent, non-numeric or non-positive input.
func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

// parseDate parses a date query parameter, accepting RFC 3339 timestamps
// and plain dates.
func parseDate(raw string) (time.Time, bool) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
