package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell/inkwell/internal/handler/dto"
	"github.com/inkwell/inkwell/internal/service"
)

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	svc    *service.CategoryService
	logger *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(svc *service.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/v1/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCategoryListResponse(categories))
}

// Create handles POST /api/v1/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	category, err := h.svc.CreateCategory(r.Context(), r.URL.Query().Get("user_id"), req.Title)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("category_created",
		"category_id", category.ID.Hex(),
		"user_id", category.UserID.Hex(),
	)

	writeJSON(w, http.StatusCreated, dto.ToCategoryResponse(category))
}

// Update handles PATCH /api/v1/categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	category, err := h.svc.UpdateCategory(r.Context(),
		r.URL.Query().Get("user_id"),
		chi.URLParam(r, "id"),
		req.Title,
	)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("category_updated", "category_id", category.ID.Hex())

	writeJSON(w, http.StatusOK, dto.ToCategoryResponse(category))
}

// Delete handles DELETE /api/v1/categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	categoryID := chi.URLParam(r, "id")

	if err := h.svc.DeleteCategory(r.Context(), userID, categoryID); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("category_deleted", "category_id", categoryID)

	w.WriteHeader(http.StatusNoContent)
}
