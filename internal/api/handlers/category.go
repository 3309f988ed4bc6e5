package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mthompson/stickit/internal/api/middleware"
	"github.com/mthompson/stickit/internal/domain"
	"github.com/mthompson/stickit/internal/service"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	authService     *service.AuthService
}

func NewCategoryHandler(categoryService *service.CategoryService, authService *service.AuthService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		authService:     authService,
	}
}

type CategoryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ColorCode   string `json:"colorCode"`
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(w, r)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	category, err := h.categoryService.Create(r.Context(), userID, service.CategoryInput{
		Title:       req.Title,
		Description: req.Description,
		ColorCode:   req.ColorCode,
	})
	if err != nil {
		writeCategoryError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(category)
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(w, r)
	if !ok {
		return
	}

	categories, err := h.categoryService.List(r.Context(), userID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(categories)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(w, r)
	if !ok {
		return
	}

	categoryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid category id", http.StatusBadRequest)
		return
	}

	category, err := h.categoryService.Get(r.Context(), userID, categoryID)
	if err != nil {
		writeCategoryError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(w, r)
	if !ok {
		return
	}

	categoryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid category id", http.StatusBadRequest)
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	category, err := h.categoryService.Update(r.Context(), userID, categoryID, service.CategoryInput{
		Title:       req.Title,
		Description: req.Description,
		ColorCode:   req.ColorCode,
	})
	if err != nil {
		writeCategoryError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(w, r)
	if !ok {
		return
	}

	categoryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid category id", http.StatusBadRequest)
		return
	}

	if err := h.categoryService.Delete(r.Context(), userID, categoryID); err != nil {
		writeCategoryError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *CategoryHandler) currentUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	user, err := h.authService.GetUserByUsername(r.Context(), sess.Username)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return uuid.Nil, false
	}
	return user.ID, true
}

func writeCategoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		http.Error(w, "Category not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrCategoryLimit), errors.Is(err, domain.ErrColorAlreadyTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrInvalidTitle), errors.Is(err, service.ErrInvalidDescription):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
