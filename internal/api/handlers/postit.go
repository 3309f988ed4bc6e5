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

type PostItHandler struct {
	postItService *service.PostItService
	authService   *service.AuthService
}

func NewPostItHandler(postItService *service.PostItService, authService *service.AuthService) *PostItHandler {
	return &PostItHandler{
		postItService: postItService,
		authService:   authService,
	}
}

type PostItRequest struct {
	CategoryID  string `json:"categoryId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Weekday     string `json:"weekday"`
	Pinned      bool   `json:"pinned"`
	Completed   bool   `json:"completed"`
}

func (h *PostItHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(w, r)
	if !ok {
		return
	}

	input, ok := decodePostItRequest(w, r)
	if !ok {
		return
	}

	postIt, err := h.postItService.Create(r.Context(), userID, input)
	if err != nil {
		writePostItError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(postIt)
}

func (h *PostItHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(w, r)
	if !ok {
		return
	}

	postIts, err := h.postItService.List(r.Context(), userID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(postIts)
}

func (h *PostItHandler) ListCompleted(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(w, r)
	if !ok {
		return
	}

	postIts, err := h.postItService.ListCompleted(r.Context(), userID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(postIts)
}

func (h *PostItHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(w, r)
	if !ok {
		return
	}

	postItID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid post-it id", http.StatusBadRequest)
		return
	}

	postIt, err := h.postItService.Get(r.Context(), userID, postItID)
	if err != nil {
		writePostItError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(postIt)
}

func (h *PostItHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(w, r)
	if !ok {
		return
	}

	postItID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid post-it id", http.StatusBadRequest)
		return
	}

	input, ok := decodePostItRequest(w, r)
	if !ok {
		return
	}

	postIt, err := h.postItService.Update(r.Context(), userID, postItID, input)
	if err != nil {
		writePostItError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(postIt)
}

func (h *PostItHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(w, r)
	if !ok {
		return
	}

	postItID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid post-it id", http.StatusBadRequest)
		return
	}

	if err := h.postItService.Delete(r.Context(), userID, postItID); err != nil {
		writePostItError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *PostItHandler) currentUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
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

func decodePostItRequest(w http.ResponseWriter, r *http.Request) (service.PostItInput, bool) {
	var req PostItRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return service.PostItInput{}, false
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		http.Error(w, "Invalid category id", http.StatusBadRequest)
		return service.PostItInput{}, false
	}

	return service.PostItInput{
		CategoryID:  categoryID,
		Title:       req.Title,
		Description: req.Description,
		Weekday:     req.Weekday,
		Pinned:      req.Pinned,
		Completed:   req.Completed,
	}, true
}

func writePostItError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrPostItNotFound):
		http.Error(w, "Post-it not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrCategoryNotFound):
		http.Error(w, "Category not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidWeekday), errors.Is(err, service.ErrInvalidTitle):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
