package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mthompson/stickit/internal/api/middleware"
	"github.com/mthompson/stickit/internal/domain"
	"github.com/mthompson/stickit/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

type DashboardResponse struct {
	Day      string                  `json:"day"`
	IsToday  bool                    `json:"isToday"`
	Pinned   []domain.EnrichedPostIt `json:"pinned"`
	Unpinned []domain.EnrichedPostIt `json:"unpinned"`
}

// Get renders the weekly dashboard. A failed slice collapses to an empty
// list in the response: partial data beats an error page here, and the
// failure is already logged at the aggregator.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	day := r.URL.Query().Get("day")

	dashboard, err := h.dashboardService.BuildDashboard(r.Context(), day, sess.Username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidWeekday):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrUserNotFound):
			http.Error(w, "User not found", http.StatusNotFound)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	resp := DashboardResponse{
		Day:      string(dashboard.Day),
		IsToday:  dashboard.IsToday,
		Pinned:   dashboard.Pinned.Notes,
		Unpinned: dashboard.Unpinned.Notes,
	}
	if resp.Pinned == nil {
		resp.Pinned = []domain.EnrichedPostIt{}
	}
	if resp.Unpinned == nil {
		resp.Unpinned = []domain.EnrichedPostIt{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
