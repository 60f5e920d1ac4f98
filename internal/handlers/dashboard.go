package handlers

import (
	"net/http"
	"strconv"

	"github.com/sjpathak2211/ai-dashboard/internal/metrics"
	"github.com/sjpathak2211/ai-dashboard/internal/models"
)

const defaultActivityLimit = 10

func (h *Handler) GetBacklog(w http.ResponseWriter, r *http.Request) {
	info, err := h.Backlog.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *Handler) UpdateBacklog(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not signed in"})
		return
	}

	var info models.BacklogInfo
	if err := decodeJSON(r, &info); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if !info.Status.IsValid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid backlog status"})
		return
	}

	if err := h.Backlog.Update(r.Context(), info, user.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// Metrics re-derives the dashboard counters from the full request collection
// on every call; there is no cached or incremental path.
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not signed in"})
		return
	}

	reqs, err := h.DB.GetAllRequests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics.Compute(reqs, user.ID))
}

func (h *Handler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	items, err := h.DB.RecentActivities(r.Context(), activityLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) MyActivity(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not signed in"})
		return
	}

	items, err := h.DB.UserActivities(r.Context(), user.ID, activityLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func activityLimit(r *http.Request) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			return n
		}
	}
	return defaultActivityLimit
}
