package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/sjpathak2211/ai-dashboard/internal/ai"
	"github.com/sjpathak2211/ai-dashboard/internal/apperr"
	"github.com/sjpathak2211/ai-dashboard/internal/backlog"
	"github.com/sjpathak2211/ai-dashboard/internal/db"
	"github.com/sjpathak2211/ai-dashboard/internal/middleware"
	"github.com/sjpathak2211/ai-dashboard/internal/models"
	"github.com/sjpathak2211/ai-dashboard/internal/requests"
	"github.com/sjpathak2211/ai-dashboard/internal/roles"
)

// profileFetchTimeout bounds the session-restore profile read. On timeout we
// fall back to a user synthesized from session values rather than blocking
// the request.
const profileFetchTimeout = 3 * time.Second

type Handler struct {
	DB       *db.Database
	Store    *sessions.CookieStore
	Requests *requests.Service
	Backlog  *backlog.Service
	Marshal  *ai.Client
	Policy   roles.Policy
}

func New(database *db.Database, store *sessions.CookieStore, marshal *ai.Client, policy roles.Policy) *Handler {
	return &Handler{
		DB:       database,
		Store:    store,
		Requests: requests.NewService(database),
		Backlog:  backlog.NewService(database),
		Marshal:  marshal,
		Policy:   policy,
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("warn: encoding response: %v", err)
	}
}

// writeError maps service errors to status codes. Internal detail is logged
// here and never echoed to the client.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		var upstream *apperr.UpstreamError
		if errors.As(err, &upstream) {
			log.Printf("upstream error: %v", err)
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "upstream service unavailable"})
			return
		}
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "something went wrong, please try again"})
	}
}

func writeValidationErrors(w http.ResponseWriter, verrs apperr.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": verrs})
}

// currentUser restores the signed-in user. The profile fetch is raced against
// a short deadline; if the store is slow the handler proceeds with a user
// built from the session snapshot instead of failing.
func (h *Handler) currentUser(r *http.Request) *models.User {
	session, _ := h.Store.Get(r, middleware.SessionName)
	userID, _ := session.Values["user_id"].(string)
	if userID == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(r.Context(), profileFetchTimeout)
	defer cancel()

	user, err := h.DB.GetUserByID(ctx, userID)
	if err == nil {
		return user
	}
	log.Printf("warn: profile fetch for %s failed, using session snapshot: %v", userID, err)

	email, _ := session.Values["email"].(string)
	name, _ := session.Values["name"].(string)
	if name == "" {
		name = "Unknown User"
	}
	isAdmin, _ := session.Values["is_admin"].(bool)
	return &models.User{ID: userID, Email: email, Name: name, IsAdmin: isAdmin}
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not signed in"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}
