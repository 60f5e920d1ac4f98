package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sjpathak2211/ai-dashboard/internal/auth"
	"github.com/sjpathak2211/ai-dashboard/internal/middleware"
)

type registerPayload struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var payload registerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if !auth.ValidEmail(payload.Email) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "please enter a valid email address"})
		return
	}
	if payload.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if err := auth.ValidatePassword(payload.Password); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	// Admin capability is decided once, here, and persisted.
	isAdmin := h.Policy.IsPrivileged(payload.Email)

	user, err := h.DB.CreateUser(r.Context(), payload.Email, payload.Name, "", hash, isAdmin)
	if err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "email is already registered"})
		return
	}

	h.startSession(w, r, user.ID, user.Email, user.Name, user.IsAdmin)
	writeJSON(w, http.StatusCreated, user)
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user, err := h.DB.GetUserByEmail(r.Context(), payload.Email)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		return
	}
	if err := auth.CheckPassword(payload.Password, user.PasswordHash); err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		return
	}

	h.startSession(w, r, user.ID, user.Email, user.Name, user.IsAdmin)
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Store.Get(r, middleware.SessionName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, id, email, name string, isAdmin bool) {
	session, _ := h.Store.Get(r, middleware.SessionName)
	session.Values["user_id"] = id
	session.Values["email"] = email
	session.Values["name"] = name
	session.Values["is_admin"] = isAdmin
	if err := session.Save(r, w); err != nil {
		log.Printf("warn: saving session: %v", err)
	}
}
