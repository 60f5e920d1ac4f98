package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sjpathak2211/ai-dashboard/internal/apperr"
	"github.com/sjpathak2211/ai-dashboard/internal/requests"
)

func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not signed in"})
		return
	}

	var fields requests.SubmissionFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	req, verrs, err := h.Requests.Submit(r.Context(), fields, user)
	if err != nil {
		writeError(w, err)
		return
	}
	if !verrs.Valid() {
		writeValidationErrors(w, verrs)
		return
	}

	writeJSON(w, http.StatusCreated, req)
}

func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.DB.GetAllRequests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *Handler) MyRequests(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not signed in"})
		return
	}

	reqs, err := h.DB.GetRequestsByUser(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}

// UpdateRequest handles the admin triage path (any subset of fields) and the
// owner edit path (everything except title, status, progress, and notes).
func (h *Handler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(r)
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not signed in"})
		return
	}

	id := chi.URLParam(r, "id")
	var upd requests.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if !user.IsAdmin {
		cur, err := h.Requests.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if cur.UserID != user.ID {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "you can only edit your own requests"})
			return
		}
		if upd.Status != nil || upd.Progress != nil || upd.AdminNotes != nil {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "only admins can change status, progress, or notes"})
			return
		}
		if verrs := validateOwnerEdit(cur.Description, upd); !verrs.Valid() {
			writeValidationErrors(w, verrs)
			return
		}
	}

	updated, err := h.Requests.Update(r.Context(), id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// validateOwnerEdit runs edit validation over the merged view of the record,
// so a partial edit is checked against what the row will actually hold.
func validateOwnerEdit(curDescription string, upd requests.Update) apperr.ValidationErrors {
	fields := requests.SubmissionFields{Description: curDescription}
	if upd.Description != nil {
		fields.Description = *upd.Description
	}
	if upd.Department != nil {
		fields.Department = *upd.Department
	}
	if upd.Priority != nil {
		fields.Priority = *upd.Priority
	}
	if upd.EstimatedImpact != nil {
		fields.EstimatedImpact = *upd.EstimatedImpact
	}
	if upd.ContactInfo != nil {
		fields.ContactInfo = *upd.ContactInfo
	}

	verrs := apperr.ValidationErrors{}
	for k, v := range requests.ValidateForEdit(fields) {
		switch k {
		case "description":
			verrs[k] = v
		case "department":
			if upd.Department != nil {
				verrs[k] = v
			}
		case "priority":
			if upd.Priority != nil {
				verrs[k] = v
			}
		case "estimatedImpact":
			if upd.EstimatedImpact != nil {
				verrs[k] = v
			}
		case "contactInfo":
			if upd.ContactInfo != nil {
				verrs[k] = v
			}
		}
	}
	return verrs
}

func (h *Handler) ConvertRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.Requests.Convert(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}
