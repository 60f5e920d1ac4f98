package handlers

import (
	"net/http"

	"github.com/sjpathak2211/ai-dashboard/internal/ai"
)

type marshalPayload struct {
	Messages []ai.ChatMessage `json:"messages"`
	Type     string           `json:"type"`
}

// MarshalProxy fronts the Marshal assistant: chat mode returns one assistant
// turn, generate mode returns the three structured form fields.
func (h *Handler) MarshalProxy(w http.ResponseWriter, r *http.Request) {
	var payload marshalPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if len(payload.Messages) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "messages are required"})
		return
	}

	switch payload.Type {
	case "generate":
		fields, err := h.Marshal.GenerateFormFields(r.Context(), payload.Messages)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, fields)
	case "chat", "":
		reply, err := h.Marshal.Chat(r.Context(), payload.Messages)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"response": reply})
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "type must be chat or generate"})
	}
}
