package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjpathak2211/ai-dashboard/internal/apperr"
)

// upstream fakes the Anthropic Messages endpoint, answering with the given
// completion text.
func upstream(t *testing.T, completion string, capture *messagesRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}

		resp := map[string]any{
			"content": []map[string]string{{"type": "text", "text": completion}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestChat(t *testing.T) {
	var captured messagesRequest
	srv := upstream(t, "What problem are you trying to solve?", &captured)
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	reply, err := client.Chat(context.Background(), []ChatMessage{
		{Role: "user", Content: "I want to automate chart review."},
	})
	require.NoError(t, err)

	assert.Equal(t, "What problem are you trying to solve?", reply)
	assert.Equal(t, 500, captured.MaxTokens)
	assert.Len(t, captured.Messages, 1)
	assert.NotEmpty(t, captured.System)
}

func TestGenerateAppendsInstruction(t *testing.T) {
	var captured messagesRequest
	srv := upstream(t, `{"title":"T","description":"D","estimatedImpact":"I"}`, &captured)
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	fields, err := client.GenerateFormFields(context.Background(), []ChatMessage{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi"},
	})
	require.NoError(t, err)

	assert.Equal(t, FormFields{Title: "T", Description: "D", EstimatedImpact: "I"}, fields)
	require.Len(t, captured.Messages, 3)
	assert.Equal(t, "user", captured.Messages[2].Role)
	assert.Contains(t, captured.Messages[2].Content, "exactly these three fields")
	assert.Equal(t, 1000, captured.MaxTokens)
}

func TestGenerateStripsMarkdownFences(t *testing.T) {
	srv := upstream(t, "```json\n{\"title\":\"T\",\"description\":\"D\",\"estimatedImpact\":\"I\"}\n```", nil)
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	fields, err := client.GenerateFormFields(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "T", fields.Title)
	assert.Equal(t, "D", fields.Description)
	assert.Equal(t, "I", fields.EstimatedImpact)
}

func TestGenerateSubstitutesDefaults(t *testing.T) {
	srv := upstream(t, `{"description":"only this"}`, nil)
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	fields, err := client.GenerateFormFields(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, defaultTitle, fields.Title)
	assert.Equal(t, "only this", fields.Description)
	assert.Equal(t, defaultImpact, fields.EstimatedImpact)
}

func TestGenerateNonJSONFallsBack(t *testing.T) {
	srv := upstream(t, "Sorry, I cannot produce JSON right now.", nil)
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	fields, err := client.GenerateFormFields(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, defaultTitle, fields.Title)
	assert.Equal(t, "Sorry, I cannot produce JSON right now.", fields.Description)
	assert.Equal(t, defaultImpact, fields.EstimatedImpact)
}

func TestGenerateCoercesNonStringValues(t *testing.T) {
	srv := upstream(t, `{"title":"T","description":"D","estimatedImpact":42}`, nil)
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	fields, err := client.GenerateFormFields(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "42", fields.EstimatedImpact)
}

func TestUpstreamFailureSurfacesAsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	_, err := client.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})

	var uerr *apperr.UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, http.StatusTooManyRequests, uerr.Status)
}

func TestMissingAPIKey(t *testing.T) {
	client := NewClient("")

	_, err := client.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})
	var uerr *apperr.UpstreamError
	assert.ErrorAs(t, err, &uerr)
}
