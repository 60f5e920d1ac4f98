// Package ai is the client for Marshal, the assistant that helps users draft
// AI initiative requests. It proxies conversations to the Anthropic Messages
// API in two modes: free-text chat and structured form generation.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sjpathak2211/ai-dashboard/internal/apperr"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	model            = "claude-3-5-haiku-20241022"
	anthropicVersion = "2023-06-01"
)

const systemPrompt = `You are Marshal, an AI assistant for Ascendco Health helping users submit AI project requests. Your goal is to gather comprehensive information about their AI initiative through a friendly conversation.

You should ask about:
1. The core problem or opportunity they're addressing
2. The specific goals and desired outcomes
3. How this will impact their department and patients/staff
4. Any technical requirements or constraints they've considered
5. The urgency and timeline expectations

Keep the conversation natural and professional. Ask follow-up questions to get clarity. Once you have enough information, you'll help generate a clear title, detailed description, and impact assessment for their request.

Important: Be concise but thorough. Healthcare professionals are busy, so make each question count.`

const generatePrompt = `Based on our conversation above, generate a JSON object with exactly these three fields:

{
  "title": "A clear, concise project title (max 100 characters)",
  "description": "A comprehensive description of the AI initiative, its goals, and implementation approach",
  "estimatedImpact": "The expected benefits, metrics, and value to the organization"
}

Make sure all field values are strings. Respond with ONLY the JSON object, no markdown formatting or additional text.`

// Defaults substituted when generate mode comes back with a missing field.
const (
	defaultTitle  = "AI Initiative Request"
	defaultImpact = "To be determined based on further analysis"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// FormFields is the structured draft Marshal produces from a conversation.
type FormFields struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	EstimatedImpact string `json:"estimatedImpact"`
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// NewClientWithBaseURL points the client at a different upstream. Tests use
// it with httptest servers.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type messagesRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	System      string        `json:"system"`
	Messages    []ChatMessage `json:"messages"`
}

type messagesResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// Chat returns one assistant turn for the conversation so far.
func (c *Client) Chat(ctx context.Context, messages []ChatMessage) (string, error) {
	return c.complete(ctx, messagesRequest{
		Model:       model,
		MaxTokens:   500,
		Temperature: 0.7,
		System:      systemPrompt,
		Messages:    messages,
	})
}

// GenerateFormFields asks Marshal to distill the conversation into the three
// form fields. Any field the model omits or mangles is replaced with a fixed
// default rather than failing the whole draft.
func (c *Client) GenerateFormFields(ctx context.Context, messages []ChatMessage) (FormFields, error) {
	full := append(append([]ChatMessage{}, messages...), ChatMessage{
		Role:    "user",
		Content: generatePrompt,
	})

	text, err := c.complete(ctx, messagesRequest{
		Model:       model,
		MaxTokens:   1000,
		Temperature: 0.7,
		System:      systemPrompt,
		Messages:    full,
	})
	if err != nil {
		return FormFields{}, err
	}

	return parseFormFields(text), nil
}

func (c *Client) complete(ctx context.Context, body messagesRequest) (string, error) {
	if c.apiKey == "" {
		return "", &apperr.UpstreamError{Service: "anthropic", Err: fmt.Errorf("API key not configured")}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &apperr.UpstreamError{Service: "anthropic", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &apperr.UpstreamError{Service: "anthropic", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &apperr.UpstreamError{Service: "anthropic", Status: resp.StatusCode}
	}

	var parsed messagesResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &apperr.UpstreamError{Service: "anthropic", Err: err}
	}
	if len(parsed.Content) == 0 {
		return "", &apperr.UpstreamError{Service: "anthropic", Err: fmt.Errorf("empty completion")}
	}

	return parsed.Content[0].Text, nil
}

// parseFormFields tolerates markdown fences around the JSON and coerces every
// field to a non-empty string, falling back to defaults.
func parseFormFields(text string) FormFields {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.Trim(cleaned, "`")
	cleaned = strings.TrimPrefix(cleaned, "json")
	cleaned = strings.TrimSpace(cleaned)

	var raw map[string]any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		// Model ignored the JSON instruction; salvage the text as the
		// description.
		return FormFields{
			Title:           defaultTitle,
			Description:     text,
			EstimatedImpact: defaultImpact,
		}
	}

	return FormFields{
		Title:           stringField(raw, "title", defaultTitle),
		Description:     stringField(raw, "description", text),
		EstimatedImpact: stringField(raw, "estimatedImpact", defaultImpact),
	}
}

func stringField(raw map[string]any, key, fallback string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return fallback
	}
	switch s := v.(type) {
	case string:
		if s == "" {
			return fallback
		}
		return s
	default:
		return fmt.Sprint(v)
	}
}
