package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Gun249/Winner-Bike/models"
	"github.com/joho/godotenv"
)

const (
	// Gemini exposes an OpenAI-compatible surface; the loop talks to that
	// instead of the native generateContent API so tool calls arrive in the
	// standard tool_calls field.
	GeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/chat/completions"
	DefaultModel  = "gemini-2.5-flash"
)

func init() {
	// Load .env file if it exists (not present in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// Gemini_Model is a chat completion backend with tool-calling support.
type Gemini_Model struct {
	Model       string
	Temperature *float64
	MaxTokens   *int
	BaseURL     string // Optional: custom endpoint (used by tests)
	APIKeyEnv   string // Optional: env var holding the key (defaults to GOOGLE_API_KEY)
	HTTPTimeout time.Duration
}

// Model_Request sends the transcript and tool schema and returns the
// normalized completion. tool_choice is always "auto": the model decides
// whether to call a tool.
func (g *Gemini_Model) Model_Request(ctx context.Context, transcript []models.Chat_Message, tools []models.FunctionDeclaration) (models.Model_Response, error) {
	if len(transcript) == 0 {
		return models.Model_Response{}, fmt.Errorf("transcript must not be empty")
	}

	modelToUse := g.Model
	if modelToUse == "" {
		modelToUse = DefaultModel
	}

	requestBody := Request{
		Model:       modelToUse,
		Messages:    convertTranscript(transcript),
		Temperature: g.Temperature,
		MaxTokens:   g.MaxTokens,
	}
	if len(tools) > 0 {
		requestBody.Tools = ConvertTools(tools)
		requestBody.ToolChoice = "auto"
	}

	jsonBytes, err := json.Marshal(requestBody)
	if err != nil {
		return models.Model_Response{}, fmt.Errorf("failed to marshal request body: %w", err)
	}

	baseURL := g.BaseURL
	if baseURL == "" {
		baseURL = GeminiBaseURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL, bytes.NewReader(jsonBytes))
	if err != nil {
		return models.Model_Response{}, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	g.setHeaders(req)

	client := &http.Client{Timeout: g.httpTimeout()}
	resp, err := client.Do(req)
	if err != nil {
		return models.Model_Response{}, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Model_Response{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			return models.Model_Response{}, fmt.Errorf("Gemini API error: %s (type: %s)", errResp.Error.Message, errResp.Error.Type)
		}
		return models.Model_Response{}, fmt.Errorf("Gemini API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var response Response
	if err := json.Unmarshal(body, &response); err != nil {
		return models.Model_Response{}, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return normalizeResponse(response), nil
}

func (g *Gemini_Model) httpTimeout() time.Duration {
	if g.HTTPTimeout > 0 {
		return g.HTTPTimeout
	}
	return 120 * time.Second
}

func (g *Gemini_Model) setHeaders(req *http.Request) {
	apiKeyEnv := g.APIKeyEnv
	if apiKeyEnv == "" {
		apiKeyEnv = "GOOGLE_API_KEY"
	}
	req.Header.Set("Authorization", "Bearer "+os.Getenv(apiKeyEnv))
	req.Header.Set("Content-Type", "application/json")
}

// convertTranscript maps the canonical transcript onto the wire format.
// Normalized tool call args are re-encoded to the JSON string the API
// expects.
func convertTranscript(transcript []models.Chat_Message) []Message {
	messages := make([]Message, 0, len(transcript))
	for _, m := range transcript {
		wire := Message{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallID: m.Tool_Call_ID,
			Name:       m.Name,
		}
		for _, tc := range m.Tool_Calls {
			argsBytes, err := json.Marshal(tc.Args)
			if err != nil {
				log.Printf("Warning: failed to marshal args for tool call %s: %v", tc.Name, err)
				argsBytes = []byte("{}")
			}
			wire.ToolCalls = append(wire.ToolCalls, ToolCall{
				ID:   tc.ID,
				Type: "function",
				Function: ToolCallFunction{
					Name:      tc.Name,
					Arguments: string(argsBytes),
				},
			})
		}
		messages = append(messages, wire)
	}
	return messages
}

// ConvertTools maps FunctionDeclarations onto the wire tool schema.
func ConvertTools(tools []models.FunctionDeclaration) []Tool {
	out := make([]Tool, len(tools))
	for i, t := range tools {
		params := t.Parameters
		if params.Type == "" {
			params.Type = "object"
		}
		if params.Properties == nil {
			params.Properties = map[string]interface{}{}
		}
		out[i] = Tool{
			Type: "function",
			Function: ToolFunction{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  params,
			},
		}
	}
	return out
}

// normalizeResponse flattens the first choice into a Model_Response,
// decoding tool call argument strings into maps. Arguments that fail to
// decode become empty maps rather than dropped calls.
func normalizeResponse(response Response) models.Model_Response {
	out := models.Model_Response{}
	if len(response.Choices) == 0 {
		return out
	}

	choice := response.Choices[0]
	out.Text = choice.Message.Content

	for _, tc := range choice.Message.ToolCalls {
		var args map[string]interface{}
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			log.Printf("Warning: failed to unmarshal tool call arguments for %s: %v", tc.Function.Name, err)
			args = map[string]interface{}{}
		}
		out.Tool_Calls = append(out.Tool_Calls, models.Tool_Call{
			ID:     tc.ID,
			Name:   tc.Function.Name,
			Args:   args,
			Source: models.Tool_Call_Native,
		})
	}
	return out
}
