package typhoon

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

	"github.com/joho/godotenv"
)

const (
	TyphoonBaseURL = "https://api.opentyphoon.ai/v1/chat/completions"
	DefaultModel   = "typhoon-v2.5-30b-a3b-instruct"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// Typhoon_Model is a plain chat completion backend used for the final
// rewrite pass. It speaks the OpenAI-compatible API and never offers
// tools.
type Typhoon_Model struct {
	Model       string
	Temperature *float64
	MaxTokens   *int
	BaseURL     string // Optional: custom endpoint (used by tests)
	APIKeyEnv   string // Optional: env var holding the key (defaults to TYPHOON_API_KEY)
	HTTPTimeout time.Duration
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   *int      `json:"max_tokens,omitempty"`
}

type response struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete runs one completion over a system prompt and a user prompt and
// returns the text of the first choice.
func (t *Typhoon_Model) Complete(ctx context.Context, systemPrompt, prompt string) (string, error) {
	modelToUse := t.Model
	if modelToUse == "" {
		modelToUse = DefaultModel
	}

	messages := []message{}
	if systemPrompt != "" {
		messages = append(messages, message{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, message{Role: "user", Content: prompt})

	requestBody := request{
		Model:       modelToUse,
		Messages:    messages,
		Temperature: t.Temperature,
		MaxTokens:   t.MaxTokens,
	}

	jsonBytes, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	baseURL := t.BaseURL
	if baseURL == "" {
		baseURL = TyphoonBaseURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL, bytes.NewReader(jsonBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}

	apiKeyEnv := t.APIKeyEnv
	if apiKeyEnv == "" {
		apiKeyEnv = "TYPHOON_API_KEY"
	}
	req.Header.Set("Authorization", "Bearer "+os.Getenv(apiKeyEnv))
	req.Header.Set("Content-Type", "application/json")

	timeout := t.HTTPTimeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			return "", fmt.Errorf("Typhoon API error: %s (type: %s)", errResp.Error.Message, errResp.Error.Type)
		}
		return "", fmt.Errorf("Typhoon API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no choices in Typhoon response")
	}
	return parsed.Choices[0].Message.Content, nil
}
