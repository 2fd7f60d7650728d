package sessions

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/Gun249/Winner-Bike/models"
)

var toolCallPattern = regexp.MustCompile(`(?s)<tool_call>(.*?)</tool_call>`)

// ExtractionWarning records why a text-based tool call could not be
// recovered. The turn still proceeds; the text is treated as prose.
type ExtractionWarning struct {
	Reason  string
	Snippet string
}

func (w *ExtractionWarning) String() string {
	return fmt.Sprintf("tool call extraction: %s", w.Reason)
}

type fallbackPayload struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

// Extract_Tool_Calls pulls the tool calls out of a model response.
// Structured calls from the API are trusted as-is. When the model
// instead emits a <tool_call>{...}</tool_call> block in its text, the
// first block is parsed and returned with the fixed fallback call id.
// A malformed block yields no calls and a warning.
func Extract_Tool_Calls(resp models.Model_Response) ([]models.Tool_Call, *ExtractionWarning) {
	if len(resp.Tool_Calls) > 0 {
		return resp.Tool_Calls, nil
	}

	if !strings.Contains(resp.Text, "<tool_call>") {
		return nil, nil
	}

	match := toolCallPattern.FindStringSubmatch(resp.Text)
	if match == nil {
		return nil, &ExtractionWarning{
			Reason:  "opening tag without a closing tag",
			Snippet: snippet(resp.Text),
		}
	}

	jsonStr := strings.TrimSpace(match[1])
	var payload fallbackPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, &ExtractionWarning{
			Reason:  fmt.Sprintf("invalid JSON payload: %v", err),
			Snippet: snippet(jsonStr),
		}
	}
	if payload.Name == "" {
		return nil, &ExtractionWarning{
			Reason:  "payload missing tool name",
			Snippet: snippet(jsonStr),
		}
	}

	args := payload.Arguments
	if args == nil {
		args = map[string]interface{}{}
	}

	return []models.Tool_Call{{
		ID:     models.Fallback_Call_ID,
		Name:   payload.Name,
		Args:   args,
		Source: models.Tool_Call_Text_Fallback,
	}}, nil
}

func snippet(s string) string {
	const max = 120
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
