package models

import "context"

// Tool_Call_Source records which path produced a tool call request.
type Tool_Call_Source string

const (
	// Tool_Call_Native means the model used the structured tool-calling
	// field. This is the trusted path.
	Tool_Call_Native Tool_Call_Source = "native"
	// Tool_Call_Text_Fallback means the call was recovered from inline
	// <tool_call> markup in the text body.
	Tool_Call_Text_Fallback Tool_Call_Source = "text_fallback"
)

// Fallback_Call_ID is the deterministic placeholder id assigned to calls
// synthesized from text markup, where no true id exists.
const Fallback_Call_ID = "call_fallback_0"

// Tool_Call is the canonical tool call request shape. Both the native
// structured path and the text-fallback path normalize to this before
// anything else sees the call.
type Tool_Call struct {
	ID     string                 `json:"id"`
	Name   string                 `json:"name"`
	Args   map[string]interface{} `json:"args"`
	Source Tool_Call_Source       `json:"source"`
}

// KnowledgeQuerier is the knowledge-base handle tools receive. mode selects
// the retrieval strategy ("global" or "local").
type KnowledgeQuerier interface {
	Query(ctx context.Context, query string, mode string) (string, error)
}

// Tool_Context carries the request-scoped data a tool handler may need.
// Passing it explicitly (instead of closing over it) keeps the registry
// stateless and safe to share across concurrent requests.
type Tool_Context struct {
	// Inventory is the stock snapshot supplied with the current request.
	Inventory []Inventory_Item
	// Knowledge is the shared knowledge-base handle.
	Knowledge KnowledgeQuerier
	// ExactStockMatch switches the stock lookup from substring matching
	// (default) to exact case-insensitive equality.
	ExactStockMatch bool
}

// ToolHandler executes one tool call. Handlers must treat a missing
// argument as their own problem to tolerate or report; the executor does
// not enforce the parameter schema.
type ToolHandler func(ctx context.Context, tc Tool_Context, args map[string]interface{}) (string, error)

// FunctionDeclaration describes one tool offered to the model: its schema
// payload plus the handler invoked when the model requests it.
type FunctionDeclaration struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  Parameters  `json:"parameters"`
	Handler     ToolHandler `json:"-"`
}

// Parameters defines the JSON Schema for function parameters
type Parameters struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Required   []string               `json:"required"`
}

// StringArg extracts a string argument by name, tolerating absence.
func StringArg(args map[string]interface{}, key string) string {
	if args == nil {
		return ""
	}
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// IntArg extracts an integer argument by name. JSON numbers unmarshal as
// float64, so both representations are accepted.
func IntArg(args map[string]interface{}, key string, fallback int) int {
	if args == nil {
		return fallback
	}
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return fallback
}
