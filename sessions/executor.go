package sessions

import (
	"context"
	"fmt"

	"github.com/Gun249/Winner-Bike/models"
)

// ToolExecutionError is the typed failure recorded when a handler
// returns an error or panics. The customer never sees it; the tool
// message gets a safe stand-in string instead.
type ToolExecutionError struct {
	Tool     string
	Err      error
	Panicked bool
}

func (e *ToolExecutionError) Error() string {
	if e.Panicked {
		return fmt.Sprintf("tool %s panicked: %v", e.Tool, e.Err)
	}
	return fmt.Sprintf("tool %s failed: %v", e.Tool, e.Err)
}

func (e *ToolExecutionError) Unwrap() error { return e.Err }

// ToolOutcome is the result of executing (or skipping) one tool call.
type ToolOutcome struct {
	Call      models.Tool_Call
	Output    string
	Recovered *ToolExecutionError
	Skipped   bool
}

// executeToolCalls runs the calls sequentially in the order the model
// issued them. Unknown tools are skipped without disturbing their
// siblings. A failing or panicking handler is converted into the safe
// stand-in output so every executed call still gets its tool message.
func (s *ChatSession) executeToolCalls(ctx context.Context, calls []models.Tool_Call, inventory []models.Inventory_Item) []ToolOutcome {
	tc := models.Tool_Context{
		Inventory:       inventory,
		Knowledge:       s.Knowledge,
		ExactStockMatch: s.ExactStockMatch,
	}

	outcomes := make([]ToolOutcome, 0, len(calls))
	for _, call := range calls {
		decl, ok := s.Registry.Lookup(call.Name)
		if !ok {
			s.Logger.Printf("Unknown tool: %s (skipped)", call.Name)
			outcomes = append(outcomes, ToolOutcome{Call: call, Skipped: true})
			continue
		}

		output, recovered := s.runHandler(ctx, decl.Handler, tc, call)
		if recovered != nil {
			s.Logger.Printf("Tool error: %v", recovered)
			output = toolFailureMessage
		}
		outcome := ToolOutcome{Call: call, Output: output, Recovered: recovered}
		if s.OnToolResult != nil {
			s.OnToolResult(outcome)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func (s *ChatSession) runHandler(ctx context.Context, handler models.ToolHandler, tc models.Tool_Context, call models.Tool_Call) (output string, recovered *ToolExecutionError) {
	defer func() {
		if r := recover(); r != nil {
			recovered = &ToolExecutionError{
				Tool:     call.Name,
				Err:      fmt.Errorf("%v", r),
				Panicked: true,
			}
		}
	}()

	result, err := handler(ctx, tc, call.Args)
	if err != nil {
		return "", &ToolExecutionError{Tool: call.Name, Err: err}
	}
	return result, nil
}
