package sessions

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Gun249/Winner-Bike/models"
)

// Model produces one chat completion over a full transcript. Backends
// live under models/; anything satisfying this can drive a session.
type Model interface {
	Model_Request(ctx context.Context, transcript []models.Chat_Message, tools []models.FunctionDeclaration) (models.Model_Response, error)
}

// Completer is a plain text completion backend without tool support,
// used for the refinement pass after the loop settles on a draft.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, prompt string) (string, error)
}

// LoopState tracks where a chat interaction is in its lifecycle.
type LoopState string

const (
	State_Awaiting_Completion LoopState = "awaiting_completion"
	State_Executing_Tools     LoopState = "executing_tools"
	State_Done                LoopState = "done"
	State_Loop_Exhausted      LoopState = "loop_exhausted"
)

// RunResult is the outcome of one full chat interaction.
type RunResult struct {
	Answer     string
	State      LoopState
	Iterations int
	Transcript []models.Chat_Message
	Warnings   []string
}

// WebSocketWriter serializes all writes to a single WebSocket connection.
type WebSocketWriter struct {
	Conn             *websocket.Conn
	Logger           *log.Logger
	StartTime        time.Time
	FirstTokenTime   *time.Time
	FirstTokenLogged bool
	mu               sync.Mutex
}

func (w *WebSocketWriter) WriteResponse(resp interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.FirstTokenLogged && w.FirstTokenTime == nil && !w.StartTime.IsZero() {
		now := time.Now()
		w.FirstTokenTime = &now
		w.Logger.Printf("Time to first response: %v", now.Sub(w.StartTime))
		w.FirstTokenLogged = true
	}
	return w.Conn.WriteJSON(resp)
}

func (w *WebSocketWriter) WriteError(message string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Conn.WriteJSON(map[string]string{"error": message})
}

func (w *WebSocketWriter) WriteDone() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Conn.WriteJSON(map[string]string{"type": "done"})
}

// WebSocketToolEvent reports a tool execution to the client mid-turn.
type WebSocketToolEvent struct {
	Type       string `json:"type"` // "tool_result"
	ToolName   string `json:"tool_name"`
	ToolCallID string `json:"tool_call_id"`
	Result     string `json:"result"`
}

// WebSocketFinalMessage carries the finished answer for a turn.
type WebSocketFinalMessage struct {
	Type       string `json:"type"` // "response"
	Response   string `json:"response"`
	State      string `json:"state"`
	Iterations int    `json:"iterations"`
}
