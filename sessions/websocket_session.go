package sessions

import (
	"context"
	"log"
	"time"

	"github.com/Gun249/Winner-Bike/models"
)

// WebSocketSession runs chat interactions over a live connection. Each
// inbound frame is one user turn; tool executions are streamed to the
// client as they happen, followed by the final answer frame.
type WebSocketSession struct {
	Session *ChatSession
	Writer  *WebSocketWriter
	Logger  *log.Logger
}

// wsInbound is the frame a client sends to start a turn.
type wsInbound struct {
	Message     string                   `json:"message"`
	Inventory   []models.Inventory_Item  `json:"inventory"`
	ChatHistory []models.History_Message `json:"chat_history"`
}

// HandleConnection reads turns until the client disconnects or ctx is
// cancelled.
func (ws *WebSocketSession) HandleConnection(ctx context.Context) {
	ws.Session.OnToolResult = func(outcome ToolOutcome) {
		event := WebSocketToolEvent{
			Type:       "tool_result",
			ToolName:   outcome.Call.Name,
			ToolCallID: outcome.Call.ID,
			Result:     outcome.Output,
		}
		if err := ws.Writer.WriteResponse(event); err != nil {
			ws.Logger.Printf("Error writing tool event: %v", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		var frame wsInbound
		if err := ws.Writer.Conn.ReadJSON(&frame); err != nil {
			ws.Logger.Printf("WebSocket read ended: %v", err)
			return
		}
		if frame.Message == "" {
			if err := ws.Writer.WriteError("message is required"); err != nil {
				ws.Logger.Printf("Error writing error frame: %v", err)
			}
			continue
		}

		ws.Writer.StartTime = time.Now()
		ws.Writer.FirstTokenTime = nil
		ws.Writer.FirstTokenLogged = false

		result := ws.Session.RunChatInteraction(ctx, models.Chat_Request{
			Message:      frame.Message,
			Inventory:    frame.Inventory,
			Chat_History: frame.ChatHistory,
		})

		final := WebSocketFinalMessage{
			Type:       "response",
			Response:   result.Answer,
			State:      string(result.State),
			Iterations: result.Iterations,
		}
		if err := ws.Writer.WriteResponse(final); err != nil {
			ws.Logger.Printf("Error writing final frame: %v", err)
			return
		}
		if err := ws.Writer.WriteDone(); err != nil {
			ws.Logger.Printf("Error writing done frame: %v", err)
			return
		}
	}
}
