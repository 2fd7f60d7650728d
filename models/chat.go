package models

// Message roles used throughout a conversation transcript.
const (
	Role_System    = "system"
	Role_User      = "user"
	Role_Assistant = "assistant"
	Role_Tool      = "tool"
)

// Chat_Message is one entry of a conversation transcript. The transcript is
// append-only for the duration of a single orchestration run; callers supply
// prior history with each request instead of the server persisting it.
//
// Invariant: a Role_Tool message must carry the Tool_Call_ID of the
// assistant tool call that produced it, and an assistant message proposing N
// tool calls is followed by exactly N tool messages, one per call, in call
// order.
type Chat_Message struct {
	Role         string      `json:"role"`
	Content      string      `json:"content"`
	Tool_Calls   []Tool_Call `json:"tool_calls,omitempty"`   // assistant messages only
	Tool_Call_ID string      `json:"tool_call_id,omitempty"` // tool messages only
	Name         string      `json:"name,omitempty"`         // tool name, tool messages only
}

// SystemMessage builds a system-role transcript entry.
func SystemMessage(content string) Chat_Message {
	return Chat_Message{Role: Role_System, Content: content}
}

// UserMessage builds a user-role transcript entry.
func UserMessage(content string) Chat_Message {
	return Chat_Message{Role: Role_User, Content: content}
}

// ToolMessage builds the tool-role entry answering one tool call.
func ToolMessage(callID, toolName, content string) Chat_Message {
	return Chat_Message{
		Role:         Role_Tool,
		Content:      content,
		Tool_Call_ID: callID,
		Name:         toolName,
	}
}
