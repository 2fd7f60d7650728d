package models

// Model_Response is one completion from a chat model, normalized across
// backends: the text body plus whatever structured tool calls the backend
// reported. Text-fallback extraction happens later, on top of this.
type Model_Response struct {
	Text       string      `json:"text"`
	Tool_Calls []Tool_Call `json:"tool_calls,omitempty"`
}

// AssistantMessage converts the completion into its transcript entry.
func (r Model_Response) AssistantMessage() Chat_Message {
	return Chat_Message{
		Role:       Role_Assistant,
		Content:    r.Text,
		Tool_Calls: r.Tool_Calls,
	}
}
