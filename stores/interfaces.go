package stores

import (
	"encoding/json"
	"log"

	"gorm.io/gorm"

	"github.com/Gun249/Winner-Bike/models"
)

// Run is the persisted record of one chat interaction.
type Run struct {
	gorm.Model
	RunID          string `gorm:"uniqueIndex;not null"`
	ConversationID string `gorm:"index"`
	Question       string `gorm:"type:text"`
	Answer         string `gorm:"type:text"`
	State          string `gorm:"not null"` // "done", "loop_exhausted"
	Iterations     int    `gorm:"default:0"`
	Messages       []RunMessage `gorm:"foreignKey:RunID;references:RunID"`
}

// RunMessage is one transcript entry of a run, stored in sequence order.
type RunMessage struct {
	gorm.Model
	RunID      string `gorm:"index;not null"`
	Sequence   int    `gorm:"not null"`
	Role       string `gorm:"not null"` // "system", "user", "assistant", "tool"
	Content    string `gorm:"type:text"`
	ToolName   string
	ToolCallID string
	// ToolCallsJSON holds the marshaled tool calls of an assistant turn.
	ToolCallsJSON string `gorm:"type:text"`
}

// NewRunMessage converts a transcript message into its stored form.
func NewRunMessage(runID string, sequence int, msg models.Chat_Message) RunMessage {
	rm := RunMessage{
		RunID:      runID,
		Sequence:   sequence,
		Role:       msg.Role,
		Content:    msg.Content,
		ToolName:   msg.Name,
		ToolCallID: msg.Tool_Call_ID,
	}
	if len(msg.Tool_Calls) > 0 {
		data, err := json.Marshal(msg.Tool_Calls)
		if err != nil {
			log.Printf("Error marshalling tool calls for DB storage (RunID: %s): %v", runID, err)
		} else {
			rm.ToolCallsJSON = string(data)
		}
	}
	return rm
}

// RunInfo holds basic run metadata for listing
type RunInfo struct {
	RunID          string
	ConversationID string
	Question       string
	Answer         string
	State          string
	Iterations     int
	CreatedAt      string
}

// RunStore interface for abstracting database operations
type RunStore interface {
	// Run operations
	RecordRun(run Run, messages []RunMessage) error
	FetchRun(runID string) (Run, []RunMessage, error)
	ListRuns(conversationID string, limit int) ([]RunInfo, error)

	// Connection management
	Connect() error
	Close() error

	// Health check
	Ping() error
}

// StoreConfig holds configuration for database stores
type StoreConfig struct {
	Type       string            `json:"type"`       // "sqlite", "postgres"
	Connection string            `json:"connection"` // connection string
	Options    map[string]string `json:"options"`    // additional options
}

// NewStoreConfig creates a new store configuration
func NewStoreConfig(storeType, connection string) *StoreConfig {
	return &StoreConfig{
		Type:       storeType,
		Connection: connection,
		Options:    make(map[string]string),
	}
}

// WithOption adds an option to the store configuration
func (c *StoreConfig) WithOption(key, value string) *StoreConfig {
	c.Options[key] = value
	return c
}
