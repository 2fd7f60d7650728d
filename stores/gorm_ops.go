package stores

import (
	"fmt"

	"gorm.io/gorm"
)

// recordRun writes the run row and its transcript atomically.
func recordRun(db *gorm.DB, run Run, messages []RunMessage) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	if run.RunID == "" {
		return fmt.Errorf("run ID is required")
	}

	tx := db.Begin()
	if err := tx.Create(&run).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create run record: %w", err)
	}

	if len(messages) > 0 {
		if err := tx.CreateInBatches(messages, 100).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to create run messages: %w", err)
		}
	}

	return tx.Commit().Error
}

// fetchRun loads a run and its transcript in sequence order.
func fetchRun(db *gorm.DB, runID string) (Run, []RunMessage, error) {
	if db == nil {
		return Run{}, nil, fmt.Errorf("database connection is nil")
	}

	var run Run
	if err := db.Where("run_id = ?", runID).First(&run).Error; err != nil {
		return Run{}, nil, fmt.Errorf("failed to fetch run: %w", err)
	}

	var msgs []RunMessage
	if err := db.Where("run_id = ?", runID).Order("sequence ASC").Find(&msgs).Error; err != nil {
		return Run{}, nil, fmt.Errorf("failed to fetch run messages: %w", err)
	}

	return run, msgs, nil
}

// listRuns returns run metadata, newest first. An empty conversationID
// lists runs across all conversations.
func listRuns(db *gorm.DB, conversationID string, limit int) ([]RunInfo, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := db.Model(&Run{}).Order("created_at DESC")
	if conversationID != "" {
		query = query.Where("conversation_id = ?", conversationID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var runs []Run
	if err := query.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch runs: %w", err)
	}

	result := make([]RunInfo, len(runs))
	for i, r := range runs {
		result[i] = RunInfo{
			RunID:          r.RunID,
			ConversationID: r.ConversationID,
			Question:       r.Question,
			Answer:         r.Answer,
			State:          r.State,
			Iterations:     r.Iterations,
			CreatedAt:      r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return result, nil
}
