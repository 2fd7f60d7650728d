package rag

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// ReingestScheduler re-ingests the knowledge directory on a cron
// schedule so edits to the PDF set show up without a restart.
type ReingestScheduler struct {
	kb        *KnowledgeBase
	dir       string
	scheduler *cron.Cron
	Logger    *log.Logger
}

// NewReingestScheduler wires a scheduler for the given knowledge base
// and directory.
func NewReingestScheduler(kb *KnowledgeBase, dir string, logger *log.Logger) *ReingestScheduler {
	return &ReingestScheduler{
		kb:        kb,
		dir:       dir,
		scheduler: cron.New(),
		Logger:    logger,
	}
}

// Start registers the cron spec (e.g. "0 3 * * *" for 3am daily) and
// begins running.
func (rs *ReingestScheduler) Start(spec string) error {
	_, err := rs.scheduler.AddFunc(spec, func() {
		rs.Logger.Printf("Scheduled re-ingest of %s starting", rs.dir)
		if err := rs.kb.IngestDirectory(context.Background(), rs.dir); err != nil {
			rs.Logger.Printf("Scheduled re-ingest failed: %v", err)
			return
		}
		rs.Logger.Printf("Scheduled re-ingest complete, %d chunks stored", rs.kb.Count())
	})
	if err != nil {
		return fmt.Errorf("invalid re-ingest schedule %q: %w", spec, err)
	}

	rs.scheduler.Start()
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (rs *ReingestScheduler) Stop() {
	<-rs.scheduler.Stop().Done()
}
