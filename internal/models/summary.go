package models

import "time"

// RunStatus represents the terminal state of one run.
type RunStatus string

const (
	RunStatusCompleted RunStatus = "COMPLETED"
	RunStatusFailed    RunStatus = "FAILED"
)

// RunSummary aggregates the outcome of one end-to-end run for logging and
// scheduler history.
type RunSummary struct {
	RunDate       string
	TotalScraped  int
	NewCount      int
	UpdatedCount  int
	EmailsSent    int
	Status        RunStatus
	ErrorMessages []string
	Duration      time.Duration
}

// GetDefaultRunSummary returns a RunSummary initialized for a run that has
// not produced results yet.
func GetDefaultRunSummary() RunSummary {
	return RunSummary{
		Status:        RunStatusCompleted,
		ErrorMessages: []string{},
	}
}
