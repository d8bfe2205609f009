package runlog

import "time"

// Status describes the lifecycle of one recorded run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Run is one pipeline invocation as recorded in the log.
type Run struct {
	ID             string
	Source         string
	Language       string
	Merged         bool
	Transliterated bool
	Formats        []string
	Artifacts      []string
	Warnings       []string
	Status         Status
	ErrorMessage   string
	CreatedAt      time.Time
	FinishedAt     time.Time
}

// Finished reports whether the run has reached a terminal status.
func (r *Run) Finished() bool {
	return r.Status == StatusCompleted || r.Status == StatusFailed
}
