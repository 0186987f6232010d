package models

import (
	"sync"
	"time"
)

// ReaperConfig configures the background session reaper.
type ReaperConfig struct {
	CronSchedule string
	SessionTTL   time.Duration
	Environment  string
	RunOnce      bool
}

// ReaperResult summarizes one reap pass over the sessions table.
type ReaperResult struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Scanned    int       `json:"scanned"`
	Deleted    int       `json:"deleted"`
	Errors     []string  `json:"errors,omitempty"`
}

// Worker holds the reaper's runtime state.
type Worker struct {
	Config     *ReaperConfig
	LastResult *ReaperResult
	Running    bool
	Mutex      sync.Mutex
}
