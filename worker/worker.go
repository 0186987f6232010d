package worker

import (
	"context"
	"fmt"
	"time"

	"dalshop-gateway/models"
	"dalshop-gateway/repository"
	"dalshop-gateway/utils/logger"

	"github.com/robfig/cron"
)

// Worker is the background session reaper. It scans the sessions table on a
// cron schedule and deletes sessions whose last activity is older than the
// configured TTL. The reap pass is idempotent; deleting an already-deleted
// session is a no-op.
type Worker struct {
	Worker   *models.Worker
	sessions repository.SessionRepositoryInterface
	logger   logger.Logger
	cronJob  *cron.Cron
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewWorker(ctx context.Context, cfg *models.Config, sessions repository.SessionRepositoryInterface, log logger.Logger) (*Worker, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session repository cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	reaperConfig := &models.ReaperConfig{
		CronSchedule: cfg.ReaperSchedule,
		SessionTTL:   cfg.SessionTTL,
		Environment:  cfg.AppEnv,
	}
	if err := validateReaperConfig(reaperConfig); err != nil {
		return nil, fmt.Errorf("invalid reaper configuration: %w", err)
	}

	workerCtx, cancel := context.WithCancel(ctx)

	return &Worker{
		Worker:   &models.Worker{Config: reaperConfig},
		sessions: sessions,
		logger:   log,
		cronJob:  cron.New(),
		ctx:      workerCtx,
		cancel:   cancel,
	}, nil
}

func validateReaperConfig(cfg *models.ReaperConfig) error {
	if cfg.CronSchedule == "" {
		return fmt.Errorf("cron schedule cannot be empty")
	}
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got %v", cfg.SessionTTL)
	}
	return nil
}

// Start registers the reap pass with the cron scheduler and runs one pass
// immediately so stale sessions do not survive a restart until the first tick.
func (w *Worker) Start() error {
	w.Worker.Mutex.Lock()
	if w.Worker.Running {
		w.Worker.Mutex.Unlock()
		return fmt.Errorf("session reaper is already running")
	}
	w.Worker.Running = true
	w.Worker.Mutex.Unlock()

	w.logger.Infof("Starting session reaper with schedule %q and TTL %v",
		w.Worker.Config.CronSchedule, w.Worker.Config.SessionTTL)

	if err := w.cronJob.AddFunc(w.Worker.Config.CronSchedule, func() {
		w.runReapPass()
	}); err != nil {
		return fmt.Errorf("failed to schedule reap pass: %w", err)
	}

	w.runReapPass()
	if w.Worker.Config.RunOnce {
		return nil
	}

	w.cronJob.Start()
	return nil
}

// Stop halts the scheduler. An in-flight reap pass finishes on its own.
func (w *Worker) Stop() error {
	w.Worker.Mutex.Lock()
	defer w.Worker.Mutex.Unlock()

	if !w.Worker.Running {
		return nil
	}

	w.logger.Info("Stopping session reaper")
	w.cronJob.Stop()
	w.cancel()
	w.Worker.Running = false
	return nil
}

// runReapPass scans every session and deletes the expired ones. Individual
// delete failures are collected, not fatal; the next pass picks them up.
func (w *Worker) runReapPass() {
	result := &models.ReaperResult{StartedAt: time.Now().UTC()}

	sessions, err := w.sessions.All(w.ctx)
	if err != nil {
		w.logger.Errorf("Session reap pass failed to scan: %v", err)
		result.Errors = append(result.Errors, err.Error())
		result.FinishedAt = time.Now().UTC()
		w.recordResult(result)
		return
	}

	cutoff := time.Now().UTC().Add(-w.Worker.Config.SessionTTL)
	result.Scanned = len(sessions)

	for _, session := range sessions {
		if !session.UpdatedAt.Before(cutoff) {
			continue
		}
		if err := w.sessions.Clear(w.ctx, session.ID); err != nil {
			w.logger.Warnf("Failed to delete expired session %s: %v", session.ID, err)
			result.Errors = append(result.Errors, fmt.Sprintf("session %s: %v", session.ID, err))
			continue
		}
		result.Deleted++
	}

	result.FinishedAt = time.Now().UTC()
	w.recordResult(result)

	if result.Deleted > 0 || len(result.Errors) > 0 {
		w.logger.Infof("Session reap pass: scanned=%d deleted=%d errors=%d",
			result.Scanned, result.Deleted, len(result.Errors))
	}
}

func (w *Worker) recordResult(result *models.ReaperResult) {
	w.Worker.Mutex.Lock()
	defer w.Worker.Mutex.Unlock()
	w.Worker.LastResult = result
}

// LastResult returns the outcome of the most recent reap pass, nil before the
// first one completes.
func (w *Worker) LastResult() *models.ReaperResult {
	w.Worker.Mutex.Lock()
	defer w.Worker.Mutex.Unlock()
	return w.Worker.LastResult
}
