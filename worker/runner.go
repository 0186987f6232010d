package worker

import (
	"context"
	"fmt"

	"dalshop-gateway/models"
	"dalshop-gateway/repository"
	"dalshop-gateway/utils/logger"
)

// Service wraps the session reaper for easy integration
type Service struct {
	worker *Worker
	logger logger.Logger
}

// NewService creates a new reaper service
func NewService(ctx context.Context, cfg *models.Config, sessions repository.SessionRepositoryInterface, log logger.Logger) (*Service, error) {
	worker, err := NewWorker(ctx, cfg, sessions, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session reaper: %w", err)
	}

	return &Service{
		worker: worker,
		logger: log,
	}, nil
}

// StartInBackground starts the session reaper in the background
func (s *Service) StartInBackground() error {
	s.logger.Info("Starting session reaper service in background")

	go func() {
		if err := s.worker.Start(); err != nil {
			s.logger.Errorf("Session reaper failed to start: %v", err)
		}
	}()

	return nil
}

// Stop stops the session reaper service
func (s *Service) Stop() error {
	s.logger.Info("Stopping session reaper service")
	return s.worker.Stop()
}

// GetStatus returns the outcome of the most recent reap pass
func (s *Service) GetStatus() *models.ReaperResult {
	return s.worker.LastResult()
}
