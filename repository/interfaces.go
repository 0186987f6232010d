package repository

import (
	"context"

	"dalshop-gateway/models"
)

// SessionRepositoryInterface defines the contract for session persistence
type SessionRepositoryInterface interface {
	Create(ctx context.Context, session *models.Session) (*models.Session, error)
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Clear(ctx context.Context, id string) error
	Invalidate(ctx context.Context, id string) error
	All(ctx context.Context) ([]*models.Session, error)
}
