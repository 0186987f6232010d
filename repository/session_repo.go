package repository

import (
	"context"
	"errors"
	"time"

	"dalshop-gateway/dal"
	"dalshop-gateway/models"
	"dalshop-gateway/utils"
	"dalshop-gateway/utils/logger"
)

// SessionRepository persists sessions in DynamoDB. Token and identity are the
// two stored fields of each record; they are written together and cleared
// together, never patched independently after commit.
type SessionRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *SessionRepository {
	return &SessionRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *SessionRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_sessions"
}

// Create stores a brand new session and assigns its ID.
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) (*models.Session, error) {
	now := time.Now()
	session.ID = utils.GenerateUUID()
	session.CreatedAt = now
	session.UpdatedAt = now

	if err := r.db.PutItem(ctx, r.tableName(), session); err != nil {
		r.logger.Errorf("Failed to create session: %v", err)
		return nil, err
	}

	r.logger.Debugf("Session created: %s", session.ID)
	return session, nil
}

// Get loads a session by ID. A missing record is returned as (nil, nil): an
// unknown session cookie is the same as being logged out, not an error.
func (r *SessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	if id == "" {
		return nil, nil
	}

	session := &models.Session{}
	err := r.db.GetItem(ctx, r.tableName(), "id", id, session)
	if err != nil {
		if errors.Is(err, dal.ErrItemNotFound) {
			return nil, nil
		}
		r.logger.Errorf("Failed to get session %s: %v", id, err)
		return nil, err
	}
	if session.ID == "" {
		return nil, nil
	}
	return session, nil
}

// Save replaces the stored session wholesale.
func (r *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	session.UpdatedAt = time.Now()
	if err := r.db.PutItem(ctx, r.tableName(), session); err != nil {
		r.logger.Errorf("Failed to save session %s: %v", session.ID, err)
		return err
	}
	return nil
}

// Clear removes the session record, dropping token and identity together.
// Clearing an absent session succeeds, which keeps logout idempotent.
func (r *SessionRepository) Clear(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := r.db.DeleteItem(ctx, r.tableName(), "id", id); err != nil {
		r.logger.Errorf("Failed to clear session %s: %v", id, err)
		return err
	}
	r.logger.Debugf("Session cleared: %s", id)
	return nil
}

// Invalidate drops a session whose token came back 401 from the backend.
// Same effect as Clear; named separately so the resource clients read right.
func (r *SessionRepository) Invalidate(ctx context.Context, id string) error {
	return r.Clear(ctx, id)
}

// All returns every stored session. Used by the reaper.
func (r *SessionRepository) All(ctx context.Context) ([]*models.Session, error) {
	var sessions []*models.Session
	if err := r.db.Scan(ctx, r.tableName(), &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
