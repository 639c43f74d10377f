package session

import (
	"context"
	"database/sql"
	"errors"
	"lifehub/models"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// touchInterval limits how often LastUsedAt is written back for an active session.
const touchInterval = 5 * time.Minute

// Store keeps sessions in the sessions table with a read-through cache in front.
type Store struct {
	db  *sqlx.DB
	ttl time.Duration

	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewStore(db *sqlx.DB, ttl time.Duration) *Store {
	return &Store{
		db:       db,
		ttl:      ttl,
		sessions: make(map[string]*models.Session),
	}
}

func (s *Store) Create(ctx context.Context, userID int64) (*models.Session, error) {
	now := time.Now().UTC()
	session := &models.Session{
		ID:         uuid.New().String(),
		UserID:     userID,
		ExpiresAt:  now.Add(s.ttl),
		CreatedAt:  now,
		LastUsedAt: now,
	}

	if _, err := s.db.NamedExecContext(ctx, `
		INSERT INTO sessions (id, user_id, expires_at, created_at, last_used_at)
		VALUES (:id, :user_id, :expires_at, :created_at, :last_used_at)
	`, session); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session, nil
}

// Get returns the session, or nil when it does not exist or has expired.
func (s *Store) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	s.mu.RLock()
	session, cached := s.sessions[sessionID]
	s.mu.RUnlock()

	if !cached {
		var loaded models.Session
		err := s.db.GetContext(ctx, &loaded, `
			SELECT id, user_id, expires_at, created_at, last_used_at
			FROM sessions WHERE id = ?
		`, sessionID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		session = &loaded

		// key by the id read from the database; the caller's string may alias a request buffer
		s.mu.Lock()
		s.sessions[session.ID] = session
		s.mu.Unlock()
	}

	if time.Now().After(session.ExpiresAt) {
		return nil, nil
	}
	return session, nil
}

// Touch records activity on a session, writing through at most once per touchInterval.
func (s *Store) Touch(ctx context.Context, session *models.Session) error {
	now := time.Now().UTC()

	s.mu.Lock()
	stale := now.Sub(session.LastUsedAt) >= touchInterval
	if stale {
		session.LastUsedAt = now
	}
	s.mu.Unlock()

	if !stale {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `UPDATE sessions SET last_used_at = ? WHERE id = ?`, now, session.ID)
	return err
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, sessionID)
	return err
}

// CleanupExpired removes expired sessions and reports how many rows were deleted.
func (s *Store) CleanupExpired(ctx context.Context) (int64, error) {
	now := time.Now()

	s.mu.Lock()
	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// StartCleanupRoutine purges expired sessions every interval until ctx is done.
func (s *Store) StartCleanupRoutine(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := s.CleanupExpired(ctx)
				if err != nil {
					slog.Error("Session cleanup failed", "error", err)
					continue
				}
				if n > 0 {
					slog.Info("Expired sessions removed", "count", n)
				}
			}
		}
	}()
}
