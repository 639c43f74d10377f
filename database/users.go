package database

import (
	"context"
	"fmt"
	"lifehub/models"
	"time"

	"github.com/jmoiron/sqlx"
)

// ==================== USER OPERATIONS ====================

const userColumns = `id, username, password_hash, display_name, email, google_id, preferences, created_at`

// GetUser retrieves a user by ID
func (r *Repository) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	return getOne[models.User](ctx, r.db, `SELECT `+userColumns+` FROM users WHERE id = ?`, userID)
}

// GetUserByUsername retrieves a user by login name
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return getOne[models.User](ctx, r.db, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
}

// GetUserByGoogleID retrieves a user linked to a Google account
func (r *Repository) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	return getOne[models.User](ctx, r.db, `SELECT `+userColumns+` FROM users WHERE google_id = ?`, googleID)
}

// CreateUserWithWidgets inserts the user and their starting dashboard layout in one transaction.
func (r *Repository) CreateUserWithWidgets(ctx context.Context, user *models.User, widgets []models.WidgetType) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if user.CreatedAt.IsZero() {
			user.CreatedAt = time.Now().UTC()
		}
		if user.Preferences == nil {
			user.Preferences = models.JSONMap{}
		}

		res, err := tx.ExecContext(ctx, `
			INSERT INTO users (username, password_hash, display_name, email, google_id, preferences, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, user.Username, user.PasswordHash, user.DisplayName, user.Email, user.GoogleID, user.Preferences, user.CreatedAt)
		if isUniqueViolation(err) {
			return fmt.Errorf("insert user %q: %w", user.Username, ErrDuplicate)
		}
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		if user.ID, err = res.LastInsertId(); err != nil {
			return err
		}

		for i, widgetType := range widgets {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO widgets (user_id, type, position, config, created_at, updated_at)
				VALUES (?, ?, ?, '{}', ?, ?)
			`, user.ID, widgetType, i, user.CreatedAt, user.CreatedAt); err != nil {
				return fmt.Errorf("insert default widget: %w", err)
			}
		}
		return nil
	})
}

// UpdateUserPreferences replaces the user's preferences object
func (r *Repository) UpdateUserPreferences(ctx context.Context, userID int64, preferences models.JSONMap) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET preferences = ? WHERE id = ?`, preferences, userID)
	return err
}
