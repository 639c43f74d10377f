package database

import (
	"context"
	"fmt"
	"lifehub/models"
	"time"

	"github.com/jmoiron/sqlx"
)

// ==================== WIDGET OPERATIONS ====================

const widgetColumns = `id, user_id, type, position, config, created_at, updated_at`

// GetWidgets returns a user's widgets in layout order
func (r *Repository) GetWidgets(ctx context.Context, userID int64) ([]models.Widget, error) {
	return selectAll[models.Widget](ctx, r.db, `
		SELECT `+widgetColumns+`
		FROM widgets
		WHERE user_id = ?
		ORDER BY position ASC, id ASC
	`, userID)
}

// GetWidget retrieves a widget by ID
func (r *Repository) GetWidget(ctx context.Context, widgetID int64) (*models.Widget, error) {
	return getOne[models.Widget](ctx, r.db, `SELECT `+widgetColumns+` FROM widgets WHERE id = ?`, widgetID)
}

// CreateWidget appends a widget after the user's last position
func (r *Repository) CreateWidget(ctx context.Context, widget *models.Widget) error {
	now := time.Now().UTC()
	widget.CreatedAt = now
	widget.UpdatedAt = now
	if widget.Config == nil {
		widget.Config = models.JSONMap{}
	}

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		var next int
		if err := tx.GetContext(ctx, &next, `
			SELECT COALESCE(MAX(position) + 1, 0) FROM widgets WHERE user_id = ?
		`, widget.UserID); err != nil {
			return fmt.Errorf("next widget position: %w", err)
		}
		widget.Position = next

		res, err := tx.ExecContext(ctx, `
			INSERT INTO widgets (user_id, type, position, config, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, widget.UserID, widget.Type, widget.Position, widget.Config, widget.CreatedAt, widget.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert widget: %w", err)
		}
		widget.ID, err = res.LastInsertId()
		return err
	})
}

// UpdateWidget writes type and config. Position is owned by SetWidgetPositions.
func (r *Repository) UpdateWidget(ctx context.Context, widget *models.Widget) (bool, error) {
	widget.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		UPDATE widgets SET
			type = ?,
			config = ?,
			updated_at = ?
		WHERE id = ?
	`, widget.Type, widget.Config, widget.UpdatedAt, widget.ID)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// DeleteWidget removes a widget without renumbering the remaining ones
func (r *Repository) DeleteWidget(ctx context.Context, widgetID int64) (bool, error) {
	return r.deleteOwned(ctx, "widgets", widgetID)
}

// SetWidgetPositions assigns position i to orderedIDs[i] in a single transaction.
// Every id must belong to userID; otherwise nothing is written and ErrRowMismatch is returned.
func (r *Repository) SetWidgetPositions(ctx context.Context, userID int64, orderedIDs []int64) error {
	now := time.Now().UTC()
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		stmt, err := tx.PreparexContext(ctx, `
			UPDATE widgets SET position = ?, updated_at = ?
			WHERE id = ? AND user_id = ?
		`)
		if err != nil {
			return fmt.Errorf("prepare widget reorder: %w", err)
		}
		defer stmt.Close()

		for i, id := range orderedIDs {
			res, err := stmt.ExecContext(ctx, i, now, id, userID)
			if err != nil {
				return fmt.Errorf("update widget %d position: %w", id, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			if n != 1 {
				return fmt.Errorf("widget %d: %w", id, ErrRowMismatch)
			}
		}
		return nil
	})
}
