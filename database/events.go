package database

import (
	"context"
	"lifehub/models"
)

// ==================== EVENT OPERATIONS ====================

const eventColumns = `id, user_id, title, description, start_date, end_date, location, color`

func (r *Repository) GetEvents(ctx context.Context, userID int64) ([]models.Event, error) {
	return selectAll[models.Event](ctx, r.db, `SELECT `+eventColumns+` FROM events WHERE user_id = ? ORDER BY start_date ASC, id ASC`, userID)
}

func (r *Repository) GetEvent(ctx context.Context, eventID int64) (*models.Event, error) {
	return getOne[models.Event](ctx, r.db, `SELECT `+eventColumns+` FROM events WHERE id = ?`, eventID)
}

func (r *Repository) CreateEvent(ctx context.Context, event *models.Event) error {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO events (user_id, title, description, start_date, end_date, location, color)
		VALUES (:user_id, :title, :description, :start_date, :end_date, :location, :color)
	`, event)
	if err != nil {
		return err
	}
	event.ID, err = res.LastInsertId()
	return err
}

func (r *Repository) UpdateEvent(ctx context.Context, event *models.Event) error {
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE events SET
			title = :title,
			description = :description,
			start_date = :start_date,
			end_date = :end_date,
			location = :location,
			color = :color
		WHERE id = :id
	`, event)
	return err
}

func (r *Repository) DeleteEvent(ctx context.Context, eventID int64) (bool, error) {
	return r.deleteOwned(ctx, "events", eventID)
}
