package database

import (
	"context"
	"lifehub/models"
)

// ==================== TASK OPERATIONS ====================

const taskColumns = `id, user_id, title, description, due_date, completed, category, priority`

func (r *Repository) GetTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	return selectAll[models.Task](ctx, r.db, `SELECT `+taskColumns+` FROM tasks WHERE user_id = ? ORDER BY id ASC`, userID)
}

func (r *Repository) GetTask(ctx context.Context, taskID int64) (*models.Task, error) {
	return getOne[models.Task](ctx, r.db, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, taskID)
}

func (r *Repository) CreateTask(ctx context.Context, task *models.Task) error {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO tasks (user_id, title, description, due_date, completed, category, priority)
		VALUES (:user_id, :title, :description, :due_date, :completed, :category, :priority)
	`, task)
	if err != nil {
		return err
	}
	task.ID, err = res.LastInsertId()
	return err
}

func (r *Repository) UpdateTask(ctx context.Context, task *models.Task) error {
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE tasks SET
			title = :title,
			description = :description,
			due_date = :due_date,
			completed = :completed,
			category = :category,
			priority = :priority
		WHERE id = :id
	`, task)
	return err
}

func (r *Repository) DeleteTask(ctx context.Context, taskID int64) (bool, error) {
	return r.deleteOwned(ctx, "tasks", taskID)
}
