package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"lifehub/models"

	"github.com/jmoiron/sqlx"
)

// ==================== HABIT OPERATIONS ====================

const habitColumns = `id, user_id, name, description, frequency, streak`

func (r *Repository) GetHabits(ctx context.Context, userID int64) ([]models.Habit, error) {
	return selectAll[models.Habit](ctx, r.db, `SELECT `+habitColumns+` FROM habits WHERE user_id = ? ORDER BY id ASC`, userID)
}

func (r *Repository) GetHabit(ctx context.Context, habitID int64) (*models.Habit, error) {
	return getOne[models.Habit](ctx, r.db, `SELECT `+habitColumns+` FROM habits WHERE id = ?`, habitID)
}

func (r *Repository) CreateHabit(ctx context.Context, habit *models.Habit) error {
	if habit.Frequency == nil {
		habit.Frequency = models.StringList{}
	}
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO habits (user_id, name, description, frequency, streak)
		VALUES (:user_id, :name, :description, :frequency, :streak)
	`, habit)
	if err != nil {
		return err
	}
	habit.ID, err = res.LastInsertId()
	return err
}

func (r *Repository) UpdateHabit(ctx context.Context, habit *models.Habit) error {
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE habits SET
			name = :name,
			description = :description,
			frequency = :frequency
		WHERE id = :id
	`, habit)
	return err
}

func (r *Repository) DeleteHabit(ctx context.Context, habitID int64) (bool, error) {
	return r.deleteOwned(ctx, "habits", habitID)
}

// ==================== HABIT COMPLETION OPERATIONS ====================

// GetHabitCompletions returns completions for the given habits keyed by habit ID
func (r *Repository) GetHabitCompletions(ctx context.Context, habitIDs []int64) (map[int64][]models.HabitCompletion, error) {
	byHabit := make(map[int64][]models.HabitCompletion, len(habitIDs))
	if len(habitIDs) == 0 {
		return byHabit, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, habit_id, date
		FROM habit_completions
		WHERE habit_id IN (?)
		ORDER BY date DESC, id DESC
	`, habitIDs)
	if err != nil {
		return nil, err
	}

	completions, err := selectAll[models.HabitCompletion](ctx, r.db, r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	for _, c := range completions {
		byHabit[c.HabitID] = append(byHabit[c.HabitID], c)
	}
	return byHabit, nil
}

func (r *Repository) GetHabitCompletion(ctx context.Context, completionID int64) (*models.HabitCompletion, error) {
	return getOne[models.HabitCompletion](ctx, r.db, `SELECT id, habit_id, date FROM habit_completions WHERE id = ?`, completionID)
}

// CreateHabitCompletion records a completion and bumps the habit's streak
func (r *Repository) CreateHabitCompletion(ctx context.Context, completion *models.HabitCompletion) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO habit_completions (habit_id, date) VALUES (?, ?)
		`, completion.HabitID, completion.Date)
		if err != nil {
			return fmt.Errorf("insert habit completion: %w", err)
		}
		if completion.ID, err = res.LastInsertId(); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `UPDATE habits SET streak = streak + 1 WHERE id = ?`, completion.HabitID)
		return err
	})
}

// DeleteHabitCompletion removes a completion and decrements the streak, never below zero
func (r *Repository) DeleteHabitCompletion(ctx context.Context, completionID int64) (bool, error) {
	var deleted bool
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var habitID int64
		if err := tx.GetContext(ctx, &habitID, `SELECT habit_id FROM habit_completions WHERE id = ?`, completionID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM habit_completions WHERE id = ?`, completionID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE habits SET streak = streak - 1 WHERE id = ? AND streak > 0
		`, habitID); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return deleted, err
}
