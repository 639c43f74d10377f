package database

import (
	"context"
	"lifehub/models"
)

// ==================== TRANSACTION OPERATIONS ====================

const transactionColumns = `id, user_id, amount, description, category, date, is_income`

func (r *Repository) GetTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	return selectAll[models.Transaction](ctx, r.db, `SELECT `+transactionColumns+` FROM transactions WHERE user_id = ? ORDER BY date DESC, id DESC`, userID)
}

func (r *Repository) GetTransaction(ctx context.Context, transactionID int64) (*models.Transaction, error) {
	return getOne[models.Transaction](ctx, r.db, `SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, transactionID)
}

func (r *Repository) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO transactions (user_id, amount, description, category, date, is_income)
		VALUES (:user_id, :amount, :description, :category, :date, :is_income)
	`, t)
	if err != nil {
		return err
	}
	t.ID, err = res.LastInsertId()
	return err
}

func (r *Repository) UpdateTransaction(ctx context.Context, t *models.Transaction) error {
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE transactions SET
			amount = :amount,
			description = :description,
			category = :category,
			date = :date,
			is_income = :is_income
		WHERE id = :id
	`, t)
	return err
}

func (r *Repository) DeleteTransaction(ctx context.Context, transactionID int64) (bool, error) {
	return r.deleteOwned(ctx, "transactions", transactionID)
}
