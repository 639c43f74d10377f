package database

import (
	"context"
	"lifehub/models"
)

// ==================== JOURNAL OPERATIONS ====================

const journalColumns = `id, user_id, content, mood, date`

func (r *Repository) GetJournalEntries(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	return selectAll[models.JournalEntry](ctx, r.db, `SELECT `+journalColumns+` FROM journal_entries WHERE user_id = ? ORDER BY date DESC, id DESC`, userID)
}

func (r *Repository) GetJournalEntry(ctx context.Context, entryID int64) (*models.JournalEntry, error) {
	return getOne[models.JournalEntry](ctx, r.db, `SELECT `+journalColumns+` FROM journal_entries WHERE id = ?`, entryID)
}

func (r *Repository) CreateJournalEntry(ctx context.Context, entry *models.JournalEntry) error {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO journal_entries (user_id, content, mood, date)
		VALUES (:user_id, :content, :mood, :date)
	`, entry)
	if err != nil {
		return err
	}
	entry.ID, err = res.LastInsertId()
	return err
}

func (r *Repository) UpdateJournalEntry(ctx context.Context, entry *models.JournalEntry) error {
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE journal_entries SET
			content = :content,
			mood = :mood,
			date = :date
		WHERE id = :id
	`, entry)
	return err
}

func (r *Repository) DeleteJournalEntry(ctx context.Context, entryID int64) (bool, error) {
	return r.deleteOwned(ctx, "journal_entries", entryID)
}
