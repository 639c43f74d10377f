package database

import (
	"context"
	"lifehub/models"
)

// ==================== CONTACT OPERATIONS ====================

const contactColumns = `id, user_id, name, email, phone, birthday, notes, category`

func (r *Repository) GetContacts(ctx context.Context, userID int64) ([]models.Contact, error) {
	return selectAll[models.Contact](ctx, r.db, `SELECT `+contactColumns+` FROM contacts WHERE user_id = ? ORDER BY name COLLATE NOCASE ASC, id ASC`, userID)
}

func (r *Repository) GetContact(ctx context.Context, contactID int64) (*models.Contact, error) {
	return getOne[models.Contact](ctx, r.db, `SELECT `+contactColumns+` FROM contacts WHERE id = ?`, contactID)
}

func (r *Repository) CreateContact(ctx context.Context, contact *models.Contact) error {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO contacts (user_id, name, email, phone, birthday, notes, category)
		VALUES (:user_id, :name, :email, :phone, :birthday, :notes, :category)
	`, contact)
	if err != nil {
		return err
	}
	contact.ID, err = res.LastInsertId()
	return err
}

func (r *Repository) UpdateContact(ctx context.Context, contact *models.Contact) error {
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE contacts SET
			name = :name,
			email = :email,
			phone = :phone,
			birthday = :birthday,
			notes = :notes,
			category = :category
		WHERE id = :id
	`, contact)
	return err
}

func (r *Repository) DeleteContact(ctx context.Context, contactID int64) (bool, error) {
	return r.deleteOwned(ctx, "contacts", contactID)
}
