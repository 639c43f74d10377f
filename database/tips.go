package database

import (
	"context"
	"lifehub/models"
)

// ==================== COMMUNITY TIP OPERATIONS ====================

const tipColumns = `id, user_id, title, content, category, votes, date`

// GetCommunityTips returns every tip, most voted first
func (r *Repository) GetCommunityTips(ctx context.Context) ([]models.CommunityTip, error) {
	return selectAll[models.CommunityTip](ctx, r.db, `SELECT `+tipColumns+` FROM community_tips ORDER BY votes DESC, date DESC, id DESC`)
}

func (r *Repository) GetCommunityTip(ctx context.Context, tipID int64) (*models.CommunityTip, error) {
	return getOne[models.CommunityTip](ctx, r.db, `SELECT `+tipColumns+` FROM community_tips WHERE id = ?`, tipID)
}

func (r *Repository) CreateCommunityTip(ctx context.Context, tip *models.CommunityTip) error {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO community_tips (user_id, title, content, category, votes, date)
		VALUES (:user_id, :title, :content, :category, :votes, :date)
	`, tip)
	if err != nil {
		return err
	}
	tip.ID, err = res.LastInsertId()
	return err
}

func (r *Repository) UpdateCommunityTip(ctx context.Context, tip *models.CommunityTip) error {
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE community_tips SET
			title = :title,
			content = :content,
			category = :category
		WHERE id = :id
	`, tip)
	return err
}

func (r *Repository) DeleteCommunityTip(ctx context.Context, tipID int64) (bool, error) {
	return r.deleteOwned(ctx, "community_tips", tipID)
}

// VoteCommunityTip adjusts the vote count atomically and returns the updated tip
func (r *Repository) VoteCommunityTip(ctx context.Context, tipID int64, delta int) (*models.CommunityTip, error) {
	if _, err := r.db.ExecContext(ctx, `UPDATE community_tips SET votes = votes + ? WHERE id = ?`, delta, tipID); err != nil {
		return nil, err
	}
	return r.GetCommunityTip(ctx, tipID)
}
