package services

import (
	"context"
	"lifehub/models"
	"time"
)

// TipService handles the shared community tips board. Anyone may read and vote;
// only the author may edit or delete.
type TipService struct {
	repo TipRepository
}

func NewTipService(repo TipRepository) *TipService {
	return &TipService{repo: repo}
}

func (ts *TipService) List(ctx context.Context) ([]models.CommunityTip, error) {
	return ts.repo.GetCommunityTips(ctx)
}

func (ts *TipService) Create(ctx context.Context, userID int64, req models.CreateTipRequest) (*models.CommunityTip, error) {
	tip := &models.CommunityTip{
		UserID:   userID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Date:     time.Now().UTC(),
	}
	if err := ts.repo.CreateCommunityTip(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

func (ts *TipService) Update(ctx context.Context, userID, tipID int64, req models.UpdateTipRequest) (*models.CommunityTip, error) {
	tip, err := fetch(ctx, ts.repo.GetCommunityTip, tipID, userID)
	if err != nil {
		return nil, err
	}

	set(&tip.Title, req.Title)
	set(&tip.Content, req.Content)
	set(&tip.Category, req.Category)

	if err := ts.repo.UpdateCommunityTip(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

func (ts *TipService) Delete(ctx context.Context, userID, tipID int64) error {
	return remove(ctx, ts.repo.GetCommunityTip, ts.repo.DeleteCommunityTip, tipID, userID)
}

// Vote adds one vote for up and removes one otherwise
func (ts *TipService) Vote(ctx context.Context, tipID int64, up bool) (*models.CommunityTip, error) {
	delta := -1
	if up {
		delta = 1
	}

	tip, err := ts.repo.VoteCommunityTip(ctx, tipID, delta)
	if err != nil {
		return nil, err
	}
	if tip == nil {
		return nil, ErrNotFound
	}
	return tip, nil
}
