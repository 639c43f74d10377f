package services

import (
	"context"
	"lifehub/models"
	"time"
)

type JournalService struct {
	repo JournalRepository
}

func NewJournalService(repo JournalRepository) *JournalService {
	return &JournalService{repo: repo}
}

func (js *JournalService) List(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	return js.repo.GetJournalEntries(ctx, userID)
}

func (js *JournalService) Get(ctx context.Context, userID, entryID int64) (*models.JournalEntry, error) {
	return fetch(ctx, js.repo.GetJournalEntry, entryID, userID)
}

// Create stores an entry dated now unless the request carries a date
func (js *JournalService) Create(ctx context.Context, userID int64, req models.CreateJournalEntryRequest) (*models.JournalEntry, error) {
	entry := &models.JournalEntry{
		UserID:  userID,
		Content: req.Content,
		Mood:    req.Mood,
		Date:    time.Now().UTC(),
	}
	if req.Date != nil {
		entry.Date = req.Date.UTC()
	}
	if err := js.repo.CreateJournalEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (js *JournalService) Update(ctx context.Context, userID, entryID int64, req models.UpdateJournalEntryRequest) (*models.JournalEntry, error) {
	entry, err := fetch(ctx, js.repo.GetJournalEntry, entryID, userID)
	if err != nil {
		return nil, err
	}

	set(&entry.Content, req.Content)
	set(&entry.Mood, req.Mood)
	if req.Date != nil {
		entry.Date = req.Date.UTC()
	}

	if err := js.repo.UpdateJournalEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (js *JournalService) Delete(ctx context.Context, userID, entryID int64) error {
	return remove(ctx, js.repo.GetJournalEntry, js.repo.DeleteJournalEntry, entryID, userID)
}
