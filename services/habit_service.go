package services

import (
	"context"
	"lifehub/models"
	"time"
)

// HabitService handles habits and their completion history
type HabitService struct {
	repo HabitRepository
}

func NewHabitService(repo HabitRepository) *HabitService {
	return &HabitService{repo: repo}
}

// List returns the user's habits, each with its completions newest first
func (hs *HabitService) List(ctx context.Context, userID int64) ([]models.HabitWithCompletions, error) {
	habits, err := hs.repo.GetHabits(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(habits))
	for i, h := range habits {
		ids[i] = h.ID
	}
	completions, err := hs.repo.GetHabitCompletions(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]models.HabitWithCompletions, len(habits))
	for i, h := range habits {
		c := completions[h.ID]
		if c == nil {
			c = []models.HabitCompletion{}
		}
		out[i] = models.HabitWithCompletions{Habit: h, Completions: c}
	}
	return out, nil
}

func (hs *HabitService) Create(ctx context.Context, userID int64, req models.CreateHabitRequest) (*models.Habit, error) {
	habit := &models.Habit{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Frequency:   models.StringList(req.Frequency),
	}
	if err := hs.repo.CreateHabit(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (hs *HabitService) Update(ctx context.Context, userID, habitID int64, req models.UpdateHabitRequest) (*models.Habit, error) {
	habit, err := fetch(ctx, hs.repo.GetHabit, habitID, userID)
	if err != nil {
		return nil, err
	}

	set(&habit.Name, req.Name)
	set(&habit.Description, req.Description)
	if req.Frequency != nil {
		habit.Frequency = models.StringList(*req.Frequency)
	}

	if err := hs.repo.UpdateHabit(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (hs *HabitService) Delete(ctx context.Context, userID, habitID int64) error {
	return remove(ctx, hs.repo.GetHabit, hs.repo.DeleteHabit, habitID, userID)
}

// Complete records a completion (today unless date is given) and extends the streak
func (hs *HabitService) Complete(ctx context.Context, userID, habitID int64, date *time.Time) (*models.HabitCompletion, error) {
	if _, err := fetch(ctx, hs.repo.GetHabit, habitID, userID); err != nil {
		return nil, err
	}

	completion := &models.HabitCompletion{HabitID: habitID, Date: time.Now().UTC()}
	if date != nil {
		completion.Date = date.UTC()
	}
	if err := hs.repo.CreateHabitCompletion(ctx, completion); err != nil {
		return nil, err
	}
	return completion, nil
}

// Uncomplete removes a completion of the habit and shortens the streak
func (hs *HabitService) Uncomplete(ctx context.Context, userID, habitID, completionID int64) error {
	if _, err := fetch(ctx, hs.repo.GetHabit, habitID, userID); err != nil {
		return err
	}

	completion, err := hs.repo.GetHabitCompletion(ctx, completionID)
	if err != nil {
		return err
	}
	if completion == nil || completion.HabitID != habitID {
		return ErrNotFound
	}

	deleted, err := hs.repo.DeleteHabitCompletion(ctx, completionID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
