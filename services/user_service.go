package services

import (
	"context"
	"lifehub/models"
)

// UserService exposes the signed-in user's profile
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (us *UserService) Profile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := us.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// UpdatePreferences replaces the preferences object and returns the updated profile
func (us *UserService) UpdatePreferences(ctx context.Context, userID int64, preferences models.JSONMap) (*models.User, error) {
	user, err := us.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if preferences == nil {
		preferences = models.JSONMap{}
	}
	if err := us.repo.UpdateUserPreferences(ctx, userID, preferences); err != nil {
		return nil, err
	}
	user.Preferences = preferences
	return user, nil
}
