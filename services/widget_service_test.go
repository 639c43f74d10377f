package services

import (
	"context"
	"errors"
	"fmt"
	"lifehub/database"
	"lifehub/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func layout(userID int64, ids ...int64) []models.Widget {
	out := make([]models.Widget, len(ids))
	for i, id := range ids {
		out[i] = models.Widget{ID: id, UserID: userID, Type: models.WidgetTasks, Position: i}
	}
	return out
}

func TestWidgetService_Reorder(t *testing.T) {
	tests := []struct {
		name          string
		orderedIDs    []int64
		mockSetup     func(*MockWidgetRepository)
		expectedError error
	}{
		{
			name:       "Success - permutation is applied",
			orderedIDs: []int64{3, 1, 2},
			mockSetup: func(repo *MockWidgetRepository) {
				repo.On("GetWidgets", mock.Anything, int64(1)).Return(layout(1, 1, 2, 3), nil).Once()
				repo.On("SetWidgetPositions", mock.Anything, int64(1), []int64{3, 1, 2}).Return(nil)
				repo.On("GetWidgets", mock.Anything, int64(1)).Return(layout(1, 3, 1, 2), nil).Once()
			},
		},
		{
			name:       "Success - empty layout with empty order",
			orderedIDs: []int64{},
			mockSetup: func(repo *MockWidgetRepository) {
				repo.On("GetWidgets", mock.Anything, int64(1)).Return([]models.Widget{}, nil)
				repo.On("SetWidgetPositions", mock.Anything, int64(1), []int64{}).Return(nil)
			},
		},
		{
			name:       "Error - missing id",
			orderedIDs: []int64{1, 2},
			mockSetup: func(repo *MockWidgetRepository) {
				repo.On("GetWidgets", mock.Anything, int64(1)).Return(layout(1, 1, 2, 3), nil)
			},
			expectedError: ErrInvalidReference,
		},
		{
			name:       "Error - duplicate id",
			orderedIDs: []int64{1, 1, 2},
			mockSetup: func(repo *MockWidgetRepository) {
				repo.On("GetWidgets", mock.Anything, int64(1)).Return(layout(1, 1, 2, 3), nil)
			},
			expectedError: ErrInvalidReference,
		},
		{
			name:       "Error - foreign id",
			orderedIDs: []int64{1, 2, 99},
			mockSetup: func(repo *MockWidgetRepository) {
				repo.On("GetWidgets", mock.Anything, int64(1)).Return(layout(1, 1, 2, 3), nil)
			},
			expectedError: ErrInvalidReference,
		},
		{
			name:       "Error - extra id",
			orderedIDs: []int64{1, 2, 3, 4},
			mockSetup: func(repo *MockWidgetRepository) {
				repo.On("GetWidgets", mock.Anything, int64(1)).Return(layout(1, 1, 2, 3), nil)
			},
			expectedError: ErrInvalidReference,
		},
		{
			name:       "Error - row vanished during write",
			orderedIDs: []int64{2, 1},
			mockSetup: func(repo *MockWidgetRepository) {
				repo.On("GetWidgets", mock.Anything, int64(1)).Return(layout(1, 1, 2), nil)
				repo.On("SetWidgetPositions", mock.Anything, int64(1), []int64{2, 1}).
					Return(fmt.Errorf("widget 1: %w", database.ErrRowMismatch))
			},
			expectedError: ErrInvalidReference,
		},
		{
			name:       "Error - repository failure",
			orderedIDs: []int64{1},
			mockSetup: func(repo *MockWidgetRepository) {
				repo.On("GetWidgets", mock.Anything, int64(1)).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockWidgetRepository)
			tt.mockSetup(mockRepo)
			service := NewWidgetService(mockRepo)

			widgets, err := service.Reorder(context.Background(), 1, tt.orderedIDs)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, ErrInvalidReference) {
					assert.ErrorIs(t, err, ErrInvalidReference)
				} else {
					assert.Equal(t, tt.expectedError.Error(), err.Error())
				}
				assert.Nil(t, widgets)
			} else {
				assert.NoError(t, err)
			}

			if errors.Is(tt.expectedError, ErrInvalidReference) && tt.name != "Error - row vanished during write" {
				mockRepo.AssertNotCalled(t, "SetWidgetPositions", mock.Anything, mock.Anything, mock.Anything)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWidgetService_Update(t *testing.T) {
	newType := string(models.WidgetContacts)
	config := models.JSONMap{"size": "large"}

	tests := []struct {
		name          string
		userID        int64
		req           models.UpdateWidgetRequest
		mockSetup     func(*MockWidgetRepository)
		expectedError error
		writes        bool
	}{
		{
			name:   "Success - patches type and config",
			userID: 1,
			req:    models.UpdateWidgetRequest{Type: &newType, Config: &config},
			mockSetup: func(repo *MockWidgetRepository) {
				repo.On("GetWidget", mock.Anything, int64(5)).
					Return(&models.Widget{ID: 5, UserID: 1, Type: models.WidgetTasks, Position: 2}, nil)
				repo.On("UpdateWidget", mock.Anything, mock.MatchedBy(func(w *models.Widget) bool {
					return w.Type == models.WidgetContacts && w.Config["size"] == "large" && w.Position == 2
				})).Return(true, nil)
			},
		},
		{
			name:   "Error - not found",
			userID: 1,
			mockSetup: func(repo *MockWidgetRepository) {
				repo.On("GetWidget", mock.Anything, int64(5)).Return(nil, nil)
			},
			expectedError: ErrNotFound,
		},
		{
			name:   "Error - other user's widget",
			userID: 2,
			mockSetup: func(repo *MockWidgetRepository) {
				repo.On("GetWidget", mock.Anything, int64(5)).
					Return(&models.Widget{ID: 5, UserID: 1, Type: models.WidgetTasks}, nil)
			},
			expectedError: ErrForbidden,
		},
		{
			name:   "Error - row vanished during write",
			userID: 1,
			req:    models.UpdateWidgetRequest{Type: &newType},
			mockSetup: func(repo *MockWidgetRepository) {
				repo.On("GetWidget", mock.Anything, int64(5)).
					Return(&models.Widget{ID: 5, UserID: 1, Type: models.WidgetTasks}, nil)
				repo.On("UpdateWidget", mock.Anything, mock.Anything).Return(false, nil)
			},
			expectedError: ErrNotFound,
			writes:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockWidgetRepository)
			tt.mockSetup(mockRepo)
			service := NewWidgetService(mockRepo)

			widget, err := service.Update(context.Background(), tt.userID, 5, tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, widget)
				if !tt.writes {
					mockRepo.AssertNotCalled(t, "UpdateWidget", mock.Anything, mock.Anything)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, models.WidgetContacts, widget.Type)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWidgetService_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockWidgetRepository)
		mockRepo.On("GetWidget", mock.Anything, int64(5)).Return(&models.Widget{ID: 5, UserID: 1}, nil)
		mockRepo.On("DeleteWidget", mock.Anything, int64(5)).Return(true, nil)

		deleted, err := NewWidgetService(mockRepo).Delete(context.Background(), 1, 5)
		assert.NoError(t, err)
		assert.True(t, deleted)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing widget reports false", func(t *testing.T) {
		mockRepo := new(MockWidgetRepository)
		mockRepo.On("GetWidget", mock.Anything, int64(5)).Return(nil, nil)

		deleted, err := NewWidgetService(mockRepo).Delete(context.Background(), 1, 5)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Other user's widget is forbidden", func(t *testing.T) {
		mockRepo := new(MockWidgetRepository)
		mockRepo.On("GetWidget", mock.Anything, int64(5)).Return(&models.Widget{ID: 5, UserID: 2}, nil)

		deleted, err := NewWidgetService(mockRepo).Delete(context.Background(), 1, 5)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.False(t, deleted)
		mockRepo.AssertNotCalled(t, "DeleteWidget", mock.Anything, mock.Anything)
	})
}

func TestWidgetService_Create(t *testing.T) {
	mockRepo := new(MockWidgetRepository)
	mockRepo.On("CreateWidget", mock.Anything, mock.MatchedBy(func(w *models.Widget) bool {
		return w.UserID == 1 && w.Type == models.WidgetBudget
	})).Run(func(args mock.Arguments) {
		w := args.Get(1).(*models.Widget)
		w.ID = 10
		w.Position = 3
	}).Return(nil)

	widget, err := NewWidgetService(mockRepo).Create(context.Background(), 1, models.CreateWidgetRequest{Type: "budget"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), widget.ID)
	assert.Equal(t, 3, widget.Position)
	mockRepo.AssertExpectations(t)
}
