package services

import (
	"context"
	"lifehub/models"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

// MockWidgetRepository is a mock implementation of WidgetRepository interface
type MockWidgetRepository struct {
	mock.Mock
}

var _ WidgetRepository = (*MockWidgetRepository)(nil)

func (m *MockWidgetRepository) GetWidgets(ctx context.Context, userID int64) ([]models.Widget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Widget), args.Error(1)
}

func (m *MockWidgetRepository) GetWidget(ctx context.Context, widgetID int64) (*models.Widget, error) {
	args := m.Called(ctx, widgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Widget), args.Error(1)
}

func (m *MockWidgetRepository) CreateWidget(ctx context.Context, widget *models.Widget) error {
	return m.Called(ctx, widget).Error(0)
}

func (m *MockWidgetRepository) UpdateWidget(ctx context.Context, widget *models.Widget) (bool, error) {
	args := m.Called(ctx, widget)
	return args.Bool(0), args.Error(1)
}

func (m *MockWidgetRepository) DeleteWidget(ctx context.Context, widgetID int64) (bool, error) {
	args := m.Called(ctx, widgetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWidgetRepository) SetWidgetPositions(ctx context.Context, userID int64, orderedIDs []int64) error {
	return m.Called(ctx, userID, orderedIDs).Error(0)
}

// MockUserRepository is a mock implementation of UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

var _ UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) CreateUserWithWidgets(ctx context.Context, user *models.User, widgets []models.WidgetType) error {
	return m.Called(ctx, user, widgets).Error(0)
}

func (m *MockUserRepository) UpdateUserPreferences(ctx context.Context, userID int64, preferences models.JSONMap) error {
	return m.Called(ctx, userID, preferences).Error(0)
}

// MockSessionStore is a mock implementation of SessionStore interface
type MockSessionStore struct {
	mock.Mock
}

var _ SessionStore = (*MockSessionStore)(nil)

func (m *MockSessionStore) Create(ctx context.Context, userID int64) (*models.Session, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Touch(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

// MockSyncWorker is a mock implementation of SyncWorker interface
type MockSyncWorker struct {
	mock.Mock
}

var _ SyncWorker = (*MockSyncWorker)(nil)

func (m *MockSyncWorker) SyncDocumentImmediate(documentID int64) {
	m.Called(documentID)
}

func (m *MockSyncWorker) DeleteRemote(remoteID string) {
	m.Called(remoteID)
}
