package services

import (
	"context"
	"io"
	"lifehub/models"
)

// WidgetRepository defines the interface for widget layout data access
type WidgetRepository interface {
	GetWidgets(ctx context.Context, userID int64) ([]models.Widget, error)
	GetWidget(ctx context.Context, widgetID int64) (*models.Widget, error)
	CreateWidget(ctx context.Context, widget *models.Widget) error
	UpdateWidget(ctx context.Context, widget *models.Widget) (bool, error)
	DeleteWidget(ctx context.Context, widgetID int64) (bool, error)
	SetWidgetPositions(ctx context.Context, userID int64, orderedIDs []int64) error
}

// UserRepository defines the interface for account data access
type UserRepository interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	CreateUserWithWidgets(ctx context.Context, user *models.User, widgets []models.WidgetType) error
	UpdateUserPreferences(ctx context.Context, userID int64, preferences models.JSONMap) error
}

// SessionStore defines the interface for session management
type SessionStore interface {
	Create(ctx context.Context, userID int64) (*models.Session, error)
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Touch(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, sessionID string) error
}

type TaskRepository interface {
	GetTasks(ctx context.Context, userID int64) ([]models.Task, error)
	GetTask(ctx context.Context, taskID int64) (*models.Task, error)
	CreateTask(ctx context.Context, task *models.Task) error
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, taskID int64) (bool, error)
}

type EventRepository interface {
	GetEvents(ctx context.Context, userID int64) ([]models.Event, error)
	GetEvent(ctx context.Context, eventID int64) (*models.Event, error)
	CreateEvent(ctx context.Context, event *models.Event) error
	UpdateEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, eventID int64) (bool, error)
}

type TransactionRepository interface {
	GetTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, transactionID int64) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	UpdateTransaction(ctx context.Context, t *models.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID int64) (bool, error)
}

type HabitRepository interface {
	GetHabits(ctx context.Context, userID int64) ([]models.Habit, error)
	GetHabit(ctx context.Context, habitID int64) (*models.Habit, error)
	CreateHabit(ctx context.Context, habit *models.Habit) error
	UpdateHabit(ctx context.Context, habit *models.Habit) error
	DeleteHabit(ctx context.Context, habitID int64) (bool, error)
	GetHabitCompletions(ctx context.Context, habitIDs []int64) (map[int64][]models.HabitCompletion, error)
	GetHabitCompletion(ctx context.Context, completionID int64) (*models.HabitCompletion, error)
	CreateHabitCompletion(ctx context.Context, completion *models.HabitCompletion) error
	DeleteHabitCompletion(ctx context.Context, completionID int64) (bool, error)
}

type ContactRepository interface {
	GetContacts(ctx context.Context, userID int64) ([]models.Contact, error)
	GetContact(ctx context.Context, contactID int64) (*models.Contact, error)
	CreateContact(ctx context.Context, contact *models.Contact) error
	UpdateContact(ctx context.Context, contact *models.Contact) error
	DeleteContact(ctx context.Context, contactID int64) (bool, error)
}

type JournalRepository interface {
	GetJournalEntries(ctx context.Context, userID int64) ([]models.JournalEntry, error)
	GetJournalEntry(ctx context.Context, entryID int64) (*models.JournalEntry, error)
	CreateJournalEntry(ctx context.Context, entry *models.JournalEntry) error
	UpdateJournalEntry(ctx context.Context, entry *models.JournalEntry) error
	DeleteJournalEntry(ctx context.Context, entryID int64) (bool, error)
}

type TipRepository interface {
	GetCommunityTips(ctx context.Context) ([]models.CommunityTip, error)
	GetCommunityTip(ctx context.Context, tipID int64) (*models.CommunityTip, error)
	CreateCommunityTip(ctx context.Context, tip *models.CommunityTip) error
	UpdateCommunityTip(ctx context.Context, tip *models.CommunityTip) error
	DeleteCommunityTip(ctx context.Context, tipID int64) (bool, error)
	VoteCommunityTip(ctx context.Context, tipID int64, delta int) (*models.CommunityTip, error)
}

type DocumentRepository interface {
	GetDocuments(ctx context.Context, userID int64) ([]models.Document, error)
	GetDocument(ctx context.Context, documentID int64) (*models.Document, error)
	CreateDocument(ctx context.Context, doc *models.Document, markForSync bool) error
	DeleteDocument(ctx context.Context, documentID int64) (bool, error)
}

// SyncWorker defines the background mirror operations documents trigger
type SyncWorker interface {
	SyncDocumentImmediate(documentID int64)
	DeleteRemote(remoteID string)
}

// RemoteReader fetches a mirrored blob when the local copy is gone
type RemoteReader interface {
	Download(ctx context.Context, remoteID string) (io.ReadCloser, error)
}
