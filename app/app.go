package app

import (
	"lifehub/database"
	"lifehub/drive"
	"lifehub/services"
	"lifehub/session"
	"lifehub/storage"
	"lifehub/sync"
	"lifehub/validator"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo         *database.Repository
	SyncWorker   *sync.Worker
	SessionStore *session.Store
	Validator    *validator.Validator
	Logger       *slog.Logger
	SecureCookie bool

	AuthService        *services.AuthService
	UserService        *services.UserService
	WidgetService      *services.WidgetService
	TaskService        *services.TaskService
	EventService       *services.EventService
	TransactionService *services.TransactionService
	HabitService       *services.HabitService
	ContactService     *services.ContactService
	JournalService     *services.JournalService
	TipService         *services.TipService
	DocumentService    *services.DocumentService
}

// Options carries the optional collaborators of New
type Options struct {
	GoogleClientID string
	SecureCookies  bool
	// Mirror enables background document sync when non-nil
	Mirror *drive.Mirror
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, sessionStore *session.Store, blobs storage.Provider, logger *slog.Logger, opts Options) *App {
	a := &App{
		Repo:         repo,
		SessionStore: sessionStore,
		Validator:    validator.New(),
		Logger:       logger,
		SecureCookie: opts.SecureCookies,
	}

	var (
		worker services.SyncWorker
		remote services.RemoteReader
	)
	if opts.Mirror != nil {
		a.SyncWorker = sync.NewWorker(repo, blobs, opts.Mirror)
		worker = a.SyncWorker
		remote = opts.Mirror
	}

	a.AuthService = services.NewAuthService(repo, sessionStore, opts.GoogleClientID)
	a.UserService = services.NewUserService(repo)
	a.WidgetService = services.NewWidgetService(repo)
	a.TaskService = services.NewTaskService(repo)
	a.EventService = services.NewEventService(repo)
	a.TransactionService = services.NewTransactionService(repo)
	a.HabitService = services.NewHabitService(repo)
	a.ContactService = services.NewContactService(repo)
	a.JournalService = services.NewJournalService(repo)
	a.TipService = services.NewTipService(repo)
	a.DocumentService = services.NewDocumentService(repo, blobs, worker, remote)

	return a
}
