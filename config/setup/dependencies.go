package setup

import (
	"context"
	"fmt"
	"lifehub/app"
	"lifehub/config"
	"lifehub/database"
	"lifehub/drive"
	"lifehub/session"
	"lifehub/storage"
	"log/slog"
	"time"
)

const sessionCleanupInterval = time.Hour

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies.
// Background routines stop when ctx is cancelled; the sync worker is stopped by Shutdown.
func InitApp(ctx context.Context, db *database.DB, cfg *config.Config, logger *slog.Logger) (*app.App, error) {
	repo := database.NewRepository(db)

	sessionStore := session.NewStore(db.DB, time.Duration(cfg.SessionTTLHours)*time.Hour)
	sessionStore.StartCleanupRoutine(ctx, sessionCleanupInterval)
	logger.Info("session store initialized", "ttl_hours", cfg.SessionTTLHours)

	blobs, err := storage.NewLocal(cfg.UploadsDir)
	if err != nil {
		return nil, fmt.Errorf("init uploads dir: %w", err)
	}
	logger.Info("document storage configured", "dir", cfg.UploadsDir)

	opts := app.Options{
		GoogleClientID: cfg.GoogleClientID,
		SecureCookies:  cfg.Env == "production",
	}

	if cfg.DriveEnabled() {
		client, err := drive.NewClient(ctx, cfg.DriveCredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("init drive client: %w", err)
		}
		opts.Mirror = drive.NewMirror(client, cfg.DriveFolderID)
		logger.Info("document mirroring enabled", "folder_id", cfg.DriveFolderID)
	} else {
		logger.Info("document mirroring disabled")
	}

	application := app.New(repo, sessionStore, blobs, logger, opts)

	if application.SyncWorker != nil {
		application.SyncWorker.Start()
		logger.Info("sync worker started")
	}

	if cfg.GoogleClientID == "" {
		logger.Info("google login disabled")
	}

	return application, nil
}

// Shutdown performs graceful shutdown of all services
func Shutdown(application *app.App, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if application != nil && application.SyncWorker != nil {
		application.SyncWorker.Stop()
		logger.Info("sync worker stopped")
	}

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
