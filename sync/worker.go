package sync

import (
	"context"
	"io"
	"lifehub/models"
	"lifehub/storage"
	"log/slog"
	"sync"
	"time"
)

// Repository is the document persistence the worker needs
type Repository interface {
	GetDocument(ctx context.Context, documentID int64) (*models.Document, error)
	GetPendingSyncDocuments(ctx context.Context, limit int) ([]models.Document, error)
	MarkDocumentSyncing(ctx context.Context, documentID int64) error
	MarkDocumentSynced(ctx context.Context, documentID int64, remoteID string) (bool, error)
	MarkDocumentSyncFailed(ctx context.Context, documentID int64, errorMsg string) error
}

// Remote is the mirror target for document blobs
type Remote interface {
	Upload(ctx context.Context, userID int64, name, mimeType string, content io.Reader) (string, error)
	Delete(ctx context.Context, remoteID string) error
}

// Worker mirrors locally stored documents to remote storage in the background
// See domain-specific files:
// - executor.go: Core sync execution logic
// - retry.go: Retry and backoff strategies
type Worker struct {
	repo            Repository
	blobs           storage.Provider
	remote          Remote
	logger          *slog.Logger
	baseInterval    time.Duration
	maxInterval     time.Duration
	currentInterval time.Duration
	minAge          time.Duration
	running         bool
	mu              sync.Mutex
	stopChan        chan struct{}
	wg              sync.WaitGroup
}

// NewWorker creates a new sync worker instance
func NewWorker(repo Repository, blobs storage.Provider, remote Remote) *Worker {
	return &Worker{
		repo:            repo,
		blobs:           blobs,
		remote:          remote,
		logger:          slog.Default().With("component", "sync_worker"),
		baseInterval:    2 * time.Minute, // Base interval for retries
		maxInterval:     5 * time.Minute, // Max interval when no work
		currentInterval: 2 * time.Minute,
		minAge:          30 * time.Second,
	}
}

// Start begins the background sync worker
func (w *Worker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true
	w.stopChan = make(chan struct{})

	w.logger.Info("Starting background sync worker", "interval", w.currentInterval)

	w.wg.Add(1)
	go w.run(w.stopChan)
}

// Stop gracefully stops the background sync worker and waits for in-flight work
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.logger.Info("Stopping background sync worker")
	close(w.stopChan)
	w.running = false
	w.mu.Unlock()

	w.wg.Wait()
}

// run is the main worker loop with adaptive backoff
func (w *Worker) run(stop <-chan struct{}) {
	defer w.wg.Done()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-stop
		cancel()
	}()

	ticker := time.NewTicker(w.currentInterval)
	defer ticker.Stop()

	// Run immediately on start
	w.syncPendingDocuments(ctx)

	for {
		select {
		case <-ticker.C:
			hadWork := w.syncPendingDocuments(ctx)

			w.mu.Lock()
			if next := w.nextInterval(hadWork); next != w.currentInterval {
				w.currentInterval = next
				ticker.Reset(next)
				w.logger.Debug("Sync interval adjusted", "interval", next, "had_work", hadWork)
			}
			w.mu.Unlock()
		case <-stop:
			return
		}
	}
}
