package sync

import (
	"context"
	"errors"
	"fmt"
	"lifehub/metrics"
	"lifehub/models"
	"time"
)

// ==================== SYNC EXECUTION ====================

const batchSize = 50

// syncPendingDocuments mirrors a batch of pending documents.
// Returns true if work was found, false otherwise
func (w *Worker) syncPendingDocuments(ctx context.Context) bool {
	docs, err := w.repo.GetPendingSyncDocuments(ctx, batchSize)
	if err != nil {
		w.logger.Error("Failed to get pending documents", "error", err)
		return false
	}

	docs = filterStaleDocuments(docs, w.minAge, time.Now())
	if len(docs) == 0 {
		return false
	}

	w.logger.Info("Processing pending documents", "count", len(docs))

	result := w.syncDocuments(ctx, docs)
	w.logger.Info("Sync batch complete",
		"synced", result.syncedCount,
		"failed", result.failedCount,
		"total", len(docs))

	return true
}

// syncDocuments is the shared upload loop for both immediate and batch sync.
// A credentials failure stops the batch and fails the remaining documents.
func (w *Worker) syncDocuments(ctx context.Context, docs []models.Document) *syncResult {
	result := &syncResult{}

	for i := range docs {
		doc := &docs[i]

		if err := w.repo.MarkDocumentSyncing(ctx, doc.ID); err != nil {
			w.logger.Warn("Failed to mark document as syncing", "document_id", doc.ID, "error", err)
		}

		err := w.syncDocument(ctx, doc)
		if err == nil {
			result.syncedCount++
			metrics.RecordDocumentSync("synced")
			continue
		}
		if errors.Is(err, errDocumentGone) {
			w.logger.Info("Document deleted during upload", "document_id", doc.ID)
			continue
		}

		metrics.RecordDocumentSync("failed")
		result.failedCount++

		if isAuthError(err) {
			w.logger.Error("Remote storage rejected credentials, stopping batch", "error", err)
			result.authFailed = true
			w.markDocumentsFailed(ctx, docs[i:], "Remote storage rejected credentials")
			result.failedCount += len(docs) - i - 1
			break
		}

		w.logger.Warn("Document sync failed", "document_id", doc.ID, "error", err)
		if markErr := w.repo.MarkDocumentSyncFailed(ctx, doc.ID, fmt.Sprintf("Sync failed: %v", err)); markErr != nil {
			w.logger.Error("Failed to mark document as failed", "document_id", doc.ID, "error", markErr)
		}
	}

	return result
}

// errDocumentGone means the row was deleted while its blob was uploading
var errDocumentGone = errors.New("document deleted during upload")

// syncDocument uploads one blob and records the remote id
func (w *Worker) syncDocument(ctx context.Context, doc *models.Document) error {
	blob, err := w.blobs.Open(ctx, doc.Path)
	if err != nil {
		return fmt.Errorf("open local blob: %w", err)
	}
	defer blob.Close()

	remoteID, err := w.remote.Upload(ctx, doc.UserID, doc.Name, doc.Type, blob)
	if err != nil {
		return err
	}

	synced, err := w.repo.MarkDocumentSynced(ctx, doc.ID, remoteID)
	if err != nil {
		return err
	}
	if !synced {
		if delErr := w.remote.Delete(ctx, remoteID); delErr != nil {
			w.logger.Warn("Failed to delete orphaned remote copy", "document_id", doc.ID, "remote_id", remoteID, "error", delErr)
		}
		return errDocumentGone
	}
	return nil
}

// spawn runs fn in the background unless the worker is stopped.
// wg.Add happens under mu so Stop cannot miss it.
func (w *Worker) spawn(fn func(ctx context.Context)) bool {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return false
	}
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		fn(ctx)
	}()
	return true
}

// SyncDocumentImmediate attempts to mirror a single document right away (non-blocking).
// Failures, and calls made while the worker is stopped, are left for the batch loop.
func (w *Worker) SyncDocumentImmediate(documentID int64) {
	started := w.spawn(func(ctx context.Context) {
		doc, err := w.repo.GetDocument(ctx, documentID)
		if err != nil || doc == nil {
			w.logger.Warn("Immediate sync skipped", "document_id", documentID, "error", err)
			return
		}

		result := w.syncDocuments(ctx, []models.Document{*doc})
		if result.syncedCount > 0 {
			w.logger.Info("Document synced", "document_id", documentID)
		}
	})
	if !started {
		w.logger.Debug("Worker stopped, immediate sync deferred", "document_id", documentID)
	}
}

// DeleteRemote removes a mirrored copy in the background
func (w *Worker) DeleteRemote(remoteID string) {
	started := w.spawn(func(ctx context.Context) {
		if err := w.remote.Delete(ctx, remoteID); err != nil && !errors.Is(err, context.Canceled) {
			w.logger.Warn("Failed to delete remote copy", "remote_id", remoteID, "error", err)
		}
	})
	if !started {
		w.logger.Warn("Worker stopped, remote copy not deleted", "remote_id", remoteID)
	}
}
