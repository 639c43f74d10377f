package sync

import (
	"context"
	"errors"
	"lifehub/models"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
)

// ==================== RETRY LOGIC & BACKOFF ====================

// syncResult holds the result of a sync operation
type syncResult struct {
	syncedCount int
	failedCount int
	authFailed  bool
}

// nextInterval resets to the base interval when there was work and backs off to the max when idle
func (w *Worker) nextInterval(hadWork bool) time.Duration {
	if hadWork {
		return w.baseInterval
	}
	return w.maxInterval
}

// filterStaleDocuments keeps documents whose last attempt (or upload) is at least minAge old.
// This keeps the batch loop from racing an immediate sync of a fresh upload.
func filterStaleDocuments(docs []models.Document, minAge time.Duration, now time.Time) []models.Document {
	var stale []models.Document
	for _, doc := range docs {
		last := doc.UploadDate
		if doc.SyncLastAttemptAt != nil {
			last = *doc.SyncLastAttemptAt
		}
		if now.Sub(last) >= minAge {
			stale = append(stale, doc)
		}
	}
	return stale
}

// isAuthError reports whether the remote rejected our credentials
func isAuthError(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden
	}
	return false
}

// markDocumentsFailed marks a batch of documents as failed with an error message
func (w *Worker) markDocumentsFailed(ctx context.Context, docs []models.Document, errorMsg string) {
	for _, doc := range docs {
		if err := w.repo.MarkDocumentSyncFailed(ctx, doc.ID, errorMsg); err != nil {
			w.logger.Error("Failed to mark document as failed", "document_id", doc.ID, "error", err)
		}
	}
}
