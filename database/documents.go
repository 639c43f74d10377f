package database

import (
	"context"
	"lifehub/models"
	"time"
)

// ==================== DOCUMENT OPERATIONS ====================

const documentColumns = `id, user_id, name, path, type, tags, size, upload_date,
	remote_id, sync_status, sync_retry_count, sync_error, sync_last_attempt_at`

func (r *Repository) GetDocuments(ctx context.Context, userID int64) ([]models.Document, error) {
	return selectAll[models.Document](ctx, r.db, `SELECT `+documentColumns+` FROM documents WHERE user_id = ? ORDER BY upload_date DESC, id DESC`, userID)
}

func (r *Repository) GetDocument(ctx context.Context, documentID int64) (*models.Document, error) {
	return getOne[models.Document](ctx, r.db, `SELECT `+documentColumns+` FROM documents WHERE id = ?`, documentID)
}

// CreateDocument inserts document metadata. markForSync queues the blob for the sync worker.
func (r *Repository) CreateDocument(ctx context.Context, doc *models.Document, markForSync bool) error {
	syncPending := 0
	doc.SyncStatus = models.SyncStatusNone
	if markForSync {
		syncPending = 1
		doc.SyncStatus = models.SyncStatusPending
	}
	if doc.Tags == nil {
		doc.Tags = models.StringList{}
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO documents (user_id, name, path, type, tags, size, upload_date, sync_pending, sync_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.UserID, doc.Name, doc.Path, doc.Type, doc.Tags, doc.Size, doc.UploadDate, syncPending, string(doc.SyncStatus))
	if err != nil {
		return err
	}
	doc.ID, err = res.LastInsertId()
	return err
}

func (r *Repository) DeleteDocument(ctx context.Context, documentID int64) (bool, error) {
	return r.deleteOwned(ctx, "documents", documentID)
}

// ==================== SYNC OPERATIONS ====================

// GetPendingSyncDocuments returns documents waiting to be mirrored, oldest first
func (r *Repository) GetPendingSyncDocuments(ctx context.Context, limit int) ([]models.Document, error) {
	return selectAll[models.Document](ctx, r.db, `
		SELECT `+documentColumns+`
		FROM documents
		WHERE sync_pending = 1
		ORDER BY upload_date ASC
		LIMIT ?
	`, limit)
}

// MarkDocumentSyncing marks a document as currently being uploaded
func (r *Repository) MarkDocumentSyncing(ctx context.Context, documentID int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE documents SET
			sync_status = ?,
			sync_last_attempt_at = ?
		WHERE id = ?
	`, string(models.SyncStatusSyncing), time.Now().UTC(), documentID)
	return err
}

// MarkDocumentSynced records the remote copy and clears the pending flag.
// It reports false when the document no longer exists.
func (r *Repository) MarkDocumentSynced(ctx context.Context, documentID int64, remoteID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE documents SET
			remote_id = ?,
			sync_pending = 0,
			sync_status = ?,
			sync_retry_count = 0,
			sync_error = NULL,
			sync_last_attempt_at = ?
		WHERE id = ?
	`, remoteID, string(models.SyncStatusSynced), time.Now().UTC(), documentID)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// MarkDocumentSyncFailed increments the retry count; at MaxSyncRetries the document is abandoned
func (r *Repository) MarkDocumentSyncFailed(ctx context.Context, documentID int64, errorMsg string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE documents SET
			sync_status = CASE
				WHEN sync_retry_count + 1 >= ? THEN ?
				ELSE ?
			END,
			sync_retry_count = sync_retry_count + 1,
			sync_error = ?,
			sync_last_attempt_at = ?,
			sync_pending = CASE
				WHEN sync_retry_count + 1 >= ? THEN 0
				ELSE 1
			END
		WHERE id = ?
	`, models.MaxSyncRetries, string(models.SyncStatusAbandoned),
		string(models.SyncStatusFailed), errorMsg, time.Now().UTC(),
		models.MaxSyncRetries, documentID)
	return err
}
