package models

import "time"

// SyncStatus tracks mirroring of a document blob to remote storage.
type SyncStatus string

const (
	SyncStatusNone      SyncStatus = ""
	SyncStatusPending   SyncStatus = "pending"
	SyncStatusSyncing   SyncStatus = "syncing"
	SyncStatusSynced    SyncStatus = "synced"
	SyncStatusFailed    SyncStatus = "failed"
	SyncStatusAbandoned SyncStatus = "abandoned"
)

// MaxSyncRetries is the number of failed uploads after which a document is abandoned.
const MaxSyncRetries = 5

type Document struct {
	ID                int64      `json:"id" db:"id"`
	UserID            int64      `json:"userId" db:"user_id"`
	Name              string     `json:"name" db:"name"`
	Path              string     `json:"path" db:"path"`
	Type              string     `json:"type" db:"type"`
	Tags              StringList `json:"tags" db:"tags"`
	Size              int64      `json:"size" db:"size"`
	UploadDate        time.Time  `json:"uploadDate" db:"upload_date"`
	RemoteID          *string    `json:"remoteId,omitempty" db:"remote_id"`
	SyncStatus        SyncStatus `json:"syncStatus,omitempty" db:"sync_status"`
	SyncRetryCount    int        `json:"syncRetryCount,omitempty" db:"sync_retry_count"`
	SyncError         *string    `json:"syncError,omitempty" db:"sync_error"`
	SyncLastAttemptAt *time.Time `json:"-" db:"sync_last_attempt_at"`
}

func (d *Document) OwnerID() int64 { return d.UserID }

type UploadDocumentRequest struct {
	Name        string   `json:"name" validate:"required,max=200,filename"`
	FileContent string   `json:"fileContent" validate:"required"`
	Type        string   `json:"type" validate:"max=50"`
	Tags        []string `json:"tags" validate:"max=20,dive,max=30"`
}
