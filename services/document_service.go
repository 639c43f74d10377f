package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"lifehub/models"
	"lifehub/storage"
	"log/slog"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// DocumentService stores uploaded files locally and queues them for the remote mirror.
type DocumentService struct {
	repo   DocumentRepository
	blobs  storage.Provider
	worker SyncWorker
	remote RemoteReader
}

// NewDocumentService creates a document service. worker and remote are nil when no mirror is configured.
func NewDocumentService(repo DocumentRepository, blobs storage.Provider, worker SyncWorker, remote RemoteReader) *DocumentService {
	return &DocumentService{
		repo:   repo,
		blobs:  blobs,
		worker: worker,
		remote: remote,
	}
}

func (ds *DocumentService) List(ctx context.Context, userID int64) ([]models.Document, error) {
	return ds.repo.GetDocuments(ctx, userID)
}

// Upload decodes base64 content (a data URL prefix is accepted) and stores it
func (ds *DocumentService) Upload(ctx context.Context, userID int64, req models.UploadDocumentRequest) (*models.Document, error) {
	data, err := decodeContent(req.FileContent)
	if err != nil {
		return nil, err
	}

	contentType := req.Type
	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}

	key := uuid.New().String() + "_" + req.Name
	size, err := ds.blobs.Put(ctx, key, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("store document blob: %w", err)
	}

	tags := models.StringList(req.Tags)
	if tags == nil {
		tags = models.StringList{}
	}

	doc := &models.Document{
		UserID:     userID,
		Name:       req.Name,
		Path:       key,
		Type:       contentType,
		Tags:       tags,
		Size:       size,
		UploadDate: time.Now().UTC(),
	}

	if err := ds.repo.CreateDocument(ctx, doc, ds.worker != nil); err != nil {
		if delErr := ds.blobs.Delete(ctx, key); delErr != nil {
			slog.Warn("Failed to remove orphaned blob", "key", key, "error", delErr)
		}
		return nil, err
	}

	if ds.worker != nil {
		ds.worker.SyncDocumentImmediate(doc.ID)
	}
	return doc, nil
}

// Content opens the stored bytes, falling back to the mirrored copy when the local blob is gone.
// The caller closes the reader.
func (ds *DocumentService) Content(ctx context.Context, userID, documentID int64) (*models.Document, io.ReadCloser, error) {
	doc, err := fetch(ctx, ds.repo.GetDocument, documentID, userID)
	if err != nil {
		return nil, nil, err
	}

	r, err := ds.blobs.Open(ctx, doc.Path)
	if errors.Is(err, storage.ErrNotExist) && ds.remote != nil && doc.RemoteID != nil {
		slog.Warn("Local blob missing, reading mirrored copy", "document_id", doc.ID)
		r, err = ds.remote.Download(ctx, *doc.RemoteID)
	}
	if errors.Is(err, storage.ErrNotExist) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	return doc, r, nil
}

// Delete removes the row, the local blob and any mirrored copy
func (ds *DocumentService) Delete(ctx context.Context, userID, documentID int64) error {
	doc, err := fetch(ctx, ds.repo.GetDocument, documentID, userID)
	if err != nil {
		return err
	}

	deleted, err := ds.repo.DeleteDocument(ctx, documentID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	if err := ds.blobs.Delete(ctx, doc.Path); err != nil {
		slog.Warn("Failed to remove document blob", "document_id", doc.ID, "key", doc.Path, "error", err)
	}
	if doc.RemoteID != nil && ds.worker != nil {
		ds.worker.DeleteRemote(*doc.RemoteID)
	}
	return nil
}

// decodeContent accepts raw base64 or a data URL ("data:<type>;base64,<payload>")
func decodeContent(content string) ([]byte, error) {
	if i := strings.Index(content, ";base64,"); i >= 0 && strings.HasPrefix(content, "data:") {
		content = content[i+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return nil, ErrInvalidContent
	}
	return data, nil
}
