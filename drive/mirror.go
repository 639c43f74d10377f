package drive

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Mirror keeps copies of document blobs in a Drive folder, one subfolder per user.
type Mirror struct {
	files    *FileManager
	folders  *FolderManager
	rootID   string
	mu       sync.Mutex
	userDirs map[int64]string
}

// NewMirror stores files beneath rootFolderID ("root" when empty)
func NewMirror(client *Client, rootFolderID string) *Mirror {
	return &Mirror{
		files:    NewFileManager(client),
		folders:  NewFolderManager(client),
		rootID:   rootFolderID,
		userDirs: make(map[int64]string),
	}
}

// Upload stores content under the user's folder and returns the Drive file id
func (m *Mirror) Upload(ctx context.Context, userID int64, name, mimeType string, content io.Reader) (string, error) {
	folderID, err := m.userFolder(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("resolve user folder: %w", err)
	}

	file, err := m.files.Create(ctx, name, folderID, mimeType, content)
	if err != nil {
		return "", err
	}
	return file.Id, nil
}

func (m *Mirror) Download(ctx context.Context, remoteID string) (io.ReadCloser, error) {
	return m.files.Download(ctx, remoteID)
}

func (m *Mirror) Delete(ctx context.Context, remoteID string) error {
	return m.files.Delete(ctx, remoteID)
}

func (m *Mirror) userFolder(ctx context.Context, userID int64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.userDirs[userID]; ok {
		return id, nil
	}

	id, err := m.folders.GetOrCreate(ctx, fmt.Sprintf("user-%d", userID), m.rootID)
	if err != nil {
		return "", err
	}
	m.userDirs[userID] = id
	return id, nil
}
