package drive

import (
	"context"
	"io"

	"google.golang.org/api/drive/v3"
)

// FileManager handles generic file operations in Google Drive
type FileManager struct {
	client *Client
}

// NewFileManager creates a new file manager
func NewFileManager(client *Client) *FileManager {
	return &FileManager{client: client}
}

// Create uploads a new file into parentID
func (fm *FileManager) Create(ctx context.Context, name, parentID, mimeType string, content io.Reader) (*drive.File, error) {
	fileMetadata := &drive.File{
		Name:     name,
		Parents:  []string{parentID},
		MimeType: mimeType,
	}

	return fm.client.Service().Files.Create(fileMetadata).
		Media(content).
		Fields("id, name, size").
		Context(ctx).
		Do()
}

// Download opens the content of a file. The caller closes the reader.
func (fm *FileManager) Download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	resp, err := fm.client.Service().Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Delete permanently removes a file
func (fm *FileManager) Delete(ctx context.Context, fileID string) error {
	return fm.client.Service().Files.Delete(fileID).Context(ctx).Do()
}
