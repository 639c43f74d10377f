package drive

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
)

const folderMimeType = "application/vnd.google-apps.folder"

// FolderManager handles folder operations in Google Drive
type FolderManager struct {
	client *Client
}

// NewFolderManager creates a new folder manager
func NewFolderManager(client *Client) *FolderManager {
	return &FolderManager{client: client}
}

// GetOrCreate returns the ID of a folder, creating it if it doesn't exist
func (fm *FolderManager) GetOrCreate(ctx context.Context, name, parentID string) (string, error) {
	if parentID == "" {
		parentID = "root"
	}

	query := fmt.Sprintf("name='%s' and mimeType='%s' and trashed=false and '%s' in parents",
		escapeQuery(name), folderMimeType, escapeQuery(parentID))

	fileList, err := fm.client.Service().Files.List().
		Q(query).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}

	if len(fileList.Files) > 0 {
		return fileList.Files[0].Id, nil
	}

	file, err := fm.client.Service().Files.Create(&drive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parentID},
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", err
	}

	return file.Id, nil
}

// escapeQuery quotes a value for use inside a Drive search query string literal.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
