package drive

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Drive API client and handles authentication
type Client struct {
	service     *drive.Service
	tokenSource oauth2.TokenSource
}

// NewClient authenticates with a service account key file
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read drive credentials: %w", err)
	}
	return NewClientFromJSON(ctx, data)
}

// NewClientFromJSON authenticates with service account credentials in JSON form
func NewClientFromJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, drive.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("parse drive credentials: %w", err)
	}

	// Reuse tokens until they expire instead of minting one per request
	tokenSource := oauth2.ReuseTokenSource(nil, creds.TokenSource)

	srv, err := drive.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &Client{
		service:     srv,
		tokenSource: tokenSource,
	}, nil
}

// Service returns the underlying Google Drive service for direct API access
func (c *Client) Service() *drive.Service {
	return c.service
}
