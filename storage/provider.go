package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotExist is returned when a blob key has no stored content
var ErrNotExist = errors.New("blob does not exist")

// Provider is the interface for document blob backends
type Provider interface {
	// Put stores content under key and returns the number of bytes written
	Put(ctx context.Context, key string, content io.Reader) (int64, error)

	// Open returns a reader for the blob. The caller closes it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the blob. Deleting a missing key returns ErrNotExist.
	Delete(ctx context.Context, key string) error
}
