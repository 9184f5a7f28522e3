package storage

import (
	"context"
	"io"
)

// Storage defines the interface for file storage operations.
type Storage interface {
	// Save stores content under the given relative path.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get retrieves a file from the storage.
	// Returns a ReadCloser for the file content, or an error.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file from the storage.
	Delete(ctx context.Context, path string) error
}
