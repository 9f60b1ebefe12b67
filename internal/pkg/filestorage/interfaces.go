package filestorage

import (
	"context"
	"io"
	"time"
)

// FileInfo represents information about a stored file
type FileInfo struct {
	Name      string    // File name inside the storage root
	Path      string    // Full path on disk
	Size      int64     // Size in bytes
	CreatedAt time.Time // Modification time of the stored file
}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// Save writes the content of r under a unique name with the given prefix and extension
	Save(ctx context.Context, prefix, ext string, r io.Reader) (*FileInfo, error)

	// List returns stored files, newest first
	List(ctx context.Context) ([]FileInfo, error)

	// Open opens a stored file for reading
	Open(name string) (io.ReadCloser, error)

	// DeleteFile removes a file from storage
	DeleteFile(name string) error

	// GetFullPath returns the full filesystem path for a stored file name
	GetFullPath(name string) string
}
