package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrInvalidName is returned for names that would escape the storage root
var ErrInvalidName = errors.New("invalid file name")

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	logger   zerolog.Logger
	now      func() time.Time
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath string, logger zerolog.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Save writes r to a new file named <prefix>-<timestamp>-<short uuid><ext>
func (ls *LocalStorage) Save(ctx context.Context, prefix, ext string, r io.Reader) (*FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s-%s-%s%s",
		prefix,
		ls.now().UTC().Format("20060102T150405Z"),
		strings.SplitN(uuid.New().String(), "-", 2)[0],
		ext,
	)
	dstPath := filepath.Join(ls.basePath, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		ls.logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}

	size, err := io.Copy(dst, r)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		ls.logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write file content")
		// Attempt to remove the partially created file
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	ls.logger.Info().Str("name", name).Int64("size", size).Msg("File saved successfully")
	return &FileInfo{Name: name, Path: dstPath, Size: size, CreatedAt: ls.now()}, nil
}

// List returns the regular files in the storage root, newest first
func (ls *LocalStorage) List(ctx context.Context) ([]FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(ls.basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read storage directory: %w", err)
	}

	files := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:      e.Name(),
			Path:      filepath.Join(ls.basePath, e.Name()),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}
	sort.SliceStable(files, func(i, j int) bool {
		if files[i].CreatedAt.Equal(files[j].CreatedAt) {
			return files[i].Name > files[j].Name
		}
		return files[i].CreatedAt.After(files[j].CreatedAt)
	})
	return files, nil
}

// Open opens a stored file by name
func (ls *LocalStorage) Open(name string) (io.ReadCloser, error) {
	path := ls.GetFullPath(name)
	if path == "" {
		return nil, ErrInvalidName
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", os.ErrNotExist, name)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

// DeleteFile removes a file from the storage filesystem.
// Returns nil if deletion is successful or if the file doesn't exist.
func (ls *LocalStorage) DeleteFile(name string) error {
	physicalPath := ls.GetFullPath(name)
	if physicalPath == "" {
		return fmt.Errorf("%w: %s", ErrInvalidName, name)
	}

	if err := os.Remove(physicalPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			ls.logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		ls.logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	ls.logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// GetFullPath returns the full filesystem path for a stored file name, or ""
// when the name is not a plain file name.
func (ls *LocalStorage) GetFullPath(name string) string {
	filename := filepath.Base(name)
	if filename != name || filename == "" || filename == "." || filename == ".." || filename == string(filepath.Separator) {
		return ""
	}
	return filepath.Join(ls.basePath, filename)
}
