package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileStorage is the object-store boundary. Buckets map to directories under
// the base path; object names keep their own path convention (avatar uploads
// use "{userId}/{unix millis}.jpg" so per-user cleanup stays a prefix match).
type FileStorage interface {
	Save(file io.Reader, bucket, objectName string) (publicPath string, err error)
	Delete(publicPath string) error
}

type LocalFileStorage struct {
	basePath string
}

func NewLocalFileStorage(basePath string) (FileStorage, error) {
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		if err := os.MkdirAll(basePath, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}
	return &LocalFileStorage{basePath: basePath}, nil
}

func (s *LocalFileStorage) Save(file io.Reader, bucket, objectName string) (string, error) {
	fullPath := filepath.Join(s.basePath, bucket, filepath.FromSlash(objectName))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		return "", err
	}

	return "/" + path(s.basePath, bucket, objectName), nil
}

// Delete accepts the public path returned by Save ("/uploads/bucket/...").
// A missing file counts as success.
func (s *LocalFileStorage) Delete(publicPath string) error {
	relative := strings.TrimPrefix(publicPath, "/"+filepath.ToSlash(s.basePath)+"/")
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(relative))

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(fullPath)
}

func path(parts ...string) string {
	return filepath.ToSlash(filepath.Join(parts...))
}
