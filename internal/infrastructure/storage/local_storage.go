package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// LocalStorage keeps uploads on disk. Development fallback; signed URLs
// degrade to plain static paths.
type LocalStorage struct {
	BasePath string
}

func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{BasePath: basePath}
}

func (l *LocalStorage) Upload(_ context.Context, path string, body io.Reader, _ int64, _ string) error {
	fullPath := filepath.Join(l.BasePath, filepath.FromSlash(path))

	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return fmt.Errorf("klasör oluşturulamadı: %w", err)
	}
	if _, err := os.Stat(fullPath); err == nil {
		return fmt.Errorf("dosya zaten var: %s", path)
	}

	outFile, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("dosya oluşturulamadı: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, body); err != nil {
		return fmt.Errorf("dosya yazılamadı: %w", err)
	}
	return nil
}

func (l *LocalStorage) Remove(_ context.Context, paths []string) error {
	for _, path := range paths {
		if err := os.Remove(filepath.Join(l.BasePath, filepath.FromSlash(path))); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func (l *LocalStorage) SignedURLs(_ context.Context, paths []string, _ time.Duration) (map[string]string, error) {
	urls := make(map[string]string, len(paths))
	for _, path := range paths {
		if _, err := os.Stat(filepath.Join(l.BasePath, filepath.FromSlash(path))); err != nil {
			continue
		}
		urls[path] = "/media/" + path
	}
	return urls, nil
}
