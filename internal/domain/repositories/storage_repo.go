package repositories

import (
	"context"
	"io"
	"time"
)

// BlobStorage is the external object store holding the raw videos.
type BlobStorage interface {
	// Upload writes body at path with the given content type. Existing
	// objects are never overwritten.
	Upload(ctx context.Context, path string, body io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, paths []string) error
	// SignedURLs returns time-limited read links keyed by path. Paths the
	// store could not sign are absent from the map.
	SignedURLs(ctx context.Context, paths []string, expiry time.Duration) (map[string]string, error)
}
