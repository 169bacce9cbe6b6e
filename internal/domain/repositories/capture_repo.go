package repositories

import (
	"io"
	"mime/multipart"
)

// CaptureFileRepository owns the temp files a capture session produces
// before they become a draft.
type CaptureFileRepository interface {
	// Chunk işlemleri
	SaveChunk(sessionID string, chunkIndex int, r io.Reader) error
	ChunkCount(sessionID string) int
	// MergeChunks assembles saved chunks into a single draft file and
	// removes the chunk files. Returns the file path and its size.
	MergeChunks(sessionID, filename string) (string, int64, error)
	// SaveUpload stores a browser-picked file as a draft file.
	SaveUpload(sessionID string, fileHeader *multipart.FileHeader) (string, int64, error)
	RemoveFile(path string) error
	CleanupSession(sessionID string) error
	TempDir() string
}
