package repositories

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"video-guestbook/internal/domain/repositories"
)

type captureFileRepository struct {
	tempDir    string
	chunkCount map[string]int // key: sessionID
	fileMutex  sync.Mutex
}

func NewCaptureFileRepository(tempDir string) repositories.CaptureFileRepository {
	return &captureFileRepository{
		tempDir:    tempDir,
		chunkCount: make(map[string]int),
	}
}

func (r *captureFileRepository) TempDir() string {
	return r.tempDir
}

// sessionDir joins the session folder under the temp dir. IDs carrying
// path separators or ".." would escape the temp dir and are rejected.
func (r *captureFileRepository) sessionDir(sessionID string) (string, error) {
	if sessionID == "" || strings.ContainsAny(sessionID, `/\`) || strings.Contains(sessionID, "..") {
		return "", fmt.Errorf("geçersiz oturum kimliği: %q", sessionID)
	}
	return filepath.Join(r.tempDir, sessionID), nil
}

func (r *captureFileRepository) SaveChunk(sessionID string, chunkIndex int, src io.Reader) error {
	r.fileMutex.Lock()
	defer r.fileMutex.Unlock()

	saveDir, err := r.sessionDir(sessionID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return fmt.Errorf("geçici klasör oluşturulamadı: %w", err)
	}

	chunkPath := filepath.Join(saveDir, fmt.Sprintf("chunk.part%d", chunkIndex))
	out, err := os.Create(chunkPath)
	if err != nil {
		return fmt.Errorf("geçici dosya oluşturulamadı: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(chunkPath)
		return fmt.Errorf("chunk kaydedilemedi: %w", err)
	}

	r.chunkCount[sessionID] = chunkIndex
	return nil
}

func (r *captureFileRepository) ChunkCount(sessionID string) int {
	r.fileMutex.Lock()
	defer r.fileMutex.Unlock()
	return r.chunkCount[sessionID]
}

func (r *captureFileRepository) MergeChunks(sessionID, filename string) (string, int64, error) {
	r.fileMutex.Lock()
	defer r.fileMutex.Unlock()

	total := r.chunkCount[sessionID]
	if total == 0 {
		return "", 0, fmt.Errorf("no chunks saved for session %s", sessionID)
	}

	saveDir, err := r.sessionDir(sessionID)
	if err != nil {
		return "", 0, err
	}
	finalPath := filepath.Join(saveDir, filename)
	out, err := os.Create(finalPath)
	if err != nil {
		return "", 0, fmt.Errorf("birleştirilmiş dosya oluşturulamadı: %w", err)
	}
	defer out.Close()

	for i := 1; i <= total; i++ {
		chunkPath := filepath.Join(saveDir, fmt.Sprintf("chunk.part%d", i))
		in, err := os.Open(chunkPath)
		if err != nil {
			return "", 0, fmt.Errorf("chunk %d açılamadı: %w", i, err)
		}
		if _, err := io.Copy(out, in); err != nil {
			in.Close()
			return "", 0, fmt.Errorf("chunk %d birleştirilemedi: %w", i, err)
		}
		in.Close()
		os.Remove(chunkPath)
	}

	delete(r.chunkCount, sessionID)

	info, err := out.Stat()
	if err != nil {
		return "", 0, err
	}
	return finalPath, info.Size(), nil
}

func (r *captureFileRepository) SaveUpload(sessionID string, fileHeader *multipart.FileHeader) (string, int64, error) {
	r.fileMutex.Lock()
	defer r.fileMutex.Unlock()

	saveDir, err := r.sessionDir(sessionID)
	if err != nil {
		return "", 0, err
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", 0, fmt.Errorf("geçici klasör oluşturulamadı: %w", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", 0, fmt.Errorf("dosya açılamadı: %w", err)
	}
	defer src.Close()

	finalPath := filepath.Join(saveDir, filepath.Base(fileHeader.Filename))
	out, err := os.Create(finalPath)
	if err != nil {
		return "", 0, fmt.Errorf("dosya oluşturulamadı: %w", err)
	}
	defer out.Close()

	written, err := io.Copy(out, src)
	if err != nil {
		os.Remove(finalPath)
		return "", 0, fmt.Errorf("dosya yazılamadı: %w", err)
	}
	return finalPath, written, nil
}

func (r *captureFileRepository) RemoveFile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (r *captureFileRepository) CleanupSession(sessionID string) error {
	r.fileMutex.Lock()
	defer r.fileMutex.Unlock()
	delete(r.chunkCount, sessionID)
	saveDir, err := r.sessionDir(sessionID)
	if err != nil {
		return err
	}
	return os.RemoveAll(saveDir)
}
