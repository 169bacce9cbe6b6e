package usecases

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"video-guestbook/internal/domain/repositories"
	"video-guestbook/internal/pkg/logger"
)

// CleanupService sweeps what abandoned wizard visits leave behind: temp
// capture folders on disk and sessions in the store.
type CleanupService interface {
	CleanupOldTempFiles(maxAge time.Duration) error
	CleanupStaleSessions(ctx context.Context, maxAge time.Duration) error
}

type cleanupService struct {
	files repositories.CaptureFileRepository
	store repositories.SessionStore
	log   *logger.Logger
}

func NewCleanupService(files repositories.CaptureFileRepository, store repositories.SessionStore, log *logger.Logger) CleanupService {
	return &cleanupService{
		files: files,
		store: store,
		log:   log.With("service", "CleanupService"),
	}
}

func (s *cleanupService) CleanupOldTempFiles(maxAge time.Duration) error {
	tempDir := s.files.TempDir()
	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dirPath := filepath.Join(tempDir, entry.Name())
		info, err := os.Stat(dirPath)
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > maxAge {
			if err := os.RemoveAll(dirPath); err != nil {
				s.log.Warn("could not remove temp folder", "path", dirPath, "error", err)
				continue
			}
			s.log.Info("removed old temp folder", "path", dirPath)
		}
	}
	return nil
}

func (s *cleanupService) CleanupStaleSessions(ctx context.Context, maxAge time.Duration) error {
	sessions, err := s.store.List(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, session := range sessions {
		if now.Sub(session.UpdatedAt) <= maxAge {
			continue
		}
		if err := s.files.CleanupSession(session.ID); err != nil {
			s.log.Warn("could not clean capture dir", "session_id", session.ID, "error", err)
		}
		if err := s.store.Delete(ctx, session.ID); err != nil {
			s.log.Warn("could not delete session", "session_id", session.ID, "error", err)
			continue
		}
		s.log.Info("removed stale session", "session_id", session.ID)
	}
	return nil
}
