package usecases

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-guestbook/internal/domain/entities"
	infra_repo "video-guestbook/internal/infrastructure/repositories"
	"video-guestbook/internal/infrastructure/session"
	"video-guestbook/internal/pkg/logger"
	consts "video-guestbook/pkg/constants"
)

func TestCleanupOldTempFilesSweepsOnlyExpired(t *testing.T) {
	tempDir := t.TempDir()
	files := infra_repo.NewCaptureFileRepository(tempDir)
	store := session.NewMemoryStore()
	svc := NewCleanupService(files, store, logger.NewNop())

	oldDir := filepath.Join(tempDir, "old-session")
	freshDir := filepath.Join(tempDir, "fresh-session")
	require.NoError(t, os.MkdirAll(oldDir, 0755))
	require.NoError(t, os.MkdirAll(freshDir, 0755))

	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldDir, past, past))

	require.NoError(t, svc.CleanupOldTempFiles(24*time.Hour))

	assert.NoDirExists(t, oldDir)
	assert.DirExists(t, freshDir)
}

func TestCleanupStaleSessions(t *testing.T) {
	tempDir := t.TempDir()
	files := infra_repo.NewCaptureFileRepository(tempDir)
	store := session.NewMemoryStore()
	svc := NewCleanupService(files, store, logger.NewNop())

	ctx := context.Background()
	now := time.Now().UTC()
	require.NoError(t, store.Save(ctx, &entities.WizardSession{
		ID:        "stale",
		Step:      consts.StepCapture,
		UpdatedAt: now.Add(-8 * 24 * time.Hour),
	}))
	require.NoError(t, store.Save(ctx, &entities.WizardSession{
		ID:        "active",
		Step:      consts.StepPreview,
		UpdatedAt: now,
	}))
	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, "stale"), 0755))

	require.NoError(t, svc.CleanupStaleSessions(ctx, 7*24*time.Hour))

	gone, err := store.Get(ctx, "stale")
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.NoDirExists(t, filepath.Join(tempDir, "stale"))

	kept, err := store.Get(ctx, "active")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestCleanupStaleSessionsIgnoresEscapingIDs(t *testing.T) {
	root := t.TempDir()
	tempDir := filepath.Join(root, "uploads")
	victimDir := filepath.Join(root, "victim")
	require.NoError(t, os.MkdirAll(tempDir, 0755))
	require.NoError(t, os.MkdirAll(victimDir, 0755))

	files := infra_repo.NewCaptureFileRepository(tempDir)
	store := session.NewMemoryStore()
	svc := NewCleanupService(files, store, logger.NewNop())

	// Depoya bir şekilde sızmış kötü bir kimlik süpürmeyi
	// geçici klasörün dışına taşıyamamalı
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &entities.WizardSession{
		ID:        "../victim",
		Step:      consts.StepCapture,
		UpdatedAt: time.Now().UTC().Add(-8 * 24 * time.Hour),
	}))

	require.NoError(t, svc.CleanupStaleSessions(ctx, 7*24*time.Hour))

	assert.DirExists(t, victimDir)
	gone, err := store.Get(ctx, "../victim")
	require.NoError(t, err)
	assert.Nil(t, gone)
}
