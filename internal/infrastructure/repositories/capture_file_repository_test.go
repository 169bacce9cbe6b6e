package repositories

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureFileRepositoryRejectsEscapingSessionIDs(t *testing.T) {
	root := t.TempDir()
	tempDir := filepath.Join(root, "uploads")
	victimDir := filepath.Join(root, "victim")
	require.NoError(t, os.MkdirAll(tempDir, 0755))
	require.NoError(t, os.MkdirAll(victimDir, 0755))

	repo := NewCaptureFileRepository(tempDir)

	for _, sessionID := range []string{"../victim", `..\victim`, "a/../../victim", "nested/dir", ""} {
		err := repo.SaveChunk(sessionID, 1, strings.NewReader("payload"))
		assert.Error(t, err, "SaveChunk %q", sessionID)

		_, _, err = repo.MergeChunks(sessionID, "video.webm")
		assert.Error(t, err, "MergeChunks %q", sessionID)

		err = repo.CleanupSession(sessionID)
		assert.Error(t, err, "CleanupSession %q", sessionID)
	}

	// Geçici klasörün dışındaki kardeş klasör yerinde kalmalı
	assert.DirExists(t, victimDir)
}
