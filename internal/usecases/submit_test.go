package usecases

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-guestbook/internal/domain/entities"
	infra_repo "video-guestbook/internal/infrastructure/repositories"
	"video-guestbook/internal/pkg/logger"
	consts "video-guestbook/pkg/constants"
	"video-guestbook/pkg/errors"
)

type memBlobStorage struct {
	mu        sync.Mutex
	objects   map[string][]byte
	removed   []string
	uploadErr error
	signErr   error
}

func newMemBlobStorage() *memBlobStorage {
	return &memBlobStorage{objects: make(map[string][]byte)}
}

func (m *memBlobStorage) Upload(_ context.Context, path string, body io.Reader, _ int64, _ string) error {
	if m.uploadErr != nil {
		return m.uploadErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[path] = data
	return nil
}

func (m *memBlobStorage) Remove(_ context.Context, paths []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, path := range paths {
		delete(m.objects, path)
		m.removed = append(m.removed, path)
	}
	return nil
}

func (m *memBlobStorage) SignedURLs(_ context.Context, paths []string, _ time.Duration) (map[string]string, error) {
	if m.signErr != nil {
		return nil, m.signErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	urls := make(map[string]string, len(paths))
	for _, path := range paths {
		if _, ok := m.objects[path]; ok {
			urls[path] = "https://signed.example/" + path
		}
	}
	return urls, nil
}

func (m *memBlobStorage) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

func writeDraftFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "draft.mp4")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func submissionSession(t *testing.T, vertical bool) *entities.WizardSession {
	t.Helper()
	return &entities.WizardSession{
		ID:          "sess-1",
		Step:        consts.StepConfirm,
		CaptureMode: consts.ModeUpload,
		Name:        "Maria",
		Relation:    "amiga",
		Note:        "Felicidades!",
		UserAgent:   "test-agent",
		Draft: &entities.Draft{
			FilePath:    writeDraftFile(t, "video-bytes"),
			FileName:    "clip.mp4",
			ContentType: "video/mp4",
			Size:        11,
			Meta: &entities.VideoMeta{
				Duration:   45.4,
				Width:      1080,
				Height:     1920,
				IsVertical: vertical,
			},
		},
	}
}

func TestSubmitHappyPath(t *testing.T) {
	contributors := infra_repo.NewInMemoryContributorRepository()
	videos := infra_repo.NewInMemoryVideoRepository()
	notes := infra_repo.NewInMemoryNoteRepository()
	blob := newMemBlobStorage()
	svc := NewSubmitService(contributors, videos, notes, blob, logger.NewNop())

	session := submissionSession(t, true)
	require.NoError(t, svc.Submit(context.Background(), session))

	require.Equal(t, 1, contributors.Count())
	require.Equal(t, 1, videos.Count())
	require.Equal(t, 1, notes.Count())
	require.Equal(t, 1, blob.count())

	contributor := contributors.Rows[0]
	assert.Equal(t, "Maria", contributor.Name)
	assert.Equal(t, "amiga", contributor.Relation)
	assert.Equal(t, "sess-1", contributor.SessionID)
	assert.Equal(t, "test-agent", contributor.UserAgent)

	listed, err := videos.ListForCuration(context.Background())
	require.NoError(t, err)
	video := listed[0]
	assert.Regexp(t, regexp.MustCompile(`^sess-1/[0-9a-f-]{36}\.mp4$`), video.StoragePath)
	assert.Equal(t, 45, video.Duration)
	assert.True(t, video.IsVertical)
	assert.True(t, video.HasNote)
	assert.Equal(t, contributor.ID, video.ContributorID)
	assert.Empty(t, []string(video.Tags))
	assert.Nil(t, video.OrderIndex)

	note := notes.Rows[0]
	assert.Equal(t, video.ID, note.VideoID)
	assert.Equal(t, "Felicidades!", note.Content)
}

func TestSubmitWithoutNoteSkipsNoteRow(t *testing.T) {
	contributors := infra_repo.NewInMemoryContributorRepository()
	videos := infra_repo.NewInMemoryVideoRepository()
	notes := infra_repo.NewInMemoryNoteRepository()
	svc := NewSubmitService(contributors, videos, notes, newMemBlobStorage(), logger.NewNop())

	session := submissionSession(t, true)
	session.Note = "   "
	require.NoError(t, svc.Submit(context.Background(), session))

	assert.Equal(t, 0, notes.Count())
	listed, err := videos.ListForCuration(context.Background())
	require.NoError(t, err)
	assert.False(t, listed[0].HasNote)
}

func TestSubmitRejectsBeforeTouchingBackends(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*entities.WizardSession)
		wantCode string
	}{
		{
			name:     "missing draft",
			mutate:   func(s *entities.WizardSession) { s.Draft = nil },
			wantCode: "missing_draft",
		},
		{
			name:     "blank name",
			mutate:   func(s *entities.WizardSession) { s.Name = "   " },
			wantCode: "missing_name",
		},
		{
			name: "horizontal without confirmation",
			mutate: func(s *entities.WizardSession) {
				s.Draft.Meta.IsVertical = false
				s.AgreeHorizontal = false
			},
			wantCode: "horizontal_not_confirmed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contributors := infra_repo.NewInMemoryContributorRepository()
			videos := infra_repo.NewInMemoryVideoRepository()
			notes := infra_repo.NewInMemoryNoteRepository()
			blob := newMemBlobStorage()
			svc := NewSubmitService(contributors, videos, notes, blob, logger.NewNop())

			session := submissionSession(t, true)
			tt.mutate(session)

			err := svc.Submit(context.Background(), session)
			require.Error(t, err)
			var se *errors.SubmissionError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.wantCode, se.Code)

			assert.Equal(t, 0, contributors.Count())
			assert.Equal(t, 0, videos.Count())
			assert.Equal(t, 0, notes.Count())
			assert.Equal(t, 0, blob.count())
		})
	}
}

func TestSubmitHorizontalWithConfirmation(t *testing.T) {
	contributors := infra_repo.NewInMemoryContributorRepository()
	videos := infra_repo.NewInMemoryVideoRepository()
	svc := NewSubmitService(contributors, videos, infra_repo.NewInMemoryNoteRepository(), newMemBlobStorage(), logger.NewNop())

	session := submissionSession(t, false)
	session.AgreeHorizontal = true
	require.NoError(t, svc.Submit(context.Background(), session))

	listed, err := videos.ListForCuration(context.Background())
	require.NoError(t, err)
	assert.False(t, listed[0].IsVertical)
}

func TestSubmitUploadFailureLeavesContributor(t *testing.T) {
	contributors := infra_repo.NewInMemoryContributorRepository()
	videos := infra_repo.NewInMemoryVideoRepository()
	blob := newMemBlobStorage()
	blob.uploadErr = io.ErrClosedPipe
	svc := NewSubmitService(contributors, videos, infra_repo.NewInMemoryNoteRepository(), blob, logger.NewNop())

	err := svc.Submit(context.Background(), submissionSession(t, true))
	require.Error(t, err)
	var se *errors.SubmissionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "upload_failed", se.Code)

	// Pipeline geri alma yapmaz
	assert.Equal(t, 1, contributors.Count())
	assert.Equal(t, 0, videos.Count())
}
