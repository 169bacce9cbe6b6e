package usecases

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infra_repo "video-guestbook/internal/infrastructure/repositories"
	"video-guestbook/internal/pkg/logger"
	"video-guestbook/pkg/errors"
)

func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func newCaptureFixture(t *testing.T) (CaptureService, string) {
	t.Helper()
	tempDir := t.TempDir()
	files := infra_repo.NewCaptureFileRepository(tempDir)
	return NewCaptureService(files, logger.NewNop()), tempDir
}

func TestAppendChunkRequiresActiveRecording(t *testing.T) {
	svc, _ := newCaptureFixture(t)

	err := svc.AppendChunk("sess-1", 1, makeFileHeader(t, "c1", "video/webm", []byte("aa")))
	require.Error(t, err)
	var se *errors.SubmissionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "capture_unavailable", se.Code)
}

func TestAppendChunkEnforcesOrder(t *testing.T) {
	svc, _ := newCaptureFixture(t)
	require.NoError(t, svc.StartRecording("sess-1", "video/webm"))
	defer svc.Abort("sess-1")

	require.NoError(t, svc.AppendChunk("sess-1", 1, makeFileHeader(t, "c1", "video/webm", []byte("aa"))))

	tests := []struct {
		name  string
		index int
	}{
		{name: "skipped index", index: 3},
		{name: "repeated index", index: 1},
		{name: "zero index", index: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.AppendChunk("sess-1", tt.index, makeFileHeader(t, "cx", "video/webm", []byte("bb")))
			require.Error(t, err)
			var se *errors.SubmissionError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, "invalid_chunk", se.Code)
		})
	}

	assert.Equal(t, 1, svc.ChunkCount("sess-1"))
}

func TestStopRecordingMergesChunksInOrder(t *testing.T) {
	svc, _ := newCaptureFixture(t)
	require.NoError(t, svc.StartRecording("sess-1", "video/webm"))

	require.NoError(t, svc.AppendChunk("sess-1", 1, makeFileHeader(t, "c1", "video/webm", []byte("first-"))))
	require.NoError(t, svc.AppendChunk("sess-1", 2, makeFileHeader(t, "c2", "video/webm", []byte("second-"))))
	require.NoError(t, svc.AppendChunk("sess-1", 3, makeFileHeader(t, "c3", "video/webm", []byte("third"))))

	draft, err := svc.StopRecording("sess-1")
	require.NoError(t, err)
	assert.Equal(t, "video/webm", draft.ContentType)
	assert.Regexp(t, `^recording-\d+\.webm$`, draft.FileName)
	assert.Equal(t, int64(len("first-second-third")), draft.Size)

	merged, err := os.ReadFile(draft.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "first-second-third", string(merged))

	// Kayıt kapandıktan sonra yeni chunk kabul edilmez
	err = svc.AppendChunk("sess-1", 4, makeFileHeader(t, "c4", "video/webm", []byte("late")))
	require.Error(t, err)
}

func TestStopRecordingWithoutChunksFails(t *testing.T) {
	svc, _ := newCaptureFixture(t)
	require.NoError(t, svc.StartRecording("sess-1", ""))

	_, err := svc.StopRecording("sess-1")
	require.Error(t, err)
	var se *errors.SubmissionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "capture_unavailable", se.Code)
}

func TestStartRecordingDefaultsContentType(t *testing.T) {
	svc, _ := newCaptureFixture(t)
	require.NoError(t, svc.StartRecording("sess-1", ""))
	require.NoError(t, svc.AppendChunk("sess-1", 1, makeFileHeader(t, "c1", "video/webm", []byte("aa"))))

	draft, err := svc.StopRecording("sess-1")
	require.NoError(t, err)
	assert.Equal(t, "video/webm", draft.ContentType)
}

func TestAbortDiscardsChunks(t *testing.T) {
	svc, tempDir := newCaptureFixture(t)
	require.NoError(t, svc.StartRecording("sess-1", "video/webm"))
	require.NoError(t, svc.AppendChunk("sess-1", 1, makeFileHeader(t, "c1", "video/webm", []byte("aa"))))

	svc.Abort("sess-1")

	assert.Equal(t, 0, svc.ChunkCount("sess-1"))
	assert.NoDirExists(t, tempDir+"/sess-1")

	// İkinci Abort sessizce geçer
	svc.Abort("sess-1")
}

func TestAcceptUploadKeepsOriginalName(t *testing.T) {
	svc, _ := newCaptureFixture(t)

	draft, err := svc.AcceptUpload("sess-2", makeFileHeader(t, "ferias.mov", "video/quicktime", []byte("movie-bytes")))
	require.NoError(t, err)
	assert.Equal(t, "ferias.mov", draft.FileName)
	assert.Equal(t, "video/quicktime", draft.ContentType)
	assert.Equal(t, int64(len("movie-bytes")), draft.Size)
	assert.FileExists(t, draft.FilePath)
}
