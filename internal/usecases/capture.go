package usecases

import (
	"fmt"
	"mime/multipart"
	"sync"
	"sync/atomic"
	"time"

	"video-guestbook/internal/domain/entities"
	"video-guestbook/internal/domain/repositories"
	"video-guestbook/internal/pkg/logger"
	"video-guestbook/pkg/errors"
	"video-guestbook/pkg/file"
	"video-guestbook/pkg/helper"
)

// CaptureService is the media capture adapter. Record mode receives the
// browser recorder's chunks in order and bundles them on stop; upload mode
// accepts a single picked file. Either way the result is a Draft owning a
// temp file.
type CaptureService interface {
	StartRecording(sessionID, contentType string) error
	AppendChunk(sessionID string, chunkIndex int, fileHeader *multipart.FileHeader) error
	StopRecording(sessionID string) (*entities.Draft, error)
	AcceptUpload(sessionID string, fileHeader *multipart.FileHeader) (*entities.Draft, error)
	ElapsedSeconds(sessionID string) int
	ChunkCount(sessionID string) int
	// Abort releases the recording state and any saved chunks. Safe to
	// call when nothing is active.
	Abort(sessionID string)
}

type recordingState struct {
	contentType string
	elapsed     atomic.Int64
	stop        chan struct{}
}

type captureService struct {
	files repositories.CaptureFileRepository
	log   *logger.Logger

	mu         sync.Mutex
	recordings map[string]*recordingState
}

func NewCaptureService(files repositories.CaptureFileRepository, log *logger.Logger) CaptureService {
	return &captureService{
		files:      files,
		log:        log.With("service", "CaptureService"),
		recordings: make(map[string]*recordingState),
	}
}

func (s *captureService) StartRecording(sessionID, contentType string) error {
	if contentType == "" {
		contentType = "video/webm"
	}

	// Yeni kayıt başlamadan önce eskisini bırak
	s.Abort(sessionID)

	state := &recordingState{
		contentType: contentType,
		stop:        make(chan struct{}),
	}

	s.mu.Lock()
	s.recordings[sessionID] = state
	s.mu.Unlock()

	// Elapsed sayacı: saniyede bir artar, kayıt durunca durur.
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				state.elapsed.Add(1)
			case <-state.stop:
				return
			}
		}
	}()

	return nil
}

func (s *captureService) AppendChunk(sessionID string, chunkIndex int, fileHeader *multipart.FileHeader) error {
	s.mu.Lock()
	_, active := s.recordings[sessionID]
	s.mu.Unlock()
	if !active {
		return errors.ErrCaptureUnavailable(nil)
	}

	if chunkIndex <= 0 || chunkIndex != s.files.ChunkCount(sessionID)+1 {
		return errors.ErrInvalidChunk(fmt.Errorf("got chunk %d after %d", chunkIndex, s.files.ChunkCount(sessionID)))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.ErrInternal(err)
	}
	defer src.Close()

	if err := s.files.SaveChunk(sessionID, chunkIndex, src); err != nil {
		return errors.ErrInternal(err)
	}
	return nil
}

func (s *captureService) StopRecording(sessionID string) (*entities.Draft, error) {
	s.mu.Lock()
	state, active := s.recordings[sessionID]
	if active {
		delete(s.recordings, sessionID)
	}
	s.mu.Unlock()
	if !active {
		return nil, errors.ErrCaptureUnavailable(nil)
	}
	close(state.stop)

	ext := file.ExtensionForContentType(state.contentType)
	filename := fmt.Sprintf("recording-%d.%s", time.Now().UnixMilli(), ext)

	path, size, err := s.files.MergeChunks(sessionID, filename)
	if err != nil {
		return nil, errors.ErrCaptureUnavailable(err)
	}

	s.log.Info("recording bundled", "session_id", sessionID, "file", filename, "size", size)
	return &entities.Draft{
		FilePath:    path,
		FileName:    filename,
		ContentType: state.contentType,
		Size:        size,
	}, nil
}

func (s *captureService) AcceptUpload(sessionID string, fileHeader *multipart.FileHeader) (*entities.Draft, error) {
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = helper.GetMimeTypeFromExtension(fileHeader.Filename)
	}

	path, size, err := s.files.SaveUpload(sessionID, fileHeader)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	return &entities.Draft{
		FilePath:    path,
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		Size:        size,
	}, nil
}

func (s *captureService) ElapsedSeconds(sessionID string) int {
	s.mu.Lock()
	state, ok := s.recordings[sessionID]
	s.mu.Unlock()
	if !ok {
		return 0
	}
	return int(state.elapsed.Load())
}

func (s *captureService) ChunkCount(sessionID string) int {
	return s.files.ChunkCount(sessionID)
}

func (s *captureService) Abort(sessionID string) {
	s.mu.Lock()
	state, ok := s.recordings[sessionID]
	if ok {
		delete(s.recordings, sessionID)
	}
	s.mu.Unlock()
	if ok {
		close(state.stop)
		if err := s.files.CleanupSession(sessionID); err != nil {
			s.log.Warn("could not clean capture dir", "session_id", sessionID, "error", err)
		}
	}
}
