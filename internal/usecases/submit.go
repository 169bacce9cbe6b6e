package usecases

import (
	"context"
	"math"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"video-guestbook/internal/domain/entities"
	"video-guestbook/internal/domain/repositories"
	"video-guestbook/internal/pkg/logger"
	"video-guestbook/pkg/errors"
	"video-guestbook/pkg/file"
)

// Submitter persists one finished draft: contributor row, blob upload,
// video row, optional note. A linear pipeline with no retries and no
// rollback; a failed step leaves earlier writes in place, and a retried
// submit starts over from the contributor insert.
type Submitter interface {
	Submit(ctx context.Context, session *entities.WizardSession) error
}

type submitService struct {
	contributors repositories.ContributorRepository
	videos       repositories.VideoRepository
	notes        repositories.NoteRepository
	storage      repositories.BlobStorage
	log          *logger.Logger
}

func NewSubmitService(
	contributors repositories.ContributorRepository,
	videos repositories.VideoRepository,
	notes repositories.NoteRepository,
	storage repositories.BlobStorage,
	log *logger.Logger,
) Submitter {
	return &submitService{
		contributors: contributors,
		videos:       videos,
		notes:        notes,
		storage:      storage,
		log:          log.With("service", "SubmitService"),
	}
}

func (s *submitService) Submit(ctx context.Context, session *entities.WizardSession) error {
	draft := session.Draft
	if draft == nil || draft.Meta == nil {
		return errors.ErrMissingDraft(nil)
	}

	// Alan kontrolleri, backend'e dokunmadan önce
	name := strings.TrimSpace(session.Name)
	if name == "" {
		return errors.ErrMissingName(nil)
	}
	if !draft.Meta.IsVertical && !session.AgreeHorizontal {
		return errors.ErrHorizontalNotConfirmed(nil)
	}

	now := time.Now().UTC()
	contributor := &entities.Contributor{
		ID:        uuid.New(),
		Name:      name,
		Relation:  strings.TrimSpace(session.Relation),
		SessionID: session.ID,
		CreatedAt: now,
		UserAgent: session.UserAgent,
	}
	if err := s.contributors.Create(ctx, contributor); err != nil {
		return errors.ErrContributorWrite(err)
	}

	ext := file.ExtensionOrDefault(draft.FileName, "mp4")
	storagePath := file.StoragePath(session.ID, ext)

	blob, err := os.Open(draft.FilePath)
	if err != nil {
		return errors.ErrUploadFailed(err)
	}
	defer blob.Close()

	if err := s.storage.Upload(ctx, storagePath, blob, draft.Size, draft.ContentType); err != nil {
		// Contributor satırı geri alınmaz; yetim kalması kabul edilen risk.
		return errors.ErrUploadFailed(err)
	}

	note := strings.TrimSpace(session.Note)
	video := &entities.Video{
		ID:            uuid.New(),
		ContributorID: contributor.ID,
		StoragePath:   storagePath,
		Duration:      int(math.Round(draft.Meta.Duration)),
		IsVertical:    draft.Meta.IsVertical,
		HasNote:       note != "",
		CreatedAt:     now,
		Selected:      false,
		Favorite:      false,
		Tags:          datatypes.NewJSONSlice([]string{}),
	}
	if err := s.videos.Create(ctx, video); err != nil {
		return errors.ErrVideoWrite(err)
	}

	if note != "" {
		if err := s.notes.Create(ctx, &entities.Note{
			VideoID:   video.ID,
			Content:   note,
			CreatedAt: now,
		}); err != nil {
			// Video ve blob zaten yazıldı; kısmi başarı tolere edilir.
			return errors.ErrNoteWrite(err)
		}
	}

	s.log.Info("submission stored",
		"session_id", session.ID,
		"video_id", video.ID,
		"storage_path", storagePath,
		"duration", video.Duration,
		"is_vertical", video.IsVertical,
	)
	return nil
}
