package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"video-guestbook/internal/domain/dto"
	"video-guestbook/internal/domain/repositories"
	"video-guestbook/internal/pkg/logger"
	"video-guestbook/pkg/errors"
)

const signedURLExpiry = time.Hour

// CurationService backs the admin panel: review, tag, flag, reorder and
// delete submissions. It never touches wizard sessions.
type CurationService interface {
	List(ctx context.Context) (*dto.AdminListResponseDTO, error)
	ToggleTag(ctx context.Context, videoID uuid.UUID, tag string) error
	ToggleFlag(ctx context.Context, videoID uuid.UUID, field string) error
	Reorder(ctx context.Context, draggingID, targetID uuid.UUID) ([]dto.ReorderResultDTO, error)
	Delete(ctx context.Context, videoID uuid.UUID) error
}

type curationService struct {
	videos  repositories.VideoRepository
	storage repositories.BlobStorage
	log     *logger.Logger
}

func NewCurationService(videos repositories.VideoRepository, storage repositories.BlobStorage, log *logger.Logger) CurationService {
	return &curationService{
		videos:  videos,
		storage: storage,
		log:     log.With("service", "CurationService"),
	}
}

func (s *curationService) List(ctx context.Context) (*dto.AdminListResponseDTO, error) {
	videos, err := s.videos.ListForCuration(ctx)
	if err != nil {
		return nil, errors.ErrReadFailure(err)
	}

	paths := make([]string, 0, len(videos))
	for _, video := range videos {
		if video.StoragePath != "" {
			paths = append(paths, video.StoragePath)
		}
	}
	// İmzalama hatası listeyi düşürmez, sadece linkler eksik kalır
	urls, err := s.storage.SignedURLs(ctx, paths, signedURLExpiry)
	if err != nil {
		s.log.Warn("could not sign urls", "error", err)
		urls = map[string]string{}
	}

	resp := &dto.AdminListResponseDTO{
		Videos: make([]dto.AdminVideoDTO, 0, len(videos)),
		Total:  len(videos),
	}
	for _, video := range videos {
		if video.HasNote {
			resp.WithNote++
		}
		item := dto.AdminVideoDTO{
			ID:          video.ID.String(),
			StoragePath: video.StoragePath,
			Duration:    video.Duration,
			IsVertical:  video.IsVertical,
			HasNote:     video.HasNote,
			CreatedAt:   video.CreatedAt,
			Selected:    video.Selected,
			Favorite:    video.Favorite,
			Tags:        video.Tags,
			OrderIndex:  video.OrderIndex,
			SignedURL:   urls[video.StoragePath],
		}
		item.Contributor.Name = video.Contributor.Name
		item.Contributor.Relation = video.Contributor.Relation
		resp.Videos = append(resp.Videos, item)
	}
	return resp, nil
}

func (s *curationService) ToggleTag(ctx context.Context, videoID uuid.UUID, tag string) error {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return errors.ErrNotFound(err)
	}

	tags := make([]string, 0, len(video.Tags)+1)
	found := false
	for _, existing := range video.Tags {
		if existing == tag {
			found = true
			continue
		}
		tags = append(tags, existing)
	}
	if !found {
		tags = append(tags, tag)
	}

	if err := s.videos.UpdateTags(ctx, videoID, tags); err != nil {
		return errors.ErrInternal(err)
	}
	return nil
}

func (s *curationService) ToggleFlag(ctx context.Context, videoID uuid.UUID, field string) error {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return errors.ErrNotFound(err)
	}

	var value bool
	switch field {
	case "favorite":
		value = !video.Favorite
	case "selected":
		value = !video.Selected
	default:
		return errors.ErrInternal(nil)
	}

	if err := s.videos.UpdateFlag(ctx, videoID, field, value); err != nil {
		return errors.ErrInternal(err)
	}
	return nil
}

// Reorder moves draggingID in front of targetID and rewrites every video's
// order_index to its new 0-based position. The N updates run concurrently
// with no rollback; the per-item result list reports which ones failed.
// Dropping an item onto itself is a no-op.
func (s *curationService) Reorder(ctx context.Context, draggingID, targetID uuid.UUID) ([]dto.ReorderResultDTO, error) {
	if draggingID == targetID {
		return nil, nil
	}

	videos, err := s.videos.ListForCuration(ctx)
	if err != nil {
		return nil, errors.ErrReadFailure(err)
	}

	next := make([]uuid.UUID, 0, len(videos))
	targetSeen, draggingSeen := false, false
	for _, video := range videos {
		if video.ID == draggingID {
			draggingSeen = true
			continue
		}
		next = append(next, video.ID)
		if video.ID == targetID {
			targetSeen = true
		}
	}
	if !draggingSeen || !targetSeen {
		return nil, errors.ErrNotFound(nil)
	}

	for i, id := range next {
		if id == targetID {
			next = append(next[:i], append([]uuid.UUID{draggingID}, next[i:]...)...)
			break
		}
	}

	results := make([]dto.ReorderResultDTO, len(next))
	g := new(errgroup.Group)
	for i, id := range next {
		i, id := i, id
		g.Go(func() error {
			results[i] = dto.ReorderResultDTO{ID: id.String(), OrderIndex: i}
			if err := s.videos.UpdateOrderIndex(ctx, id, i); err != nil {
				results[i].Error = err.Error()
			}
			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

func (s *curationService) Delete(ctx context.Context, videoID uuid.UUID) error {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return errors.ErrNotFound(err)
	}

	if video.StoragePath != "" {
		if err := s.storage.Remove(ctx, []string{video.StoragePath}); err != nil {
			// Obje silinemese de satır silinir; blob orphan kalabilir
			s.log.Warn("could not remove blob", "path", video.StoragePath, "error", err)
		}
	}

	if err := s.videos.Delete(ctx, videoID); err != nil {
		return errors.ErrInternal(err)
	}
	s.log.Info("video deleted", "video_id", videoID)
	return nil
}
