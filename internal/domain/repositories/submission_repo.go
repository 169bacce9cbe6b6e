package repositories

import (
	"context"

	"github.com/google/uuid"

	"video-guestbook/internal/domain/entities"
)

type ContributorRepository interface {
	Create(ctx context.Context, contributor *entities.Contributor) error
}

type VideoRepository interface {
	Create(ctx context.Context, video *entities.Video) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Video, error)
	// ListForCuration returns videos with their contributor preloaded,
	// ordered by order_index (nulls last) then created_at desc.
	ListForCuration(ctx context.Context) ([]entities.Video, error)
	UpdateTags(ctx context.Context, id uuid.UUID, tags []string) error
	UpdateFlag(ctx context.Context, id uuid.UUID, field string, value bool) error
	UpdateOrderIndex(ctx context.Context, id uuid.UUID, index int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) error
}
