package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"video-guestbook/internal/domain/entities"
)

// In-memory implementations of the submission repositories. Used by the
// service tests; they mirror the ordering semantics of the gorm versions.

type InMemoryContributorRepository struct {
	mu   sync.RWMutex
	Rows []entities.Contributor
}

func NewInMemoryContributorRepository() *InMemoryContributorRepository {
	return &InMemoryContributorRepository{}
}

func (r *InMemoryContributorRepository) Create(_ context.Context, contributor *entities.Contributor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Rows = append(r.Rows, *contributor)
	return nil
}

func (r *InMemoryContributorRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.Rows)
}

type InMemoryVideoRepository struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]*entities.Video
}

func NewInMemoryVideoRepository() *InMemoryVideoRepository {
	return &InMemoryVideoRepository{rows: make(map[uuid.UUID]*entities.Video)}
}

func (r *InMemoryVideoRepository) Create(_ context.Context, video *entities.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *video
	r.rows[video.ID] = &copied
	return nil
}

func (r *InMemoryVideoRepository) GetByID(_ context.Context, id uuid.UUID) (*entities.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	video, ok := r.rows[id]
	if !ok {
		return nil, fmt.Errorf("video %s not found", id)
	}
	copied := *video
	return &copied, nil
}

func (r *InMemoryVideoRepository) ListForCuration(_ context.Context) ([]entities.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	videos := make([]entities.Video, 0, len(r.rows))
	for _, video := range r.rows {
		videos = append(videos, *video)
	}
	sort.SliceStable(videos, func(i, j int) bool {
		a, b := videos[i], videos[j]
		switch {
		case a.OrderIndex != nil && b.OrderIndex != nil:
			if *a.OrderIndex != *b.OrderIndex {
				return *a.OrderIndex < *b.OrderIndex
			}
		case a.OrderIndex != nil:
			return true // nulls last
		case b.OrderIndex != nil:
			return false
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return videos, nil
}

func (r *InMemoryVideoRepository) UpdateTags(_ context.Context, id uuid.UUID, tags []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	video, ok := r.rows[id]
	if !ok {
		return fmt.Errorf("video %s not found", id)
	}
	video.Tags = datatypes.NewJSONSlice(tags)
	return nil
}

func (r *InMemoryVideoRepository) UpdateFlag(_ context.Context, id uuid.UUID, field string, value bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	video, ok := r.rows[id]
	if !ok {
		return fmt.Errorf("video %s not found", id)
	}
	switch field {
	case "favorite":
		video.Favorite = value
	case "selected":
		video.Selected = value
	default:
		return fmt.Errorf("unknown flag %q", field)
	}
	return nil
}

func (r *InMemoryVideoRepository) UpdateOrderIndex(_ context.Context, id uuid.UUID, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	video, ok := r.rows[id]
	if !ok {
		return fmt.Errorf("video %s not found", id)
	}
	idx := index
	video.OrderIndex = &idx
	return nil
}

func (r *InMemoryVideoRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *InMemoryVideoRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows)
}

type InMemoryNoteRepository struct {
	mu   sync.RWMutex
	Rows []entities.Note
}

func NewInMemoryNoteRepository() *InMemoryNoteRepository {
	return &InMemoryNoteRepository{}
}

func (r *InMemoryNoteRepository) Create(_ context.Context, note *entities.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Rows = append(r.Rows, *note)
	return nil
}

func (r *InMemoryNoteRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.Rows)
}
