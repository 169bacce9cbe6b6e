package repositories

import (
	"context"

	"gorm.io/gorm"

	"video-guestbook/internal/domain/entities"
	"video-guestbook/internal/domain/repositories"
)

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) repositories.NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *entities.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}
