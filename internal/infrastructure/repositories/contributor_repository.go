package repositories

import (
	"context"

	"gorm.io/gorm"

	"video-guestbook/internal/domain/entities"
	"video-guestbook/internal/domain/repositories"
)

type contributorRepository struct {
	db *gorm.DB
}

func NewContributorRepository(db *gorm.DB) repositories.ContributorRepository {
	return &contributorRepository{db: db}
}

func (r *contributorRepository) Create(ctx context.Context, contributor *entities.Contributor) error {
	return r.db.WithContext(ctx).Create(contributor).Error
}
