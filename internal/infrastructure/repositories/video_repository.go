package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"video-guestbook/internal/domain/entities"
	"video-guestbook/internal/domain/repositories"
)

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) repositories.VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *entities.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *videoRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Video, error) {
	var video entities.Video
	if err := r.db.WithContext(ctx).Preload("Contributor").First(&video, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) ListForCuration(ctx context.Context) ([]entities.Video, error) {
	var videos []entities.Video
	err := r.db.WithContext(ctx).
		Preload("Contributor").
		Order("order_index ASC NULLS LAST").
		Order("created_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) UpdateTags(ctx context.Context, id uuid.UUID, tags []string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Video{}).
		Where("id = ?", id).
		Update("tags", datatypes.NewJSONSlice(tags)).Error
}

func (r *videoRepository) UpdateFlag(ctx context.Context, id uuid.UUID, field string, value bool) error {
	return r.db.WithContext(ctx).
		Model(&entities.Video{}).
		Where("id = ?", id).
		Update(field, value).Error
}

func (r *videoRepository) UpdateOrderIndex(ctx context.Context, id uuid.UUID, index int) error {
	return r.db.WithContext(ctx).
		Model(&entities.Video{}).
		Where("id = ?", id).
		Update("order_index", index).Error
}

func (r *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Video{}, "id = ?", id).Error
}
