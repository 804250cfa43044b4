package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"motohub/internal/model"
)

// ImageRepository defines image persistence operations.
type ImageRepository interface {
	// CreateBatch inserts all images in a single transaction so a failed
	// multi-file upload leaves no partial image set behind.
	CreateBatch(ctx context.Context, images []model.Image) error
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]model.Image, error)
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new image repository.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

// CreateBatch inserts all image rows atomically.
func (r *imageRepository) CreateBatch(ctx context.Context, images []model.Image) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range images {
			if err := tx.Create(&images[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListByListing lists a listing's images primary-first, then by upload time.
func (r *imageRepository) ListByListing(ctx context.Context, listingID uuid.UUID) ([]model.Image, error) {
	var images []model.Image
	err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order(imageOrder).
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}
