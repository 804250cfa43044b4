package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"motohub/internal/model"
)

// imageOrder keeps every nested image array primary-first, then by upload time.
const imageOrder = "is_primary DESC, uploaded_at ASC"

// ListingRepository defines listing persistence operations.
type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) error
	Update(ctx context.Context, listing *model.Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	ListFeatured(ctx context.Context) ([]model.Listing, error)
	ListAll(ctx context.Context) ([]model.Listing, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Upsert(ctx context.Context, listing *model.Listing) error
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository.
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

// Create creates a new listing.
func (r *listingRepository) Create(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

// Update saves all mutable columns of an existing listing. Associations are
// omitted so a field replace never touches image rows.
func (r *listingRepository) Update(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(listing).Error
}

// FindByID finds a visible (not soft-deleted) listing by ID with its images
// preloaded in display order.
func (r *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	var listing model.Listing
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order(imageOrder) }).
		Where("id = ?", id).
		First(&listing).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// ListFeatured lists visible featured listings, newest first, each with its
// images preloaded in display order.
func (r *listingRepository) ListFeatured(ctx context.Context) ([]model.Listing, error) {
	var listings []model.Listing
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order(imageOrder) }).
		Where("featured = ?", true).
		Order("created_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// ListAll lists every visible listing regardless of the featured flag, newest
// first, with images preloaded in display order.
func (r *listingRepository) ListAll(ctx context.Context) ([]model.Listing, error) {
	var listings []model.Listing
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order(imageOrder) }).
		Order("created_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// SoftDelete stamps deleted_at on the given id. Stamping a nonexistent or
// already-deleted id affects zero rows and is not an error.
func (r *listingRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Listing{}).Error
}

// Upsert creates the listing or overwrites an existing row with the same id.
func (r *listingRepository) Upsert(ctx context.Context, listing *model.Listing) error {
	var existing model.Listing
	err := r.db.WithContext(ctx).Where("id = ?", listing.ID).First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).Save(listing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.WithContext(ctx).Create(listing).Error
}
