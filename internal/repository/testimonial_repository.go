package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"motohub/internal/model"
)

// TestimonialRepository defines testimonial persistence operations.
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *model.Testimonial) error
	Update(ctx context.Context, testimonial *model.Testimonial) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Testimonial, error)
	ListVisible(ctx context.Context) ([]model.Testimonial, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Upsert(ctx context.Context, testimonial *model.Testimonial) error
}

type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository creates a new testimonial repository.
func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

// Create creates a new testimonial.
func (r *testimonialRepository) Create(ctx context.Context, testimonial *model.Testimonial) error {
	return r.db.WithContext(ctx).Create(testimonial).Error
}

// Update saves all mutable columns of an existing testimonial.
func (r *testimonialRepository) Update(ctx context.Context, testimonial *model.Testimonial) error {
	return r.db.WithContext(ctx).Save(testimonial).Error
}

// FindByID finds a visible testimonial by ID.
func (r *testimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Testimonial, error) {
	var testimonial model.Testimonial
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&testimonial).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// ListVisible lists all visible testimonials, newest first.
func (r *testimonialRepository) ListVisible(ctx context.Context) ([]model.Testimonial, error) {
	var testimonials []model.Testimonial
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

// SoftDelete stamps deleted_at on the given id; zero affected rows is not an error.
func (r *testimonialRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Testimonial{}).Error
}

// Upsert creates the testimonial or overwrites an existing row with the same id.
func (r *testimonialRepository) Upsert(ctx context.Context, testimonial *model.Testimonial) error {
	var existing model.Testimonial
	err := r.db.WithContext(ctx).Where("id = ?", testimonial.ID).First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).Save(testimonial).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.WithContext(ctx).Create(testimonial).Error
}
