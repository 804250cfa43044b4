package repository

import (
	"context"

	"gorm.io/gorm"

	"motohub/internal/model"
)

// InquiryRepository defines inquiry persistence operations. Inquiries are
// append-only; there is no update or delete.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *model.Inquiry) error
}

type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository creates a new inquiry repository.
func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

// Create creates a new inquiry.
func (r *inquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}
