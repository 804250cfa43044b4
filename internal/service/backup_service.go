package service

import (
	"context"
	"fmt"
	"time"

	"motohub/internal/model"
	"motohub/internal/repository"
)

// ExportFormatVersion identifies the backup snapshot layout.
const ExportFormatVersion = 1

// ExportSnapshot is a full operator backup: every visible listing (regardless
// of the featured flag) with nested images, and every visible testimonial. The
// two reads are not wrapped in one transaction; the snapshot is consistent
// enough for backup purposes.
type ExportSnapshot struct {
	Listings      []model.Listing     `json:"listings"`
	Testimonials  []model.Testimonial `json:"testimonials"`
	GeneratedAt   time.Time           `json:"generatedAt"`
	FormatVersion int                 `json:"formatVersion"`
}

// BackupService produces export snapshots.
type BackupService interface {
	Export(ctx context.Context) (*ExportSnapshot, error)
}

type backupService struct {
	listingRepo     repository.ListingRepository
	testimonialRepo repository.TestimonialRepository
}

// NewBackupService creates a new backup service.
func NewBackupService(listingRepo repository.ListingRepository, testimonialRepo repository.TestimonialRepository) BackupService {
	return &backupService{
		listingRepo:     listingRepo,
		testimonialRepo: testimonialRepo,
	}
}

// Export reads the full visible dataset. Read-only, no side effects.
func (s *backupService) Export(ctx context.Context) (*ExportSnapshot, error) {
	listings, err := s.listingRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export listings: %w", err)
	}
	normalizeImages(listings)

	testimonials, err := s.testimonialRepo.ListVisible(ctx)
	if err != nil {
		return nil, fmt.Errorf("export testimonials: %w", err)
	}

	return &ExportSnapshot{
		Listings:      listings,
		Testimonials:  testimonials,
		GeneratedAt:   time.Now().UTC(),
		FormatVersion: ExportFormatVersion,
	}, nil
}
