package service

import (
	"context"
	"fmt"

	"motohub/internal/model"
	"motohub/internal/repository"
)

// InquiryInput carries the fields of a sell-to-us submission.
type InquiryInput struct {
	Name    string
	Phone   string
	Model   string
	Year    string
	Details string
}

// InquiryService records customer inquiries. Photos attached to a submission
// are evidence for a client-side flow only: their count is recorded and the
// files themselves are never persisted.
type InquiryService interface {
	Submit(ctx context.Context, input InquiryInput, photosCount int) (*model.Inquiry, error)
}

type inquiryService struct {
	inquiryRepo repository.InquiryRepository
}

// NewInquiryService creates a new inquiry service.
func NewInquiryService(inquiryRepo repository.InquiryRepository) InquiryService {
	return &inquiryService{inquiryRepo: inquiryRepo}
}

// Submit inserts the inquiry unconditionally; the store's own constraints are
// the only validation.
func (s *inquiryService) Submit(ctx context.Context, input InquiryInput, photosCount int) (*model.Inquiry, error) {
	inquiry := &model.Inquiry{
		Name:        input.Name,
		Phone:       input.Phone,
		Model:       input.Model,
		Year:        input.Year,
		Details:     input.Details,
		PhotosCount: photosCount,
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	return inquiry, nil
}
