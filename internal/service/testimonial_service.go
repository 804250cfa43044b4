package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"motohub/internal/cache"
	apperrors "motohub/internal/errors"
	"motohub/internal/model"
	"motohub/internal/repository"
)

const testimonialsFeedKey = "feed:testimonials"

// TestimonialInput carries the mutable testimonial fields.
type TestimonialInput struct {
	Name     string
	Location string
	Text     string
	Color    string
}

// TestimonialService handles testimonial business rules. It mirrors the
// listing lifecycle minus images and the featured flag.
type TestimonialService interface {
	List(ctx context.Context) ([]model.Testimonial, error)
	Create(ctx context.Context, input TestimonialInput) (*model.Testimonial, error)
	Update(ctx context.Context, id uuid.UUID, input TestimonialInput) (*model.Testimonial, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type testimonialService struct {
	testimonialRepo repository.TestimonialRepository
	cache           *cache.Client
}

// NewTestimonialService creates a new testimonial service.
func NewTestimonialService(testimonialRepo repository.TestimonialRepository, cacheClient *cache.Client) TestimonialService {
	return &testimonialService{
		testimonialRepo: testimonialRepo,
		cache:           cacheClient,
	}
}

// List returns visible testimonials, newest first, read-through cached.
func (s *testimonialService) List(ctx context.Context) ([]model.Testimonial, error) {
	if data, _ := s.cache.Get(ctx, testimonialsFeedKey); data != nil {
		var cached []model.Testimonial
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	testimonials, err := s.testimonialRepo.ListVisible(ctx)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}

	if data, err := json.Marshal(testimonials); err == nil {
		s.cache.Set(ctx, testimonialsFeedKey, data, feedCacheTTL)
	}
	return testimonials, nil
}

// Create inserts a testimonial; color defaults when omitted.
func (s *testimonialService) Create(ctx context.Context, input TestimonialInput) (*model.Testimonial, error) {
	testimonial := &model.Testimonial{
		Name:     input.Name,
		Location: input.Location,
		Text:     input.Text,
		Color:    colorOrDefault(input.Color),
	}

	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	s.invalidateFeed(ctx)
	return testimonial, nil
}

// Update does a full-field replace of a visible testimonial.
func (s *testimonialService) Update(ctx context.Context, id uuid.UUID, input TestimonialInput) (*model.Testimonial, error) {
	testimonial, err := s.testimonialRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("find testimonial: %w", err)
	}

	testimonial.Name = input.Name
	testimonial.Location = input.Location
	testimonial.Text = input.Text
	testimonial.Color = colorOrDefault(input.Color)

	if err := s.testimonialRepo.Update(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("update testimonial: %w", err)
	}
	s.invalidateFeed(ctx)
	return testimonial, nil
}

// SoftDelete stamps deleted_at unconditionally; nonexistent ids are a no-op.
func (s *testimonialService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if err := s.testimonialRepo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	s.invalidateFeed(ctx)
	return nil
}

func (s *testimonialService) invalidateFeed(ctx context.Context) {
	s.cache.Delete(ctx, testimonialsFeedKey)
}

func colorOrDefault(color string) string {
	if color == "" {
		return model.DefaultTestimonialColor
	}
	return color
}
