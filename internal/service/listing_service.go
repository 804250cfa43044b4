package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"motohub/internal/cache"
	apperrors "motohub/internal/errors"
	"motohub/internal/model"
	"motohub/internal/repository"
	"motohub/internal/upload"
)

const (
	listingsFeedKey = "feed:listings"
	feedCacheTTL    = time.Minute
)

// ListingInput carries the mutable listing fields from a create or update
// request. Featured is a pointer so an omitted flag can default to true.
type ListingInput struct {
	Name        string
	Price       string
	Description string
	Year        string
	Mileage     string
	Location    string
	Featured    *bool
}

// ListingService handles listing business rules.
type ListingService interface {
	List(ctx context.Context) ([]model.Listing, error)
	Create(ctx context.Context, input ListingInput) (*model.Listing, error)
	Update(ctx context.Context, id uuid.UUID, input ListingInput) (*model.Listing, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// AttachImages stores the uploaded files and their rows for an existing
	// visible listing. A nonexistent listing writes nothing; a failed row
	// insert removes every file written for this request.
	AttachImages(ctx context.Context, listingID uuid.UUID, files []*multipart.FileHeader, baseURL string) ([]model.Image, error)
}

type listingService struct {
	listingRepo repository.ListingRepository
	imageRepo   repository.ImageRepository
	uploader    upload.Uploader
	cache       *cache.Client
}

// NewListingService creates a new listing service.
func NewListingService(
	listingRepo repository.ListingRepository,
	imageRepo repository.ImageRepository,
	uploader upload.Uploader,
	cacheClient *cache.Client,
) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		imageRepo:   imageRepo,
		uploader:    uploader,
		cache:       cacheClient,
	}
}

// List returns the public feed: visible featured listings, newest first, with
// nested images in display order. Served read-through from cache.
func (s *listingService) List(ctx context.Context) ([]model.Listing, error) {
	if data, _ := s.cache.Get(ctx, listingsFeedKey); data != nil {
		var cached []model.Listing
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	listings, err := s.listingRepo.ListFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	normalizeImages(listings)

	if data, err := json.Marshal(listings); err == nil {
		s.cache.Set(ctx, listingsFeedKey, data, feedCacheTTL)
	}
	return listings, nil
}

// Create inserts a listing; featured defaults to true when omitted.
func (s *listingService) Create(ctx context.Context, input ListingInput) (*model.Listing, error) {
	listing := &model.Listing{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Year:        input.Year,
		Mileage:     input.Mileage,
		Location:    input.Location,
		Featured:    featuredOrDefault(input.Featured),
		Images:      []model.Image{},
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	s.invalidateFeed(ctx)
	return listing, nil
}

// Update does a full-field replace of a visible listing's mutable columns.
func (s *listingService) Update(ctx context.Context, id uuid.UUID, input ListingInput) (*model.Listing, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}

	listing.Name = input.Name
	listing.Price = input.Price
	listing.Description = input.Description
	listing.Year = input.Year
	listing.Mileage = input.Mileage
	listing.Location = input.Location
	listing.Featured = featuredOrDefault(input.Featured)

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}
	s.invalidateFeed(ctx)

	if listing.Images == nil {
		listing.Images = []model.Image{}
	}
	return listing, nil
}

// SoftDelete stamps deleted_at unconditionally. A nonexistent or already
// deleted id is a silent no-op.
func (s *listingService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if err := s.listingRepo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	s.invalidateFeed(ctx)
	return nil
}

// AttachImages verifies the listing before any file or row is persisted.
func (s *listingService) AttachImages(ctx context.Context, listingID uuid.UUID, files []*multipart.FileHeader, baseURL string) ([]model.Image, error) {
	if _, err := s.listingRepo.FindByID(ctx, listingID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}

	existing, err := s.imageRepo.ListByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	stored, err := s.uploader.SaveAll(files)
	if err != nil {
		return nil, err
	}

	images := make([]model.Image, 0, len(stored))
	for i, sf := range stored {
		images = append(images, model.Image{
			ListingID:    listingID,
			URL:          fmt.Sprintf("%s/uploads/%s", baseURL, sf.Filename),
			OriginalName: sf.OriginalName,
			Size:         sf.Size,
			// The first image a listing ever receives becomes its primary.
			IsPrimary: len(existing) == 0 && i == 0,
		})
	}

	if err := s.imageRepo.CreateBatch(ctx, images); err != nil {
		s.uploader.Remove(stored)
		log.Printf("attach images: batch insert failed, cleaned up %d files: %v", len(stored), err)
		return nil, fmt.Errorf("create images: %w", err)
	}

	s.invalidateFeed(ctx)
	return images, nil
}

func (s *listingService) invalidateFeed(ctx context.Context) {
	s.cache.Delete(ctx, listingsFeedKey)
}

func featuredOrDefault(featured *bool) bool {
	if featured == nil {
		return true
	}
	return *featured
}

// normalizeImages replaces nil image slices so JSON renders [] instead of null.
func normalizeImages(listings []model.Listing) {
	for i := range listings {
		if listings[i].Images == nil {
			listings[i].Images = []model.Image{}
		}
	}
}
