package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"motohub/internal/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&model.Listing{}, &model.Image{}, &model.Testimonial{}))
	return db
}

func createListing(t *testing.T, db *gorm.DB, featured bool) *model.Listing {
	t.Helper()

	listing := &model.Listing{Name: "Honda CB150", Price: "KES 150000", Featured: featured}
	assert.NoError(t, db.Create(listing).Error)
	return listing
}

// Every insertion order must come back primary-first, then upload time
// ascending.
func TestImageRepository_ListByListing_Order(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// "primary" was uploaded second; sorted output is primary, oldest, newest.
	build := func(listingID uuid.UUID) map[string]model.Image {
		return map[string]model.Image{
			"oldest":  {ListingID: listingID, URL: "oldest", UploadedAt: base},
			"primary": {ListingID: listingID, URL: "primary", IsPrimary: true, UploadedAt: base.Add(time.Hour)},
			"newest":  {ListingID: listingID, URL: "newest", UploadedAt: base.Add(2 * time.Hour)},
		}
	}
	want := []string{"primary", "oldest", "newest"}

	permutations := [][]string{
		{"oldest", "primary", "newest"},
		{"oldest", "newest", "primary"},
		{"primary", "oldest", "newest"},
		{"primary", "newest", "oldest"},
		{"newest", "oldest", "primary"},
		{"newest", "primary", "oldest"},
	}

	db := openTestDB(t)
	repo := NewImageRepository(db)
	ctx := context.Background()

	for i, perm := range permutations {
		t.Run(fmt.Sprintf("insertion order %v", perm), func(t *testing.T) {
			listing := createListing(t, db, true)
			images := build(listing.ID)

			batch := make([]model.Image, 0, len(perm))
			for _, name := range perm {
				batch = append(batch, images[name])
			}
			assert.NoError(t, repo.CreateBatch(ctx, batch))

			got, err := repo.ListByListing(ctx, listing.ID)
			assert.NoError(t, err)
			assert.Len(t, got, len(want))
			for j, url := range want {
				assert.Equal(t, url, got[j].URL, "position %d for permutation %d", j, i)
			}
		})
	}
}

// The preloaded image arrays on listing reads obey the same ordering.
func TestListingRepository_PreloadsOrderedImages(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	db := openTestDB(t)
	listingRepo := NewListingRepository(db)
	imageRepo := NewImageRepository(db)
	ctx := context.Background()

	listing := createListing(t, db, true)
	assert.NoError(t, imageRepo.CreateBatch(ctx, []model.Image{
		{ListingID: listing.ID, URL: "newest", UploadedAt: base.Add(2 * time.Hour)},
		{ListingID: listing.ID, URL: "primary", IsPrimary: true, UploadedAt: base.Add(time.Hour)},
		{ListingID: listing.ID, URL: "oldest", UploadedAt: base},
	}))

	assertOrder := func(images []model.Image) {
		t.Helper()
		assert.Len(t, images, 3)
		assert.Equal(t, "primary", images[0].URL)
		assert.Equal(t, "oldest", images[1].URL)
		assert.Equal(t, "newest", images[2].URL)
	}

	found, err := listingRepo.FindByID(ctx, listing.ID)
	assert.NoError(t, err)
	assertOrder(found.Images)

	featured, err := listingRepo.ListFeatured(ctx)
	assert.NoError(t, err)
	assert.Len(t, featured, 1)
	assertOrder(featured[0].Images)

	all, err := listingRepo.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assertOrder(all[0].Images)
}

// A failed batch leaves no rows behind.
func TestImageRepository_CreateBatch_Atomic(t *testing.T) {
	db := openTestDB(t)
	repo := NewImageRepository(db)
	ctx := context.Background()

	listing := createListing(t, db, true)
	dup := uuid.New()
	err := repo.CreateBatch(ctx, []model.Image{
		{ID: dup, ListingID: listing.ID, URL: "one"},
		{ID: dup, ListingID: listing.ID, URL: "two"}, // duplicate PK fails the batch
	})
	assert.Error(t, err)

	got, err := repo.ListByListing(ctx, listing.ID)
	assert.NoError(t, err)
	assert.Empty(t, got)
}
