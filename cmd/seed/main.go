package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"motohub/internal/config"
	"motohub/internal/db"
	"motohub/internal/model"
	"motohub/internal/repository"
	"motohub/internal/service"
)

const defaultSnapshotPath = "backup.json"

func main() {
	log.Println("Starting import script...")

	path := defaultSnapshotPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN, cfg.DBTLSSkipVerify)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.Listing{}, &model.Image{}, &model.Testimonial{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	log.Printf("Reading snapshot from: %s", path)
	snapshot, err := readSnapshot(path)
	if err != nil {
		log.Fatalf("Failed to read snapshot: %v", err)
	}
	log.Printf("Snapshot format v%d generated at %s: %d listings, %d testimonials",
		snapshot.FormatVersion, snapshot.GeneratedAt, len(snapshot.Listings), len(snapshot.Testimonials))

	listingRepo := repository.NewListingRepository(gormDB)
	testimonialRepo := repository.NewTestimonialRepository(gormDB)
	ctx := context.Background()

	log.Println("Importing snapshot into database...")
	listings, testimonials, err := importSnapshot(ctx, listingRepo, testimonialRepo, snapshot)
	if err != nil {
		log.Fatalf("Failed to import snapshot: %v", err)
	}

	log.Printf("Import completed successfully!")
	log.Printf("  - Listings upserted: %d", listings)
	log.Printf("  - Testimonials upserted: %d", testimonials)
}

// readSnapshot parses a backup export file produced by GET /api/backup.
func readSnapshot(path string) (*service.ExportSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var snapshot service.ExportSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parse snapshot JSON: %w", err)
	}
	if snapshot.FormatVersion > service.ExportFormatVersion {
		return nil, fmt.Errorf("unsupported snapshot format version %d", snapshot.FormatVersion)
	}
	return &snapshot, nil
}

// importSnapshot upserts every listing (with its images) and testimonial.
func importSnapshot(
	ctx context.Context,
	listingRepo repository.ListingRepository,
	testimonialRepo repository.TestimonialRepository,
	snapshot *service.ExportSnapshot,
) (listings int, testimonials int, err error) {
	for i := range snapshot.Listings {
		listing := snapshot.Listings[i]
		if err := listingRepo.Upsert(ctx, &listing); err != nil {
			return listings, testimonials, fmt.Errorf("upsert listing %s: %w", listing.ID, err)
		}
		listings++
	}

	for i := range snapshot.Testimonials {
		testimonial := snapshot.Testimonials[i]
		if err := testimonialRepo.Upsert(ctx, &testimonial); err != nil {
			return listings, testimonials, fmt.Errorf("upsert testimonial %s: %w", testimonial.ID, err)
		}
		testimonials++
	}

	return listings, testimonials, nil
}
