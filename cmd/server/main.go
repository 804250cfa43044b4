package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "motohub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"motohub/internal/auth"
	"motohub/internal/cache"
	"motohub/internal/config"
	"motohub/internal/db"
	"motohub/internal/handler"
	"motohub/internal/model"
	"motohub/internal/repository"
	"motohub/internal/router"
	"motohub/internal/service"
	"motohub/internal/upload"
)

// @title MotoHub Dealership API
// @version 1.0
// @description CRUD backend for the dealership website: listings, images, testimonials, inquiries, admin auth.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, cfg.DBTLSSkipVerify)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Image{},
			&model.Listing{},
			&model.Testimonial{},
			&model.Inquiry{},
			&model.AdminUser{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Listing{},
		&model.Image{},
		&model.Testimonial{},
		&model.Inquiry{},
		&model.AdminUser{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	uploader, err := upload.NewUploader(cfg.UploadDir)
	if err != nil {
		log.Fatalf("uploader init: %v", err)
	}

	// Initialize repositories
	listingRepo := repository.NewListingRepository(gormDB)
	imageRepo := repository.NewImageRepository(gormDB)
	testimonialRepo := repository.NewTestimonialRepository(gormDB)
	inquiryRepo := repository.NewInquiryRepository(gormDB)
	adminRepo := repository.NewAdminUserRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(adminRepo, jwtService)
	listingService := service.NewListingService(listingRepo, imageRepo, uploader, cacheClient)
	testimonialService := service.NewTestimonialService(testimonialRepo, cacheClient)
	inquiryService := service.NewInquiryService(inquiryRepo)
	backupService := service.NewBackupService(listingRepo, testimonialRepo)

	// Provision the admin credential at first boot
	if err := authService.SeedAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	listingHandler := handler.NewListingHandler(listingService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)
	backupHandler := handler.NewBackupHandler(backupService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		listingHandler,
		testimonialHandler,
		inquiryHandler,
		backupHandler,
	)

	log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
