package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"motohub/internal/config"
	"motohub/internal/handler"
)

// HealthResponse represents the health check payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	listingHandler *handler.ListingHandler,
	testimonialHandler *handler.TestimonialHandler,
	inquiryHandler *handler.InquiryHandler,
	backupHandler *handler.BackupHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded images are served statically from the public uploads path.
	e.Static("/uploads", cfg.UploadDir)

	// Serve the static frontend; unmatched paths fall back to its entry
	// document so client-side routing works.
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  cfg.PublicDir,
		Index: "index.html",
		HTML5: true,
	}))

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{
			Status:    "ok",
			Message:   "motohub api is running",
			Timestamp: time.Now().UTC(),
		})
	})

	// Public routes
	api.GET("/motorcycles", listingHandler.List)
	api.GET("/testimonials", testimonialHandler.List)
	api.POST("/inquiries", inquiryHandler.Submit)
	api.POST("/admin/login", authHandler.Login)
	api.POST("/admin/verify", authHandler.Verify)

	// Secured routes: every mutating resource operation and the backup
	// export require a valid admin session token.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.POST("/motorcycles", listingHandler.Create)
	secured.PUT("/motorcycles/:id", listingHandler.Update)
	secured.DELETE("/motorcycles/:id", listingHandler.Delete)
	secured.POST("/motorcycles/:id/images", listingHandler.AttachImages)

	secured.POST("/testimonials", testimonialHandler.Create)
	secured.PUT("/testimonials/:id", testimonialHandler.Update)
	secured.DELETE("/testimonials/:id", testimonialHandler.Delete)

	secured.GET("/backup", backupHandler.Export)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
