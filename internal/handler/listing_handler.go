package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "motohub/internal/errors"
	"motohub/internal/service"
)

// imagesFormField is the multipart field carrying listing images.
const imagesFormField = "images"

// ListingHandler handles motorcycle listing endpoints.
type ListingHandler struct {
	listingService service.ListingService
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(listingService service.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// ListingRequest represents listing create/update fields.
type ListingRequest struct {
	Name        string `json:"name" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Description string `json:"description"`
	Year        string `json:"year"`
	Mileage     string `json:"mileage"`
	Location    string `json:"location"`
	Featured    *bool  `json:"featured"`
}

// AckResponse acknowledges an operation without a payload.
type AckResponse struct {
	Message string `json:"message"`
}

func (r *ListingRequest) toInput() service.ListingInput {
	return service.ListingInput{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Year:        r.Year,
		Mileage:     r.Mileage,
		Location:    r.Location,
		Featured:    r.Featured,
	}
}

// List godoc
// @Summary List featured motorcycle listings with images
// @Tags motorcycles
// @Produce json
// @Success 200 {array} model.Listing
// @Failure 500 {object} errors.ErrorResponse
// @Router /motorcycles [get]
func (h *ListingHandler) List(c echo.Context) error {
	listings, err := h.listingService.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, listings)
}

// Create godoc
// @Summary Create a motorcycle listing
// @Tags motorcycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ListingRequest true "Listing fields"
// @Success 201 {object} model.Listing
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /motorcycles [post]
func (h *ListingHandler) Create(c echo.Context) error {
	var req ListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: err.Error()})
	}

	listing, err := h.listingService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, listing)
}

// Update godoc
// @Summary Replace a motorcycle listing's fields
// @Tags motorcycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body ListingRequest true "Listing fields"
// @Success 200 {object} model.Listing
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /motorcycles/{id} [put]
func (h *ListingHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed id resolves to no visible row.
		return h.fail(c, apperrors.ErrListingNotFound)
	}

	var req ListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: err.Error()})
	}

	listing, err := h.listingService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, listing)
}

// Delete godoc
// @Summary Soft-delete a motorcycle listing
// @Tags motorcycles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} AckResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /motorcycles/{id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Stamping an id that cannot exist is the same no-op as stamping a
		// nonexistent one.
		return c.JSON(http.StatusOK, AckResponse{Message: "listing deleted"})
	}

	if err := h.listingService.SoftDelete(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, AckResponse{Message: "listing deleted"})
}

// AttachImages godoc
// @Summary Upload images for a listing
// @Tags motorcycles
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param images formData file true "Up to 5 image files"
// @Success 201 {array} model.Image
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /motorcycles/{id}/images [post]
func (h *ListingHandler) AttachImages(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return h.fail(c, apperrors.ErrListingNotFound)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return h.fail(c, apperrors.ErrNoFilesUploaded)
	}
	files := form.File[imagesFormField]
	if len(files) == 0 {
		return h.fail(c, apperrors.ErrNoFilesUploaded)
	}

	baseURL := fmt.Sprintf("%s://%s", c.Scheme(), c.Request().Host)
	images, err := h.listingService.AttachImages(c.Request().Context(), id, files, baseURL)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, images)
}

func (h *ListingHandler) fail(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
