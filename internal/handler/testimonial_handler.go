package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "motohub/internal/errors"
	"motohub/internal/service"
)

// TestimonialHandler handles testimonial endpoints.
type TestimonialHandler struct {
	testimonialService service.TestimonialService
}

// NewTestimonialHandler creates a new testimonial handler.
func NewTestimonialHandler(testimonialService service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

// TestimonialRequest represents testimonial create/update fields.
type TestimonialRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
	Text     string `json:"text" validate:"required"`
	Color    string `json:"color"`
}

func (r *TestimonialRequest) toInput() service.TestimonialInput {
	return service.TestimonialInput{
		Name:     r.Name,
		Location: r.Location,
		Text:     r.Text,
		Color:    r.Color,
	}
}

// List godoc
// @Summary List testimonials
// @Tags testimonials
// @Produce json
// @Success 200 {array} model.Testimonial
// @Failure 500 {object} errors.ErrorResponse
// @Router /testimonials [get]
func (h *TestimonialHandler) List(c echo.Context) error {
	testimonials, err := h.testimonialService.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, testimonials)
}

// Create godoc
// @Summary Create a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TestimonialRequest true "Testimonial fields"
// @Success 201 {object} model.Testimonial
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /testimonials [post]
func (h *TestimonialHandler) Create(c echo.Context) error {
	var req TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: err.Error()})
	}

	testimonial, err := h.testimonialService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, testimonial)
}

// Update godoc
// @Summary Replace a testimonial's fields
// @Tags testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Param request body TestimonialRequest true "Testimonial fields"
// @Success 200 {object} model.Testimonial
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /testimonials/{id} [put]
func (h *TestimonialHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return h.fail(c, apperrors.ErrTestimonialNotFound)
	}

	var req TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: err.Error()})
	}

	testimonial, err := h.testimonialService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, testimonial)
}

// Delete godoc
// @Summary Soft-delete a testimonial
// @Tags testimonials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 200 {object} AckResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusOK, AckResponse{Message: "testimonial deleted"})
	}

	if err := h.testimonialService.SoftDelete(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, AckResponse{Message: "testimonial deleted"})
}

func (h *TestimonialHandler) fail(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
