package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "motohub/internal/errors"
	"motohub/internal/service"
)

// photosFormField is the multipart field carrying inquiry photos. The files
// are counted and discarded; nothing is written to disk.
const photosFormField = "photos"

// InquiryHandler handles sell-to-us inquiry endpoints.
type InquiryHandler struct {
	inquiryService service.InquiryService
}

// NewInquiryHandler creates a new inquiry handler.
func NewInquiryHandler(inquiryService service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// InquiryRequest represents an inquiry submission.
type InquiryRequest struct {
	Name    string `json:"name" form:"name"`
	Phone   string `json:"phone" form:"phone"`
	Model   string `json:"model" form:"model"`
	Year    string `json:"year" form:"year"`
	Details string `json:"details" form:"details"`
}

// Submit godoc
// @Summary Submit a customer inquiry
// @Tags inquiries
// @Accept mpfd
// @Produce json
// @Param name formData string true "Name"
// @Param phone formData string true "Phone"
// @Param model formData string false "Motorcycle model"
// @Param year formData string false "Year"
// @Param details formData string false "Details"
// @Param photos formData file false "Photos (counted, not stored)"
// @Success 201 {object} model.Inquiry
// @Failure 500 {object} errors.ErrorResponse
// @Router /inquiries [post]
func (h *InquiryHandler) Submit(c echo.Context) error {
	var req InquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body"})
	}

	photosCount := 0
	if form, err := c.MultipartForm(); err == nil && form != nil {
		photosCount = len(form.File[photosFormField])
	}

	inquiry, err := h.inquiryService.Submit(c.Request().Context(), service.InquiryInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Model:   req.Model,
		Year:    req.Year,
		Details: req.Details,
	}, photosCount)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			c.Logger().Error(err)
		}
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, inquiry)
}
