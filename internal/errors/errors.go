package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrListingNotFound is returned when a listing id does not resolve to a visible row.
	ErrListingNotFound = errors.New("listing not found")
	// ErrTestimonialNotFound is returned when a testimonial id does not resolve to a visible row.
	ErrTestimonialNotFound = errors.New("testimonial not found")
	// ErrInvalidCredentials is returned when the admin login check fails.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrNoFilesUploaded is returned when an image upload request carries no files.
	ErrNoFilesUploaded = errors.New("no files uploaded")
	// ErrTooManyFiles is returned when a request carries more files than allowed.
	ErrTooManyFiles = errors.New("too many files")
	// ErrFileTooLarge is returned when an uploaded file exceeds the size limit.
	ErrFileTooLarge = errors.New("file exceeds maximum size")
	// ErrUnsupportedFileType is returned when an uploaded file is not an accepted image type.
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized is a
// 500 with a generic message; the caller logs the detail server-side.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrListingNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "LISTING_NOT_FOUND")
	case errors.Is(err, ErrTestimonialNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TESTIMONIAL_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNoFilesUploaded):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_FILES")
	case errors.Is(err, ErrTooManyFiles):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TOO_MANY_FILES")
	case errors.Is(err, ErrFileTooLarge):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "FILE_TOO_LARGE")
	case errors.Is(err, ErrUnsupportedFileType):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNSUPPORTED_FILE_TYPE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
