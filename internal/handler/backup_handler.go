package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "motohub/internal/errors"
	"motohub/internal/service"
)

// BackupHandler handles operator backup endpoints.
type BackupHandler struct {
	backupService service.BackupService
}

// NewBackupHandler creates a new backup handler.
func NewBackupHandler(backupService service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export godoc
// @Summary Export all visible listings and testimonials
// @Tags backup
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ExportSnapshot
// @Failure 500 {object} errors.ErrorResponse
// @Router /backup [get]
func (h *BackupHandler) Export(c echo.Context) error {
	snapshot, err := h.backupService.Export(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			c.Logger().Error(err)
		}
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, snapshot)
}
