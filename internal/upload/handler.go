package upload

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UploadHandler handles HTTP requests for attachment uploads.
type UploadHandler struct {
	service *UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(service *UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// UploadFiles handles POST /api/uploads. Files arrive in the multipart
// field "files".
func (h *UploadHandler) UploadFiles(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, `No files uploaded. Use multipart field "files".`)
	}

	files := form.File["files"]
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, `No files uploaded. Use multipart field "files".`)
	}

	attachments, err := h.service.SaveFiles(files)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"attachments": attachments})
}
