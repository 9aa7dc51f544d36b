package meta

import (
	"net/http"

	"NoticeBoard/internal/config"

	"github.com/labstack/echo/v4"
)

// MetaHandler serves the configured department and notice-type
// vocabularies the client builds its forms from.
type MetaHandler struct {
	meta *config.Meta
}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler(meta *config.Meta) *MetaHandler {
	return &MetaHandler{meta: meta}
}

// GetMeta handles GET /api/meta.
func (h *MetaHandler) GetMeta(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"departmentsOrIndividual": h.meta.DepartmentsOrIndividual,
		"noticeTypes":             h.meta.NoticeTypes,
	})
}

// GetDepartments handles GET /api/meta/departments.
func (h *MetaHandler) GetDepartments(c echo.Context) error {
	return c.JSON(http.StatusOK, h.meta.DepartmentsOrIndividual)
}

// GetNoticeTypes handles GET /api/meta/notice-types.
func (h *MetaHandler) GetNoticeTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.meta.NoticeTypes)
}
