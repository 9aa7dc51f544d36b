package notice

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// NoticeHandler handles HTTP requests for notices. Domain errors are
// returned as-is and rendered by the central error handler.
type NoticeHandler struct {
	service *NoticeService
}

// NewNoticeHandler creates a new NoticeHandler.
func NewNoticeHandler(service *NoticeService) *NoticeHandler {
	return &NoticeHandler{service: service}
}

// UpdateStatusRequest is the PATCH /api/notices/:id/status body.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CreateNotice handles POST /api/notices.
func (h *NoticeHandler) CreateNotice(c echo.Context) error {
	var p Payload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	n, err := h.service.Create(c.Request().Context(), &p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, n)
}

// ListNotices handles GET /api/notices.
func (h *NoticeHandler) ListNotices(c echo.Context) error {
	q := ListQuery{
		Status:     c.QueryParam("status"),
		Active:     strings.EqualFold(strings.TrimSpace(c.QueryParam("active")), "true"),
		Search:     c.QueryParam("q"),
		Date:       c.QueryParam("date"),
		Department: c.QueryParam("department"),
		Page:       parsePositiveInt(c.QueryParam("page"), DefaultPage),
		Limit:      parsePositiveInt(c.QueryParam("limit"), DefaultLimit),
	}

	res, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// GetNotice handles GET /api/notices/:id.
func (h *NoticeHandler) GetNotice(c echo.Context) error {
	n, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// UpdateNotice handles PUT /api/notices/:id.
func (h *NoticeHandler) UpdateNotice(c echo.Context) error {
	var p Payload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	n, err := h.service.Update(c.Request().Context(), c.Param("id"), &p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// UpdateNoticeStatus handles PATCH /api/notices/:id/status.
func (h *NoticeHandler) UpdateNoticeStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	n, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// parsePositiveInt mirrors the list-parameter rule: anything that is not a
// positive integer falls back to the default.
func parsePositiveInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
