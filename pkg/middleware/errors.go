package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	"NoticeBoard/internal/config"
	"NoticeBoard/internal/notice"
	"NoticeBoard/internal/upload"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// SetupMiddleware wires CORS, panic recovery, request logging and the
// error envelope onto the Echo instance.
func SetupMiddleware(e *echo.Echo, logger *zap.Logger) {
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: corsOrigins(),
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(echomw.Recover())
	e.Use(RequestLogger(logger))
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)
}

func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if strings.TrimSpace(raw) == "" {
		return []string{"*"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// NewHTTPErrorHandler maps domain errors onto the wire contract:
// validation failures 400, unknown ids 404, upload rejections 400 with a
// machine-readable code, everything else 500. The envelope is
// {message, stack?}; stack is attached only outside production mode.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := echo.Map{}

		var validationErr *notice.ValidationError
		var uploadErr *upload.Error
		var httpErr *echo.HTTPError
		switch {
		case errors.Is(err, notice.ErrNotFound):
			status = http.StatusNotFound
			body["message"] = "Notice not found"
		case errors.As(err, &validationErr):
			status = http.StatusBadRequest
			body["message"] = validationErr.Error()
		case errors.As(err, &uploadErr):
			status = http.StatusBadRequest
			body["message"] = uploadErr.Message
			body["code"] = uploadErr.Code
		case errors.As(err, &httpErr):
			status = httpErr.Code
			body["message"] = fmt.Sprintf("%v", httpErr.Message)
		default:
			body["message"] = err.Error()
			logger.Error("request failed", zap.Error(err))
		}

		if !config.IsProduction() {
			body["stack"] = string(debug.Stack())
		}

		if jsonErr := c.JSON(status, body); jsonErr != nil {
			logger.Error("failed to write error response", zap.Error(jsonErr))
		}
	}
}
