package pkg

import (
	"context"
	"errors"
	"net/http"
	"os"

	"NoticeBoard/internal/config"
	"NoticeBoard/internal/meta"
	"NoticeBoard/internal/notice"
	"NoticeBoard/internal/upload"
	"NoticeBoard/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(config.NewLogger),
	fx.Provide(config.NewMongoDBConfig),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(config.NewMeta),
	fx.Provide(config.NewUploadConfig),
	fx.Provide(notice.NewNoticeRepository),
	fx.Provide(notice.NewNoticeService),
	fx.Provide(notice.NewNoticeHandler),
	fx.Provide(meta.NewMetaHandler),
	fx.Provide(upload.NewUploadService),
	fx.Provide(upload.NewUploadHandler),
	fx.Invoke(config.EnsureNoticeIndexes),
	fx.Invoke(RegisterRoutes))

func NewEchoServer(lc fx.Lifecycle, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	middleware.SetupMiddleware(e, logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Server running", zap.String("port", port))
			go func() {
				if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("Failed to start the server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func RegisterRoutes(
	e *echo.Echo,
	noticeHandler *notice.NoticeHandler,
	metaHandler *meta.MetaHandler,
	uploadHandler *upload.UploadHandler,
	uploadCfg *config.UploadConfig,
) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "API is running...")
	})

	api := e.Group("/api")

	api.GET("/meta", metaHandler.GetMeta)
	api.GET("/meta/departments", metaHandler.GetDepartments)
	api.GET("/meta/notice-types", metaHandler.GetNoticeTypes)

	api.POST("/notices", noticeHandler.CreateNotice)
	api.GET("/notices", noticeHandler.ListNotices)
	api.GET("/notices/:id", noticeHandler.GetNotice)
	api.PUT("/notices/:id", noticeHandler.UpdateNotice)
	api.PATCH("/notices/:id/status", noticeHandler.UpdateNoticeStatus)

	api.POST("/uploads", uploadHandler.UploadFiles)
	e.Static("/uploads", uploadCfg.Dir)
}
