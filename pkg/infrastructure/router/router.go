package router

import (
	"net/http"
	"path/filepath"
	"todo-backend/pkg/adapter/controller"
	"todo-backend/pkg/infrastructure/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Path of route
const (
	RootPath        = "/"
	HealthCheckPath = "/health_check"
	TodosPath       = "/todos"
	TodoPath        = TodosPath + "/:id"
)

// Options of router
type Options struct {
	// StaticDir is served under the root path. Empty disables static files.
	StaticDir string
	// IndexFile is the page served on the root path, relative to StaticDir.
	IndexFile string
}

// New creates route endpoint
func New(ctrl controller.Controller, logger *zap.SugaredLogger, options Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return ulid.Make().String()
		},
	}))
	e.Use(requestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderXRequestedWith,
			echo.HeaderContentType,
			echo.HeaderAccept,
		},
	}))

	e.GET(HealthCheckPath, func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	todo := handler.NewTodo(ctrl.Todo)
	e.GET(TodosPath, todo.List)
	e.GET(TodoPath, todo.Get)
	e.POST(TodosPath, todo.Create)
	e.DELETE(TodoPath, todo.Delete)

	if options.StaticDir != "" {
		e.Static(RootPath, options.StaticDir)

		index := options.IndexFile
		if index == "" {
			index = "index.html"
		}
		indexPath := filepath.Join(options.StaticDir, index)
		e.GET(RootPath, func(c echo.Context) error {
			logger.Debugw("serving index page", "file", indexPath)
			return c.File(indexPath)
		})
	}

	return e
}

func requestLogger(logger *zap.SugaredLogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				logger.Errorw("request failed", append(fields, "error", v.Error)...)
				return nil
			}
			logger.Infow("request", fields...)
			return nil
		},
	})
}
