// Package server wires the HTTP surface: routes, middleware, and the
// embedded dashboard page.
package server

import (
	"context"
	_ "embed"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/0r3ntal/RigMonitor/internal/handler"
)

//go:embed web/index.html
var indexHTML string

type echoValidator struct {
	validate *validator.Validate
}

func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// NewRouter builds the echo instance with all routes registered.
func NewRouter(logger *zap.Logger, h *handler.SensorHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &echoValidator{validate: validator.New()}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug("http request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))

	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, indexHTML)
	})

	api := e.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/categories", h.Categories)
	api.GET("/sensors/:category", h.Overview)
	api.GET("/sensors/:category/:id", h.Detail)
	api.GET("/ws", h.Stream)

	return e
}

// Server is the HTTP server for the dashboard.
type Server struct {
	logger *zap.Logger
	echo   *echo.Echo
	addr   string
}

func New(logger *zap.Logger, addr string, h *handler.SensorHandler) *Server {
	return &Server{
		logger: logger,
		echo:   NewRouter(logger, h),
		addr:   addr,
	}
}

// Start listens and serves until Shutdown. It returns
// http.ErrServerClosed after a clean shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server listening", zap.String("addr", s.addr))
	return s.echo.Start(s.addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
