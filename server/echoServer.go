package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/IanAndy202/Hotel-App/config"
)

type echoServer struct {
	app *echo.Echo
	cfg *config.Config
}

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func NewEchoServer(cfg *config.Config, renderer echo.Renderer) Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Renderer = renderer

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				slog.ErrorContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			slog.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	return &echoServer{
		app: e,
		cfg: cfg,
	}
}

func (s *echoServer) Start() error {
	return s.app.Start(fmt.Sprintf(":%d", s.cfg.Server.Port))
}

func (s *echoServer) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *echoServer) GetEcho() *echo.Echo {
	return s.app
}
