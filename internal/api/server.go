package api

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// NewServer builds the echo server with middleware and all routes.
func NewServer(open OpenFunc, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(Recovery(logger))
	e.Use(RequestID())
	e.Use(Logger(logger))

	e.GET("/health", Health)

	h := NewHandler(open)
	h.RegisterRoutes(e.Group("/api/v1"))
	return e
}
