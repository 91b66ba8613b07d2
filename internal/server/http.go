package server

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"ledgerly.io/financemail/internal/core/port"
	"ledgerly.io/financemail/internal/handler"
)

type HTTPServer struct {
	echo             *echo.Echo
	ingestionService port.IngestionService
}

func NewHTTPServer(ingestionService port.IngestionService, validate *validator.Validate) *HTTPServer {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	server := &HTTPServer{
		echo:             e,
		ingestionService: ingestionService,
	}

	ingestionHandler := handler.NewIngestionHTTPHandler(ingestionService, validate)

	// Routes
	e.GET("/health", server.healthCheck)
	e.POST("/api/v1/ingestion/runs", ingestionHandler.Handle())

	return server
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "financemail",
	})
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
