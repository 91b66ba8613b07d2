package handler

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"ledgerly.io/financemail/internal/core/domain"
	"ledgerly.io/financemail/internal/core/port"
)

type IngestionHTTPHandler struct {
	ingestionService port.IngestionService
	validate         *validator.Validate
}

type StartRunRequest struct {
	MaxMessages int    `json:"max_messages" validate:"omitempty,min=1,max=100"`
	Folder      string `json:"folder"`
}

type StartRunResponse struct {
	Message string `json:"message"`
	Folder  string `json:"folder"`
}

func NewIngestionHTTPHandler(ingestionService port.IngestionService, validate *validator.Validate) *IngestionHTTPHandler {
	return &IngestionHTTPHandler{
		ingestionService: ingestionService,
		validate:         validate,
	}
}

func (h *IngestionHTTPHandler) Handle() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req StartRunRequest

		if err := c.Bind(&req); err != nil {
			log.WithError(err).Error("Failed to bind request")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid request payload",
			})
		}
		if err := h.validate.Struct(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": err.Error(),
			})
		}

		params := domain.RunParams{
			MaxMessages: req.MaxMessages,
			Folder:      req.Folder,
		}.Normalized()

		// Run ingestion asynchronously since it can take time
		go func() {
			newCtx := context.Background()
			if _, err := h.ingestionService.Run(newCtx, params); err != nil {
				log.WithError(err).WithField("folder", params.Folder).Error("Ingestion run failed")
			}
		}()

		return c.JSON(http.StatusAccepted, StartRunResponse{
			Message: "Ingestion run started",
			Folder:  params.Folder,
		})
	}
}
