package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"wsb-signal-tracker/internal/repository"
	"wsb-signal-tracker/internal/service"
	"wsb-signal-tracker/pkg/logger"
	"wsb-signal-tracker/pkg/utils"

	"github.com/labstack/echo/v4"
)

// PipelineHandler handles HTTP requests for pipeline status and manual runs.
type PipelineHandler struct {
	pipelineService service.PipelineService
	mentionRepo     repository.MentionRepository
	logger          *logger.Logger
}

// NewPipelineHandler creates a new PipelineHandler.
func NewPipelineHandler(pipelineService service.PipelineService, mentionRepo repository.MentionRepository, logger *logger.Logger) *PipelineHandler {
	return &PipelineHandler{pipelineService: pipelineService, mentionRepo: mentionRepo, logger: logger}
}

// RegisterRoutes registers the status and scrape routes to the Echo group.
func (h *PipelineHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/status", h.GetStatus)
	g.POST("/scrape", h.TriggerScrape)
}

// GetStatus godoc
// @Summary Get tracker status
// @Description Mention totals plus the stats snapshot of the most recent pipeline run
// @Tags status
// @Produce  json
// @Success 200 {object} dto.StatusResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /status [get]
func (h *PipelineHandler) GetStatus(c echo.Context) error {
	ctx := c.Request().Context()

	status, err := h.mentionRepo.GetStats(ctx)
	if err != nil {
		h.logger.Error("Failed to get mention stats", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get status"})
	}

	lastRun, err := h.pipelineService.LastRun(ctx)
	if err != nil {
		h.logger.Warn("Failed to load last-run stats", logger.ErrorField(err))
	} else {
		status.LastRun = lastRun
	}

	return c.JSON(http.StatusOK, status)
}

// TriggerScrape godoc
// @Summary Trigger a pipeline run
// @Description Kicks off a scrape-extract-store run in the background. Returns 409 when a run is already in progress.
// @Tags status
// @Produce  json
// @Success 202 {object} map[string]string
// @Failure 409 {object} dto.ErrorResponse
// @Router /scrape [post]
func (h *PipelineHandler) TriggerScrape(c echo.Context) error {
	// Detach from the request context: the run outlives the response.
	ctx := context.WithoutCancel(c.Request().Context())

	done := make(chan error, 1)
	utils.GoSafe(func() {
		_, err := h.pipelineService.Run(ctx)
		done <- err
	})

	// Wait briefly so a lock conflict surfaces as 409 instead of a
	// phantom 202. A real run takes far longer than this window.
	select {
	case err := <-done:
		if errors.Is(err, service.ErrRunInProgress) {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		if err != nil {
			h.logger.Error("Pipeline run failed", logger.ErrorField(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Pipeline run failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "completed"})
	case <-time.After(200 * time.Millisecond):
		utils.GoSafe(func() {
			if err := <-done; err != nil && !errors.Is(err, service.ErrRunInProgress) {
				h.logger.Error("Pipeline run failed", logger.ErrorField(err))
			}
		})
		return c.JSON(http.StatusAccepted, echo.Map{"status": "started"})
	}
}
