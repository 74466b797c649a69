package http

import (
	"net/http"

	"wsb-signal-tracker/internal/dto"
	"wsb-signal-tracker/internal/repository"
	"wsb-signal-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
)

// OptionHandler handles HTTP requests for options-flow aggregates.
type OptionHandler struct {
	optionRepo repository.OptionEventRepository
	logger     *logger.Logger
}

// NewOptionHandler creates a new OptionHandler.
func NewOptionHandler(optionRepo repository.OptionEventRepository, logger *logger.Logger) *OptionHandler {
	return &OptionHandler{optionRepo: optionRepo, logger: logger}
}

// RegisterRoutes registers the option routes to the Echo group.
func (h *OptionHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetOptions)
}

// GetOptions godoc
// @Summary Get the options flow
// @Description Call/put summary plus per-ticker flow rows within the window
// @Tags options
// @Produce  json
// @Param   hours  query   int false   "Window in hours (1-168, default 24)"
// @Param   limit  query   int false   "Max flow rows (1-100, default 20)"
// @Success 200 {object} dto.OptionsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /options [get]
func (h *OptionHandler) GetOptions(c echo.Context) error {
	hours := queryInt(c, "hours", 24, 1, 168)
	limit := queryInt(c, "limit", 20, 1, 100)
	ctx := c.Request().Context()

	summary, err := h.optionRepo.GetSummary(ctx, hours)
	if err != nil {
		h.logger.Error("Failed to get options summary", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get options summary"})
	}

	flow, err := h.optionRepo.GetFlow(ctx, hours, limit)
	if err != nil {
		h.logger.Error("Failed to get options flow", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get options flow"})
	}

	return c.JSON(http.StatusOK, dto.OptionsResponse{
		Summary: summary,
		Flow:    flow,
		Hours:   hours,
	})
}
