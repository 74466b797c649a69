package http

import (
	"net/http"
	"strings"

	"wsb-signal-tracker/internal/service"
	"wsb-signal-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
)

// EarningsHandler handles HTTP requests for earnings analytics.
type EarningsHandler struct {
	earningsService service.EarningsService
	logger          *logger.Logger
}

// NewEarningsHandler creates a new EarningsHandler.
func NewEarningsHandler(earningsService service.EarningsService, logger *logger.Logger) *EarningsHandler {
	return &EarningsHandler{earningsService: earningsService, logger: logger}
}

// RegisterRoutes registers the earnings routes to the Echo group.
func (h *EarningsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/:symbol", h.GetEarnings)
}

// GetEarnings godoc
// @Summary Get post-earnings analytics for a symbol
// @Description Historical post-earnings moves classified into moon/tank buckets. Unanalyzable tickers come back 200 with the error field set.
// @Tags earnings
// @Produce  json
// @Param   symbol path    string  true    "Ticker symbol"
// @Success 200 {object} dto.EarningsAnalysis
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /earnings/{symbol} [get]
func (h *EarningsHandler) GetEarnings(c echo.Context) error {
	symbol := strings.TrimSpace(c.Param("symbol"))
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Symbol is required"})
	}

	analysis, err := h.earningsService.GetAnalysis(c.Request().Context(), symbol)
	if err != nil {
		h.logger.Error("Failed to get earnings analysis",
			logger.StringField("symbol", symbol), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get earnings analysis"})
	}

	return c.JSON(http.StatusOK, analysis)
}
