package http

import (
	"net/http"
	"strings"

	"wsb-signal-tracker/internal/repository"
	"wsb-signal-tracker/pkg/logger"

	"github.com/labstack/echo/v4"

	"wsb-signal-tracker/internal/dto"
)

// TickerHandler handles HTTP requests for ticker mention aggregates.
type TickerHandler struct {
	mentionRepo repository.MentionRepository
	logger      *logger.Logger
}

// NewTickerHandler creates a new TickerHandler.
func NewTickerHandler(mentionRepo repository.MentionRepository, logger *logger.Logger) *TickerHandler {
	return &TickerHandler{mentionRepo: mentionRepo, logger: logger}
}

// RegisterRoutes registers the ticker routes to the Echo group.
func (h *TickerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetTopTickers)
	g.GET("/:symbol", h.GetTickerDetail)
}

// GetTopTickers godoc
// @Summary Get the top-tickers leaderboard
// @Description Tickers ranked by mention count within the window; tickers with 5 or fewer mentions are excluded
// @Tags tickers
// @Produce  json
// @Param   hours  query   int false   "Window in hours (1-168, default 24)"
// @Param   limit  query   int false   "Max rows (1-100, default 20)"
// @Success 200 {object} dto.TopTickersResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tickers [get]
func (h *TickerHandler) GetTopTickers(c echo.Context) error {
	hours := queryInt(c, "hours", 24, 1, 168)
	limit := queryInt(c, "limit", 20, 1, 100)

	stats, err := h.mentionRepo.GetTopTickers(c.Request().Context(), hours, limit)
	if err != nil {
		h.logger.Error("Failed to get top tickers", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get top tickers"})
	}

	return c.JSON(http.StatusOK, dto.TopTickersResponse{
		Tickers: stats,
		Hours:   hours,
		Count:   len(stats),
	})
}

// GetTickerDetail godoc
// @Summary Get recent mentions for one ticker
// @Description Individual mention rows for a symbol within the window, newest first
// @Tags tickers
// @Produce  json
// @Param   symbol path    string  true    "Ticker symbol"
// @Param   hours  query   int false   "Window in hours (1-168, default 24)"
// @Success 200 {object} dto.TickerDetailResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tickers/{symbol} [get]
func (h *TickerHandler) GetTickerDetail(c echo.Context) error {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	hours := queryInt(c, "hours", 24, 1, 168)

	mentions, err := h.mentionRepo.GetTickerDetail(c.Request().Context(), symbol, hours)
	if err != nil {
		h.logger.Error("Failed to get ticker detail",
			logger.StringField("symbol", symbol), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get ticker detail"})
	}

	return c.JSON(http.StatusOK, dto.TickerDetailResponse{
		Symbol:   symbol,
		Mentions: mentions,
		Hours:    hours,
		Count:    len(mentions),
	})
}
