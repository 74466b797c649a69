package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wsb-signal-tracker/internal/dto"
	"wsb-signal-tracker/internal/entity"
	"wsb-signal-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMentionRepo struct {
	gotHours int
	gotLimit int
	stats    []dto.TickerStat
}

func (s *stubMentionRepo) SaveAll(ctx context.Context, mentions []entity.Mention) (int64, error) {
	return 0, nil
}

func (s *stubMentionRepo) GetTopTickers(ctx context.Context, windowHours, limit int) ([]dto.TickerStat, error) {
	s.gotHours = windowHours
	s.gotLimit = limit
	return s.stats, nil
}

func (s *stubMentionRepo) GetTickerDetail(ctx context.Context, symbol string, windowHours int) ([]entity.Mention, error) {
	s.gotHours = windowHours
	return nil, nil
}

func (s *stubMentionRepo) GetStats(ctx context.Context) (*dto.StatusResponse, error) {
	return &dto.StatusResponse{}, nil
}

func newTickerTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newTickerHandler(t *testing.T, repo *stubMentionRepo) *TickerHandler {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return NewTickerHandler(repo, log)
}

func TestGetTopTickers_Defaults(t *testing.T) {
	repo := &stubMentionRepo{stats: []dto.TickerStat{{Ticker: "GME", MentionCount: 42}}}
	h := newTickerHandler(t, repo)
	c, rec := newTickerTestContext(t, "/api/v1/tickers")

	require.NoError(t, h.GetTopTickers(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 24, repo.gotHours)
	assert.Equal(t, 20, repo.gotLimit)

	var resp dto.TopTickersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "GME", resp.Tickers[0].Ticker)
}

func TestGetTopTickers_ClampsWindow(t *testing.T) {
	repo := &stubMentionRepo{}
	h := newTickerHandler(t, repo)
	c, _ := newTickerTestContext(t, "/api/v1/tickers?hours=9999&limit=0")

	require.NoError(t, h.GetTopTickers(c))

	assert.Equal(t, 168, repo.gotHours)
	assert.Equal(t, 1, repo.gotLimit)
}

func TestGetTickerDetail_UppercasesSymbol(t *testing.T) {
	repo := &stubMentionRepo{}
	h := newTickerHandler(t, repo)
	c, rec := newTickerTestContext(t, "/api/v1/tickers/gme")
	c.SetParamNames("symbol")
	c.SetParamValues("gme")

	require.NoError(t, h.GetTickerDetail(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.TickerDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "GME", resp.Symbol)
}
