package vocab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wsb-signal-tracker/pkg/logger"

	"github.com/patrickmn/go-cache"
)

const vocabularyCacheKey = "vocabulary.authoritative"

// LoaderConfig holds the settings for the authoritative ticker list loader.
type LoaderConfig struct {
	URL           string
	UserAgent     string
	CacheFilePath string
	CacheTTL      time.Duration
}

// Loader fetches the authoritative ticker list from SEC EDGAR and caches it
// in memory and on disk. A failed fetch yields an empty vocabulary so ticker
// extraction degrades to blocklist-only filtering instead of failing the run.
type Loader struct {
	cfg           LoaderConfig
	log           *logger.Logger
	httpClient    *http.Client
	inmemoryCache *cache.Cache
}

// NewLoader creates a new authoritative ticker list loader.
func NewLoader(cfg LoaderConfig, log *logger.Logger) *Loader {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Loader{
		cfg:           cfg,
		log:           log,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		inmemoryCache: cache.New(ttl, 2*ttl),
	}
}

// Load returns the current Vocabulary, fetching the authoritative list at
// most once per cache TTL. Never returns an error: all failures degrade to
// an empty vocabulary.
func (l *Loader) Load(ctx context.Context) *Vocabulary {
	if cached, found := l.inmemoryCache.Get(vocabularyCacheKey); found {
		return cached.(*Vocabulary)
	}

	symbols, err := l.readCacheFile()
	if err == nil && len(symbols) > 0 {
		v := New(symbols)
		l.inmemoryCache.SetDefault(vocabularyCacheKey, v)
		return v
	}

	symbols, err = l.fetch(ctx)
	if err != nil {
		l.log.Warn("Could not fetch authoritative ticker list, degrading to blocklist-only filtering", logger.ErrorField(err))
		return New(nil)
	}

	if err := l.writeCacheFile(symbols); err != nil {
		l.log.Warn("Failed to write ticker list cache file", logger.ErrorField(err))
	}

	l.log.Info("Cached authoritative ticker list", logger.IntField("count", len(symbols)))
	v := New(symbols)
	l.inmemoryCache.SetDefault(vocabularyCacheKey, v)
	return v
}

func (l *Loader) fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", l.cfg.UserAgent)

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, l.cfg.URL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// SEC company_tickers.json is an object keyed by row number.
	var entries map[string]struct {
		Ticker string `json:"ticker"`
	}
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode ticker list: %w", err)
	}

	symbols := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Ticker == "" {
			continue
		}
		symbols = append(symbols, strings.ToUpper(e.Ticker))
	}
	return symbols, nil
}

func (l *Loader) readCacheFile() ([]string, error) {
	if l.cfg.CacheFilePath == "" {
		return nil, os.ErrNotExist
	}
	data, err := os.ReadFile(l.cfg.CacheFilePath)
	if err != nil {
		return nil, err
	}
	var symbols []string
	if err := json.Unmarshal(data, &symbols); err != nil {
		return nil, err
	}
	return symbols, nil
}

func (l *Loader) writeCacheFile(symbols []string) error {
	if l.cfg.CacheFilePath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(l.cfg.CacheFilePath), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(symbols)
	if err != nil {
		return err
	}
	return os.WriteFile(l.cfg.CacheFilePath, data, 0o644)
}
