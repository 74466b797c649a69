package extract

import (
	"testing"

	"wsb-signal-tracker/internal/vocab"

	"github.com/stretchr/testify/assert"
)

func testVocabulary() *vocab.Vocabulary {
	return vocab.New([]string{"GME", "NVDA", "SPY", "AAPL", "TSLA", "AMC", "UNH"})
}

func TestExtractTickers_DollarPrefixed(t *testing.T) {
	v := testVocabulary()

	tickers := ExtractTickers("just bought $GME calls, NOT a drill. YOLO", v)

	assert.Contains(t, tickers, "GME")
	assert.NotContains(t, tickers, "NOT", "blocklisted words must never surface")
	assert.NotContains(t, tickers, "YOLO")
	assert.NotContains(t, tickers, "DRILL")
}

func TestExtractTickers_BareRequiresVocabulary(t *testing.T) {
	v := testVocabulary()

	tickers := ExtractTickers("NVDA to the moon, but ZZZQ is not real", v)

	assert.Equal(t, []string{"NVDA"}, tickers)
}

func TestExtractTickers_BlocklistBeatsEverything(t *testing.T) {
	// CEO is on the blocklist even though it shape-matches a ticker.
	v := vocab.New([]string{"CEO", "GME"})

	tickers := ExtractTickers("the CEO said GME is fine", v)

	assert.Equal(t, []string{"GME"}, tickers)
}

func TestExtractTickers_AllowlistIndices(t *testing.T) {
	v := testVocabulary()

	tickers := ExtractTickers("$SPX and VIX are pumping", v)

	assert.Contains(t, tickers, "SPX")
	assert.Contains(t, tickers, "VIX")
}

func TestExtractTickers_EmptyVocabularyDegradesGracefully(t *testing.T) {
	v := vocab.New(nil)

	// With no authoritative list, $-prefixed symbols pass; bare words only
	// need to evade the blocklist.
	tickers := ExtractTickers("$GME and YOLO", v)

	assert.Contains(t, tickers, "GME")
	assert.NotContains(t, tickers, "YOLO")
}

func TestExtractTickers_Deterministic(t *testing.T) {
	v := testVocabulary()
	text := "$TSLA $GME NVDA AAPL $SPY TSLA GME"

	first := ExtractTickers(text, v)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ExtractTickers(text, v))
	}
	assert.Equal(t, []string{"AAPL", "GME", "NVDA", "SPY", "TSLA"}, first)
}

func TestExtractTickers_Empty(t *testing.T) {
	assert.Nil(t, ExtractTickers("", testVocabulary()))
	assert.Nil(t, ExtractTickers("nothing to see here", testVocabulary()))
}

func TestExtractTickers_SingleLetterDollarIgnored(t *testing.T) {
	v := vocab.New([]string{"F", "GME"})

	// One-letter symbols are too noisy even with a $ prefix.
	tickers := ExtractTickers("$F to the moon", v)

	assert.NotContains(t, tickers, "F")
}
