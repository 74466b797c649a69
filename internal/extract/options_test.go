package extract

import (
	"testing"

	"wsb-signal-tracker/internal/entity"
	"wsb-signal-tracker/internal/vocab"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractOptions_StrikeLetterWithDate(t *testing.T) {
	v := testVocabulary()

	candidates := ExtractOptions("loading up on NVDA 200c 3/27 before earnings", v)

	require.Len(t, candidates, 1)
	c := candidates[0]
	assert.Equal(t, "NVDA", c.Ticker)
	require.NotNil(t, c.Strike)
	assert.Equal(t, 200.0, *c.Strike)
	require.NotNil(t, c.OptionType)
	assert.Equal(t, entity.OptionTypeCall, *c.OptionType)
	require.NotNil(t, c.ExpiryRaw)
	assert.Equal(t, "3/27", *c.ExpiryRaw)
	require.NotNil(t, c.ExpiryCategory)
	assert.Equal(t, entity.ExpiryDated, *c.ExpiryCategory)
}

func TestExtractOptions_ZeroDTEPut(t *testing.T) {
	v := testVocabulary()

	candidates := ExtractOptions("SPY 680p 0DTE lets ride", v)

	require.Len(t, candidates, 1)
	c := candidates[0]
	assert.Equal(t, "SPY", c.Ticker)
	assert.Equal(t, 680.0, *c.Strike)
	assert.Equal(t, entity.OptionTypePut, *c.OptionType)
	assert.Nil(t, c.ExpiryRaw)
	require.NotNil(t, c.ExpiryCategory)
	assert.Equal(t, entity.ExpiryZeroDTE, *c.ExpiryCategory)
}

func TestExtractOptions_WordFormWithWeekday(t *testing.T) {
	v := testVocabulary()

	candidates := ExtractOptions("UNH 295 calls expiring friday, easy money", v)

	require.Len(t, candidates, 1)
	c := candidates[0]
	assert.Equal(t, "UNH", c.Ticker)
	assert.Equal(t, 295.0, *c.Strike)
	assert.Equal(t, entity.OptionTypeCall, *c.OptionType)
	require.NotNil(t, c.ExpiryCategory)
	assert.Equal(t, entity.ExpiryWeekly, *c.ExpiryCategory)
}

func TestExtractOptions_KeywordOnly(t *testing.T) {
	v := vocab.New([]string{"GME"})

	candidates := ExtractOptions("$SPX 0dte is free money", v)

	require.Len(t, candidates, 1)
	c := candidates[0]
	assert.Equal(t, "SPX", c.Ticker)
	assert.Nil(t, c.Strike)
	assert.Nil(t, c.OptionType)
	require.NotNil(t, c.ExpiryCategory)
	assert.Equal(t, entity.ExpiryZeroDTE, *c.ExpiryCategory)
}

func TestExtractOptions_NoExpiry(t *testing.T) {
	v := testVocabulary()

	candidates := ExtractOptions("AAPL 200p looking juicy", v)

	require.Len(t, candidates, 1)
	c := candidates[0]
	assert.Equal(t, "AAPL", c.Ticker)
	assert.Equal(t, entity.OptionTypePut, *c.OptionType)
	assert.Nil(t, c.ExpiryRaw)
	assert.Nil(t, c.ExpiryCategory)
}

func TestExtractOptions_DedupWithinText(t *testing.T) {
	v := testVocabulary()

	// Same contract mentioned twice with different expiry wording is one
	// candidate; the first mention wins.
	candidates := ExtractOptions("GME 100c 4/18 and later GME 100c weekly again", v)

	require.Len(t, candidates, 1)
	assert.Equal(t, entity.ExpiryDated, *candidates[0].ExpiryCategory)
}

func TestExtractOptions_KeywordOnlySeparateFromPriced(t *testing.T) {
	v := testVocabulary()

	// A priced contract and a keyword-only signal on the same ticker are
	// distinct events.
	candidates := ExtractOptions("SPY 680p 0DTE, also SPY weekly looking spicy", v)

	require.Len(t, candidates, 2)
	assert.NotNil(t, candidates[0].Strike)
	assert.Nil(t, candidates[1].Strike)
	assert.Equal(t, entity.ExpiryWeekly, *candidates[1].ExpiryCategory)
}

func TestExtractOptions_UnknownTickerRejected(t *testing.T) {
	v := testVocabulary()

	candidates := ExtractOptions("ZZZQ 100c 1/17 trust me bro", v)

	assert.Empty(t, candidates)
}

func TestExtractOptions_Deterministic(t *testing.T) {
	v := testVocabulary()
	text := "NVDA 200c 3/27, SPY 680p 0DTE, UNH 295 calls friday, SPX leaps"

	first := ExtractOptions(text, v)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ExtractOptions(text, v))
	}
	require.Len(t, first, 4)
}

func TestExtractOptions_Empty(t *testing.T) {
	assert.Nil(t, ExtractOptions("", testVocabulary()))
}
