package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTicker_Blocklist(t *testing.T) {
	v := New([]string{"YOLO", "CEO", "GME"})

	// Blocklisted words lose even when the authoritative list has them.
	assert.False(t, v.ValidTicker("YOLO"))
	assert.False(t, v.ValidTicker("CEO"))
	assert.True(t, v.ValidTicker("GME"))
}

func TestValidTicker_AuthoritativeList(t *testing.T) {
	v := New([]string{"GME", "NVDA"})

	assert.True(t, v.ValidTicker("NVDA"))
	assert.False(t, v.ValidTicker("ZZZQ"))
}

func TestValidTicker_AllowlistBypassesAuthoritative(t *testing.T) {
	v := New([]string{"GME"})

	// Index symbols are valid even though SEC's company list omits them.
	for _, symbol := range []string{"SPX", "VIX", "NDX", "RUT", "DXY"} {
		assert.True(t, v.ValidTicker(symbol), symbol)
	}
}

func TestValidTicker_EmptyVocabulary(t *testing.T) {
	v := New(nil)

	// Without an authoritative list only the blocklist filters.
	assert.True(t, v.ValidTicker("ZZZQ"))
	assert.False(t, v.ValidTicker("YOLO"))
}

func TestBlocklist(t *testing.T) {
	assert.True(t, IsBlocked("THE"))
	assert.True(t, IsBlocked("MOON"))
	assert.True(t, IsBlocked("WSB"))
	assert.False(t, IsBlocked("GME"))
}

func TestAllowlist(t *testing.T) {
	assert.True(t, IsAllowed("SPX"))
	assert.False(t, IsAllowed("GME"))
}
