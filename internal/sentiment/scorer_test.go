package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_EmptyText(t *testing.T) {
	s := NewScorer()
	assert.Equal(t, 0.0, s.Score(""))
}

func TestScore_SlangPolarity(t *testing.T) {
	s := NewScorer()

	bullish := s.Score("tendies incoming, absolutely mooning, diamond hands")
	bearish := s.Score("guh, bags are drilling, total rugpull")

	assert.Greater(t, bullish, 0.0)
	assert.Less(t, bearish, 0.0)
	assert.Greater(t, bullish, bearish)
}

func TestScore_EmojiOnly(t *testing.T) {
	s := NewScorer()

	// No lexicon words at all: the score is purely the blended emoji term.
	rockets := s.Score("🚀🚀🚀")
	skulls := s.Score("💀💀")

	assert.Greater(t, rockets, 0.0)
	assert.Less(t, skulls, 0.0)
}

func TestScore_EmojisShiftTheBlend(t *testing.T) {
	s := NewScorer()

	plain := s.Score("bought some shares today")
	boosted := s.Score("bought some shares today 🚀🚀🚀")

	assert.Greater(t, boosted, plain)
}

func TestScore_Bounds(t *testing.T) {
	s := NewScorer()

	texts := []string{
		"mooning tendies lambo gains rocket squeeze bullish 🚀🚀🚀🚀🚀🚀",
		"guh crash dump tanking rugpull bearish drilling 💀💀💀💀",
		"GME calls, NOT a drill",
		"completely neutral sentence about the weather",
	}
	for _, text := range texts {
		score := s.Score(text)
		assert.GreaterOrEqual(t, score, -1.0, "text: %s", text)
		assert.LessOrEqual(t, score, 1.0, "text: %s", text)
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := NewScorer()
	text := "YOLO'd into GME calls 🚀 wish me luck"

	first := s.Score(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Score(text))
	}
}
