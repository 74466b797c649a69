package sentiment

import (
	"strings"

	"wsb-signal-tracker/pkg/utils"

	"github.com/jonreiter/govader"
)

// Blend weights applied when a text contains any scored emoji.
const (
	lexiconWeight = 0.7
	emojiWeight   = 0.3
)

// Scorer produces a polarity score in [-1, 1] for a piece of text. It wraps a
// VADER analyzer whose lexicon is extended with WSB slang at construction.
// Build once and share: the scorer is read-only after NewScorer returns.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewScorer builds a Scorer with the WSB lexicon merged into the VADER
// vocabulary.
func NewScorer() *Scorer {
	analyzer := govader.NewSentimentIntensityAnalyzer()
	for word, intensity := range wsbLexicon {
		analyzer.Lexicon[word] = intensity
	}
	return &Scorer{analyzer: analyzer}
}

// Score returns the blended sentiment of text, clamped to [-1, 1]. Empty
// text scores exactly 0.
func (s *Scorer) Score(text string) float64 {
	if text == "" {
		return 0.0
	}

	compound := s.analyzer.PolarityScores(text).Compound

	emojiTotal := 0.0
	emojiCount := 0
	for emoji, intensity := range emojiLexicon {
		n := strings.Count(text, emoji)
		if n > 0 {
			emojiTotal += intensity * float64(n)
			emojiCount += n
		}
	}

	if emojiCount > 0 {
		// Average emoji intensity normalized from [-4, 4] to [-1, 1].
		emojiAvg := emojiTotal / float64(emojiCount)
		compound = lexiconWeight*compound + emojiWeight*(emojiAvg/4.0)
	}

	return utils.Clamp(compound, -1.0, 1.0)
}
