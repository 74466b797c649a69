package extract

import (
	"regexp"
	"sort"
	"strings"

	"wsb-signal-tracker/internal/vocab"
)

var (
	dollarTickerPattern = regexp.MustCompile(`\$([A-Z]{1,5})\b`)
	bareTickerPattern   = regexp.MustCompile(`\b([A-Z]{2,5})\b`)
)

// ExtractTickers returns the set of stock tickers mentioned in text, sorted
// for deterministic output. Two candidate passes are unioned:
//
//  1. $-prefixed symbols are treated as deliberate and skip the blocklist;
//     they only need to appear in the authoritative list when one is loaded.
//  2. Bare 2-5 letter uppercase words go through the full validation: the
//     static blocklist, then the authoritative list (or allowlist) when the
//     list is available.
//
// Never fails: empty input yields an empty result.
func ExtractTickers(text string, v *vocab.Vocabulary) []string {
	if text == "" {
		return nil
	}

	found := make(map[string]struct{})

	for _, m := range dollarTickerPattern.FindAllStringSubmatch(strings.ToUpper(text), -1) {
		symbol := m[1]
		if len(symbol) < 2 {
			continue
		}
		if v.Empty() || v.Contains(symbol) || vocab.IsAllowed(symbol) {
			found[symbol] = struct{}{}
		}
	}

	for _, m := range bareTickerPattern.FindAllStringSubmatch(text, -1) {
		symbol := m[1]
		if v.ValidTicker(symbol) {
			found[symbol] = struct{}{}
		}
	}

	if len(found) == 0 {
		return nil
	}

	tickers := make([]string, 0, len(found))
	for symbol := range found {
		tickers = append(tickers, symbol)
	}
	sort.Strings(tickers)
	return tickers
}
