package extract

import (
	"regexp"
	"strconv"
	"strings"

	"wsb-signal-tracker/internal/entity"
	"wsb-signal-tracker/internal/vocab"
)

// OptionCandidate is one options-contract signal extracted from text. Strike
// and OptionType are nil for keyword-only signals.
type OptionCandidate struct {
	Ticker         string
	Strike         *float64
	OptionType     *string
	ExpiryRaw      *string
	ExpiryCategory *string
	RawMatch       string
}

// Patterns matched, in order:
//
//	$NVDA 200c 3/27       -> ticker=NVDA, strike=200, type=call, expiry dated
//	SPY 680p 0DTE         -> ticker=SPY, strike=680, type=put, expiry 0DTE
//	UNH 295 calls friday  -> ticker=UNH, strike=295, type=call, expiry weekly
//	AAPL 200p             -> ticker=AAPL, strike=200, type=put, expiry nil
//	SPX 0DTE              -> ticker=SPX, strike=nil, type=nil, expiry 0DTE
var (
	strikeLetterPattern = regexp.MustCompile(`\$?([A-Z]{1,5})\s+(\d{1,5})([cCpP])\s*(\d{1,2}/\d{1,2}(?:/\d{2,4})?)?`)
	strikeWordPattern   = regexp.MustCompile(`(?i)\$?([A-Z]{1,5})\s+(\d{1,5})\s+(calls?|puts?)\b`)
	keywordOnlyPattern  = regexp.MustCompile(`(?i)\$?([A-Z]{1,5})\s+(0dte|weekly|weeklies|weeklys|daily|dailys|dailies|fds?|monthly|monthlies|monthlys|leaps?)\b`)
)

// expiryKeywords maps keyword spellings to normalized categories. Ordered so
// that keyword scans over free-form context are deterministic.
var expiryKeywords = []struct {
	keyword  string
	category string
}{
	{"0dte", entity.ExpiryZeroDTE},
	{"dailies", entity.ExpiryZeroDTE},
	{"dailys", entity.ExpiryZeroDTE},
	{"daily", entity.ExpiryZeroDTE},
	{"tomorrow", entity.ExpiryZeroDTE},
	{"tmrw", entity.ExpiryZeroDTE},
	{"weeklies", entity.ExpiryWeekly},
	{"weeklys", entity.ExpiryWeekly},
	{"weekly", entity.ExpiryWeekly},
	{"next week", entity.ExpiryWeekly},
	{"next friday", entity.ExpiryWeekly},
	{"friday", entity.ExpiryWeekly},
	{"fds", entity.ExpiryWeekly},
	{"fd", entity.ExpiryWeekly},
	{"eow", entity.ExpiryWeekly},
	{"monthlies", entity.ExpiryMonthly},
	{"monthlys", entity.ExpiryMonthly},
	{"monthly", entity.ExpiryMonthly},
	{"eom", entity.ExpiryMonthly},
	{"leaps", entity.ExpiryLEAPS},
	{"leap", entity.ExpiryLEAPS},
}

// dayNames normalize a weekday mention in trailing context to a weekly expiry.
var dayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday",
	"mon", "tue", "wed", "thu", "fri",
}

type optionKey struct {
	ticker    string
	strike    float64
	hasStrike bool
	optType   string
	category  string
}

// ExtractOptions extracts options positions from text, deduplicated in
// first-seen order. Strike-bearing candidates dedup on (ticker, strike, type);
// keyword-only candidates dedup on (ticker, category). The two never collide.
func ExtractOptions(text string, v *vocab.Vocabulary) []OptionCandidate {
	if text == "" {
		return nil
	}

	var candidates []OptionCandidate
	seen := make(map[optionKey]struct{})

	add := func(key optionKey, c OptionCandidate) {
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		candidates = append(candidates, c)
	}

	// Pass 1: TICKER <strike><c|p> with an optional literal M/D[/Y] date.
	for _, idx := range strikeLetterPattern.FindAllStringSubmatchIndex(text, -1) {
		ticker := group(text, idx, 1)
		if !v.ValidTicker(ticker) {
			continue
		}
		strike, err := strconv.ParseFloat(group(text, idx, 2), 64)
		if err != nil {
			continue
		}
		optType := entity.OptionTypePut
		if strings.EqualFold(group(text, idx, 3), "c") {
			optType = entity.OptionTypeCall
		}
		expiryRaw := group(text, idx, 4)
		category := categorizeExpiry(expiryRaw, contextAfter(text, idx[1], 30))
		add(optionKey{ticker: ticker, strike: strike, hasStrike: true, optType: optType}, OptionCandidate{
			Ticker:         ticker,
			Strike:         &strike,
			OptionType:     &optType,
			ExpiryRaw:      optional(expiryRaw),
			ExpiryCategory: optional(category),
			RawMatch:       strings.TrimSpace(text[idx[0]:idx[1]]),
		})
	}

	// Pass 2: TICKER <strike> calls|puts, expiry inferred from trailing context.
	for _, idx := range strikeWordPattern.FindAllStringSubmatchIndex(text, -1) {
		ticker := group(text, idx, 1)
		if !v.ValidTicker(ticker) {
			continue
		}
		strike, err := strconv.ParseFloat(group(text, idx, 2), 64)
		if err != nil {
			continue
		}
		optType := entity.OptionTypePut
		if strings.HasPrefix(strings.ToLower(group(text, idx, 3)), "c") {
			optType = entity.OptionTypeCall
		}
		category := categorizeExpiry("", contextAfter(text, idx[1], 40))
		add(optionKey{ticker: ticker, strike: strike, hasStrike: true, optType: optType}, OptionCandidate{
			Ticker:         ticker,
			Strike:         &strike,
			OptionType:     &optType,
			ExpiryCategory: optional(category),
			RawMatch:       strings.TrimSpace(text[idx[0]:idx[1]]),
		})
	}

	// Pass 3: standalone expiry keyword next to a ticker, no strike.
	for _, idx := range keywordOnlyPattern.FindAllStringSubmatchIndex(text, -1) {
		ticker := group(text, idx, 1)
		if !v.ValidTicker(ticker) {
			continue
		}
		keyword := group(text, idx, 2)
		category := lookupKeyword(strings.ToLower(keyword))
		if category == "" {
			continue
		}
		add(optionKey{ticker: ticker, category: category}, OptionCandidate{
			Ticker:         ticker,
			ExpiryRaw:      optional(keyword),
			ExpiryCategory: optional(category),
			RawMatch:       strings.TrimSpace(text[idx[0]:idx[1]]),
		})
	}

	return candidates
}

// categorizeExpiry maps an explicit date or trailing context onto an expiry
// category. Any literal date is categorized uniformly as "dated"; the system
// never resolves dates to calendar proximity. Returns "" when nothing matches.
func categorizeExpiry(dateStr, context string) string {
	if dateStr != "" {
		return entity.ExpiryDated
	}

	lower := strings.ToLower(context)
	for _, kw := range expiryKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.category
		}
	}
	for _, day := range dayNames {
		if strings.Contains(lower, day) {
			return entity.ExpiryWeekly
		}
	}
	return ""
}

func lookupKeyword(keyword string) string {
	for _, kw := range expiryKeywords {
		if kw.keyword == keyword {
			return kw.category
		}
	}
	return ""
}

// group returns the submatch text for a FindAllStringSubmatchIndex result,
// or "" when the group did not participate in the match.
func group(text string, idx []int, n int) string {
	start, end := idx[2*n], idx[2*n+1]
	if start < 0 {
		return ""
	}
	return text[start:end]
}

func contextAfter(text string, from, length int) string {
	if from >= len(text) {
		return ""
	}
	end := from + length
	if end > len(text) {
		end = len(text)
	}
	return text[from:end]
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
