package vocab

// Vocabulary is the authoritative ticker set combined with the static
// blocklist and allowlist. Immutable after construction and safe for
// concurrent reads.
type Vocabulary struct {
	authoritative map[string]struct{}
}

// New builds a Vocabulary from a list of authoritative ticker symbols. An
// empty list produces a degraded vocabulary where only the blocklist filters
// bare candidates.
func New(symbols []string) *Vocabulary {
	set := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}
	return &Vocabulary{authoritative: set}
}

// Empty reports whether the authoritative list is unavailable.
func (v *Vocabulary) Empty() bool {
	return v == nil || len(v.authoritative) == 0
}

// Contains reports whether the symbol is in the authoritative list.
func (v *Vocabulary) Contains(symbol string) bool {
	if v == nil {
		return false
	}
	_, ok := v.authoritative[symbol]
	return ok
}

// ValidTicker applies the low-confidence validation rules: not blocklisted,
// and present in the authoritative list when one is available, unless the
// symbol is on the index/volatility allowlist.
func (v *Vocabulary) ValidTicker(symbol string) bool {
	if IsBlocked(symbol) {
		return false
	}
	if !v.Empty() && !v.Contains(symbol) {
		return IsAllowed(symbol)
	}
	return true
}
