package dto

// EarningsSample is one earnings event from the market-data collaborator:
// the announcement date with the closing prices around it and optional EPS
// figures.
type EarningsSample struct {
	Date        string   `json:"date"`
	PriceBefore float64  `json:"price_before"`
	PriceAfter  float64  `json:"price_after"`
	EPSEstimate *float64 `json:"eps_estimate"`
	EPSActual   *float64 `json:"eps_actual"`
}

// EarningsEvent is one classified earnings move.
type EarningsEvent struct {
	Date           string   `json:"date"`
	EPSEstimate    *float64 `json:"eps_estimate"`
	EPSActual      *float64 `json:"eps_actual"`
	SurprisePct    *float64 `json:"surprise_pct"`
	PriceBefore    float64  `json:"price_before"`
	PriceAfter     float64  `json:"price_after"`
	MovePct        float64  `json:"move_pct"`
	Classification string   `json:"classification"`
}

// EarningsAnalysis is the computed moon/tank analytics for one ticker. Error
// is set (and everything else zero) when the ticker cannot be classified.
type EarningsAnalysis struct {
	Symbol          string          `json:"symbol"`
	Events          int             `json:"events"`
	YearsCovered    float64         `json:"years_covered"`
	MoonPct         float64         `json:"moon_pct"`
	TankPct         float64         `json:"tank_pct"`
	FlatPct         float64         `json:"flat_pct"`
	AvgMove         float64         `json:"avg_move"`
	MaxMoon         float64         `json:"max_moon"`
	MaxTank         float64         `json:"max_tank"`
	Volatility      float64         `json:"volatility"`
	Streak          int             `json:"streak"`
	StreakDirection string          `json:"streak_direction"`
	GuhScore        float64         `json:"guh_score"`
	Commentary      string          `json:"commentary"`
	History         []EarningsEvent `json:"history"`
	Cached          bool            `json:"cached"`
	Error           string          `json:"error,omitempty"`
}
