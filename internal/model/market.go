package model

import "time"

// Candle represents a single OHLC bar. Immutable once fetched; a fresh
// fetch replaces the whole series.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Row is a candle augmented with derived indicator values. Indicator
// fields are NaN wherever warm-up history is insufficient.
type Row struct {
	Candle
	EMA20     float64
	EMA50     float64
	MACDHist  float64
	Body      float64
	LowerWick float64
	UpperWick float64
}

// Series holds indicator-augmented candles, oldest first.
type Series []Row

// Empty reports whether the series has no rows.
func (s Series) Empty() bool { return len(s) == 0 }

// Last returns the most recent row. Callers must check Empty first.
func (s Series) Last() Row { return s[len(s)-1] }

// StrengthEntry is one row of the currency-strength ranking.
type StrengthEntry struct {
	Currency string  `json:"currency"`
	Change   float64 `json:"change"` // day-over-day close change, percent
}
