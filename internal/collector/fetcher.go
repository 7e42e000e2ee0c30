package collector

import "github.com/Nwuebsisj/nexus-ultra-pro/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchCandles returns OHLC bars for the symbol at the given
	// interval, oldest first, covering the trailing lookback window.
	// A provider with no data for the symbol returns an empty slice,
	// not an error.
	FetchCandles(symbol, interval string, lookbackDays int) ([]model.Candle, error)
	// FetchDailyCloses returns the most recent daily closes for the
	// symbol, oldest first.
	FetchDailyCloses(symbol string, days int) ([]float64, error)
	Name() string
}
