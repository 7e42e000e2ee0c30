package collector

import (
	"fmt"
	"log"
	"time"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/calculator"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/model"
)

// MACD parameters used for the histogram (standard 12/26/9).
const (
	macdFast   = 12
	macdSlow   = 26
	macdSignal = 9
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Candles     []model.Candle
	DailyCloses map[string][]float64
	CandleErr   error
	CloseErr    error
	CandleCalls int
	CloseCalls  int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchCandles(_ string, _ string, count int) ([]model.Candle, error) {
	m.CandleCalls++
	if m.CandleErr != nil {
		return nil, m.CandleErr
	}
	if m.Candles != nil {
		return m.Candles, nil
	}
	return GenerateMockCandles(1.1000, 80), nil
}

func (m *MockFetcher) FetchDailyCloses(symbol string, _ int) ([]float64, error) {
	m.CloseCalls++
	if m.CloseErr != nil {
		return nil, m.CloseErr
	}
	if closes, ok := m.DailyCloses[symbol]; ok {
		return closes, nil
	}
	return []float64{100, 101}, nil
}

// GenerateMockCandles builds a gently trending series around basePrice.
func GenerateMockCandles(basePrice float64, count int) []model.Candle {
	candles := make([]model.Candle, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.0005)
		candles[i] = model.Candle{
			Time:   time.Now().Add(-time.Duration(count-i) * 15 * time.Minute),
			Open:   p * 0.9995,
			High:   p * 1.0010,
			Low:    p * 0.9990,
			Close:  p,
			Volume: 1000,
		}
	}
	return candles
}

// Collector fetches candles and augments them with indicators.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches the candle series for a symbol/interval pair and
// computes EMA(20), EMA(50), the MACD histogram and wick geometry for
// every candle. An empty fetch result yields an empty series, not an
// error: the caller renders a neutral state.
func (c *Collector) Collect(symbol, interval string, lookbackDays int) (model.Series, error) {
	candles, err := c.Fetcher.FetchCandles(symbol, interval, lookbackDays)
	if err != nil {
		return nil, fmt.Errorf("fetch candles: %w", err)
	}
	if len(candles) == 0 {
		log.Printf("[WARN] no candles returned for %s %s", symbol, interval)
		return model.Series{}, nil
	}
	return Augment(candles)
}

// Augment derives the indicator fields over a full candle series.
// Indicators are recomputed from scratch on every fetch; there is no
// incremental update.
func Augment(candles []model.Candle) (model.Series, error) {
	closes := calculator.ExtractCloses(candles)

	ema20, err := calculator.EMASeries(closes, 20)
	if err != nil {
		return nil, fmt.Errorf("ema20: %w", err)
	}
	ema50, err := calculator.EMASeries(closes, 50)
	if err != nil {
		return nil, fmt.Errorf("ema50: %w", err)
	}
	hist, err := calculator.MACDHistogram(closes, macdFast, macdSlow, macdSignal)
	if err != nil {
		return nil, fmt.Errorf("macd histogram: %w", err)
	}

	series := make(model.Series, len(candles))
	for i, candle := range candles {
		body, lower, upper := calculator.Wick(candle)
		series[i] = model.Row{
			Candle:    candle,
			EMA20:     ema20[i],
			EMA50:     ema50[i],
			MACDHist:  hist[i],
			Body:      body,
			LowerWick: lower,
			UpperWick: upper,
		}
	}
	return series, nil
}
