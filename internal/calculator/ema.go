package calculator

import (
	"errors"
	"math"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/model"
)

// EMASeries computes the exponential moving average of prices over the
// given period. Positions before the warm-up index (period-1) are NaN:
// the series is seeded with an SMA of the first `period` prices, then
// smoothed with multiplier 2/(period+1).
func EMASeries(prices []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}

	ema := make([]float64, len(prices))
	for i := range ema {
		ema[i] = math.NaN()
	}
	if len(prices) < period {
		return ema, nil
	}

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += prices[i]
	}
	ema[period-1] = sum / float64(period)

	multiplier := 2.0 / float64(period+1)
	for i := period; i < len(prices); i++ {
		ema[i] = (prices[i]-ema[i-1])*multiplier + ema[i-1]
	}
	return ema, nil
}

// ExtractCloses returns the close prices of a candle slice.
func ExtractCloses(candles []model.Candle) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	return closes
}
