package calculator

import (
	"errors"
	"math"
)

// MACDHistogram computes the MACD histogram (MACD line minus its signal
// line) over the price series. Positions before the warm-up index
// (slow+signal-2) are NaN.
func MACDHistogram(prices []float64, fast, slow, signal int) ([]float64, error) {
	if fast <= 0 || signal <= 0 || slow <= fast {
		return nil, errors.New("periods must satisfy 0 < fast < slow and signal > 0")
	}

	hist := make([]float64, len(prices))
	for i := range hist {
		hist[i] = math.NaN()
	}
	if len(prices) < slow+signal-1 {
		return hist, nil
	}

	fastEMA, err := EMASeries(prices, fast)
	if err != nil {
		return nil, err
	}
	slowEMA, err := EMASeries(prices, slow)
	if err != nil {
		return nil, err
	}

	// MACD line is defined from the slow warm-up index onward.
	macdLine := make([]float64, 0, len(prices)-slow+1)
	for i := slow - 1; i < len(prices); i++ {
		macdLine = append(macdLine, fastEMA[i]-slowEMA[i])
	}

	signalLine, err := EMASeries(macdLine, signal)
	if err != nil {
		return nil, err
	}

	for i, s := range signalLine {
		if math.IsNaN(s) {
			continue
		}
		hist[slow-1+i] = macdLine[i] - s
	}
	return hist, nil
}
