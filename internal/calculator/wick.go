package calculator

import (
	"math"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/model"
)

// Wick returns the body size, lower wick and upper wick of a candle.
// Body is the absolute open-close distance; the wicks are the portions
// of the high-low range outside the body.
func Wick(c model.Candle) (body, lower, upper float64) {
	body = math.Abs(c.Close - c.Open)
	lower = math.Min(c.Open, c.Close) - c.Low
	upper = c.High - math.Max(c.Open, c.Close)
	return body, lower, upper
}
