package strategy

import (
	"math"
	"time"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/model"
)

// Engine evaluates the wick-ratio rule against the latest candle of an
// indicator-augmented series.
type Engine struct {
	WickRatio float64
	Session   Session
}

// NewEngine creates an Engine.
func NewEngine(wickRatio float64, session Session) *Engine {
	return &Engine{WickRatio: wickRatio, Session: session}
}

// Evaluate classifies the most recent candle. Session gates are checked
// first (weekend close, news pause, active hours); only inside the
// active window is the buy/sell rule evaluated, defaulting to Scanning.
func (e *Engine) Evaluate(series model.Series, now time.Time) *model.Evaluation {
	eval := &model.Evaluation{State: e.Session.Gate(now), At: now}
	if eval.State != model.StateScanning {
		if !series.Empty() {
			eval.Candle = series.Last().Candle
		}
		return eval
	}
	if series.Empty() {
		return eval
	}

	curr := series.Last()
	eval.Candle = curr.Candle

	// Undefined indicators (insufficient warm-up) never fire the rule.
	if math.IsNaN(curr.EMA20) || math.IsNaN(curr.EMA50) || math.IsNaN(curr.MACDHist) {
		return eval
	}

	risk := math.Abs(curr.Close - curr.EMA50)

	// Buy: rejection off EMA20 above EMA50 with bullish momentum.
	if curr.Close > curr.EMA50 && curr.Low <= curr.EMA20 &&
		curr.LowerWick > curr.Body*e.WickRatio && curr.MACDHist > 0 {
		eval.State = model.StateBuy
		eval.Targets = &model.Targets{
			StopLoss:    curr.EMA50,
			TakeProfit1: curr.Close + risk,
			TakeProfit2: curr.Close + 2*risk,
		}
		return eval
	}

	// Sell: mirrored rejection below EMA50 with bearish momentum.
	if curr.Close < curr.EMA50 && curr.High >= curr.EMA20 &&
		curr.UpperWick > curr.Body*e.WickRatio && curr.MACDHist < 0 {
		eval.State = model.StateSell
		eval.Targets = &model.Targets{
			StopLoss:    curr.EMA50,
			TakeProfit1: curr.Close - risk,
			TakeProfit2: curr.Close - 2*risk,
		}
		return eval
	}

	return eval
}
