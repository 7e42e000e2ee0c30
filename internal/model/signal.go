package model

import "time"

// State classifies the most recent candle.
type State string

const (
	StateScanning     State = "SCANNING"
	StateBuy          State = "BUY"
	StateSell         State = "SELL"
	StateMarketClosed State = "MARKET_CLOSED"
	StateNewsPause    State = "NEWS_PAUSE"
	StateWaiting      State = "WAITING_FOR_SESSION"
)

// Label returns the display headline for a state.
func (s State) Label() string {
	switch s {
	case StateBuy:
		return "🚀 PRO BUY SIGNAL"
	case StateSell:
		return "🔥 PRO SELL SIGNAL"
	case StateMarketClosed:
		return "🌙 MARKET CLOSED"
	case StateNewsPause:
		return "📰 NEWS PAUSE"
	case StateWaiting:
		return "⏳ WAITING FOR SESSION"
	default:
		return "🔎 SCANNING..."
	}
}

// Color returns the display color for a state.
func (s State) Color() string {
	switch s {
	case StateBuy:
		return "#00FF00"
	case StateSell:
		return "#FF4B4B"
	default:
		return "#888888"
	}
}

// Actionable reports whether the state should trigger a notification.
func (s State) Actionable() bool {
	return s == StateBuy || s == StateSell
}

// Targets carries the price levels attached to a Buy/Sell classification.
type Targets struct {
	StopLoss    float64 `json:"stop_loss"`
	TakeProfit1 float64 `json:"take_profit_1"`
	TakeProfit2 float64 `json:"take_profit_2"`
}

// Evaluation is the outcome of one rule pass over the latest candle.
type Evaluation struct {
	State   State
	Targets *Targets // nil unless State is Buy or Sell
	Candle  Candle   // latest candle evaluated; zero value if series was empty
	At      time.Time
}
