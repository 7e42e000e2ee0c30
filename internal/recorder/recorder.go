package recorder

import "time"

// SignalEvent records one fired Buy/Sell classification.
type SignalEvent struct {
	Time        time.Time
	Asset       string
	Timeframe   string
	Signal      string
	Price       float64
	TakeProfit1 float64
	TakeProfit2 float64
	StopLoss    float64
}

// Recorder persists signal history for later analysis.
type Recorder interface {
	RecordSignal(evt *SignalEvent) error
	Close() error
}
