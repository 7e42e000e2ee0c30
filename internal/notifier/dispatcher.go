package notifier

import (
	"log"
	"sync"
	"time"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/model"
)

// Dispatcher delivers Buy/Sell alerts with per-candle de-duplication.
// It remembers the timestamp of the last candle an alert was sent for,
// scoped to the lifetime of the process (one user session), and
// suppresses repeats while the latest candle is unchanged.
type Dispatcher struct {
	Sender  Sender
	Enabled bool

	mu        sync.Mutex
	lastAlert time.Time
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(sender Sender, enabled bool) *Dispatcher {
	return &Dispatcher{Sender: sender, Enabled: enabled}
}

// Dispatch sends an alert for an actionable evaluation. Delivery is
// fire-and-forget: transport failures are logged and swallowed. The
// de-dup token is advanced after an attempted send either way, so the
// same candle never produces a second delivery attempt.
func (d *Dispatcher) Dispatch(eval *model.Evaluation, assetName, timeframe string) {
	if !eval.State.Actionable() {
		return
	}
	if !d.Enabled || !d.Sender.Configured() {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if eval.Candle.Time.Equal(d.lastAlert) {
		return
	}
	d.lastAlert = eval.Candle.Time

	msg := FormatAlert(eval, assetName, timeframe)
	if err := d.Sender.Send(msg); err != nil {
		log.Printf("[WARN] telegram alert failed: %v", err)
	}
}

// SendTest delivers the connection-test message, returning the delivery
// error so the UI can surface it.
func (d *Dispatcher) SendTest(assetName string) error {
	return d.Sender.Send(FormatTest(assetName))
}
