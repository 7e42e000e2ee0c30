package notifier

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/model"
)

// fakeSender records sent messages.
type fakeSender struct {
	configured bool
	err        error
	sent       []string
}

func (f *fakeSender) Configured() bool { return f.configured }

func (f *fakeSender) Send(text string) error {
	f.sent = append(f.sent, text)
	return f.err
}

func buyEval(candleTime time.Time) *model.Evaluation {
	return &model.Evaluation{
		State: model.StateBuy,
		Targets: &model.Targets{
			StopLoss:    1.1000,
			TakeProfit1: 1.1100,
			TakeProfit2: 1.1150,
		},
		Candle: model.Candle{Time: candleTime, Close: 1.1050},
		At:     candleTime,
	}
}

func TestDispatch_DeduplicatesSameCandle(t *testing.T) {
	sender := &fakeSender{configured: true}
	d := NewDispatcher(sender, true)
	ts := time.Date(2024, 7, 3, 18, 0, 0, 0, time.UTC)

	d.Dispatch(buyEval(ts), "EURUSD", "15m")
	d.Dispatch(buyEval(ts), "EURUSD", "15m")
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 delivery for unchanged candle, got %d", len(sender.sent))
	}

	d.Dispatch(buyEval(ts.Add(15*time.Minute)), "EURUSD", "15m")
	if len(sender.sent) != 2 {
		t.Errorf("expected delivery for new candle, got %d", len(sender.sent))
	}
}

func TestDispatch_SkipsWhenDisabledOrUnconfigured(t *testing.T) {
	ts := time.Date(2024, 7, 3, 18, 0, 0, 0, time.UTC)

	disabled := &fakeSender{configured: true}
	NewDispatcher(disabled, false).Dispatch(buyEval(ts), "EURUSD", "15m")
	if len(disabled.sent) != 0 {
		t.Error("expected no delivery when alerts are disabled")
	}

	unconfigured := &fakeSender{configured: false}
	NewDispatcher(unconfigured, true).Dispatch(buyEval(ts), "EURUSD", "15m")
	if len(unconfigured.sent) != 0 {
		t.Error("expected no delivery without credentials")
	}
}

func TestDispatch_IgnoresNonActionableStates(t *testing.T) {
	sender := &fakeSender{configured: true}
	d := NewDispatcher(sender, true)
	for _, state := range []model.State{
		model.StateScanning, model.StateMarketClosed,
		model.StateNewsPause, model.StateWaiting,
	} {
		d.Dispatch(&model.Evaluation{State: state}, "EURUSD", "15m")
	}
	if len(sender.sent) != 0 {
		t.Errorf("expected no deliveries for non-actionable states, got %d", len(sender.sent))
	}
}

func TestDispatch_SendFailureStillAdvancesToken(t *testing.T) {
	sender := &fakeSender{configured: true, err: errors.New("telegram down")}
	d := NewDispatcher(sender, true)
	ts := time.Date(2024, 7, 3, 18, 0, 0, 0, time.UTC)

	d.Dispatch(buyEval(ts), "EURUSD", "15m")
	d.Dispatch(buyEval(ts), "EURUSD", "15m")
	if len(sender.sent) != 1 {
		t.Errorf("expected exactly one attempt per candle, got %d", len(sender.sent))
	}
}

func TestFormatAlert(t *testing.T) {
	ts := time.Date(2024, 7, 3, 18, 0, 0, 0, time.UTC)
	msg := FormatAlert(buyEval(ts), "EURUSD", "15m")

	for _, want := range []string{
		"PRO BUY SIGNAL",
		"EURUSD (15m)",
		"Price: 1.1050",
		"TP1: 1.1100",
		"SL: 1.1000",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("alert message missing %q:\n%s", want, msg)
		}
	}
}
