package strategy

import (
	"math"
	"testing"
	"time"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/collector"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/model"
)

// activeWeekday is a Wednesday 18:00 UTC, inside the default window.
var activeWeekday = time.Date(2024, 7, 3, 18, 0, 0, 0, time.UTC)

func testSession(newsPause bool) Session {
	return Session{
		Location:  time.UTC,
		OpenHour:  15,
		CloseHour: 23,
		NewsPause: newsPause,
	}
}

func buyRow() model.Row {
	return model.Row{
		Candle: model.Candle{
			Time:  activeWeekday.Add(-15 * time.Minute),
			Open:  1.1040,
			High:  1.1055,
			Low:   1.1030,
			Close: 1.1050,
		},
		EMA20:     1.1040,
		EMA50:     1.1000,
		MACDHist:  0.0002,
		Body:      0.0010,
		LowerWick: 0.0005,
		UpperWick: 0.0001,
	}
}

func sellRow() model.Row {
	return model.Row{
		Candle: model.Candle{
			Time:  activeWeekday.Add(-15 * time.Minute),
			Open:  1.0960,
			High:  1.0970,
			Low:   1.0945,
			Close: 1.0950,
		},
		EMA20:     1.0960,
		EMA50:     1.1000,
		MACDHist:  -0.0002,
		Body:      0.0010,
		LowerWick: 0.0001,
		UpperWick: 0.0005,
	}
}

func TestEvaluate_BuySignal(t *testing.T) {
	e := NewEngine(0.2, testSession(false))
	eval := e.Evaluate(model.Series{buyRow()}, activeWeekday)

	if eval.State != model.StateBuy {
		t.Fatalf("expected BUY, got %s", eval.State)
	}
	if eval.Targets == nil {
		t.Fatal("expected targets on buy signal")
	}
	if math.Abs(eval.Targets.StopLoss-1.1000) > 1e-9 {
		t.Errorf("stop loss: expected 1.1000, got %.5f", eval.Targets.StopLoss)
	}
	if math.Abs(eval.Targets.TakeProfit1-1.1100) > 1e-9 {
		t.Errorf("take profit 1: expected 1.1100, got %.5f", eval.Targets.TakeProfit1)
	}
	if math.Abs(eval.Targets.TakeProfit2-1.1150) > 1e-9 {
		t.Errorf("take profit 2: expected 1.1150, got %.5f", eval.Targets.TakeProfit2)
	}
}

func TestEvaluate_SellSignalMirrorsTargets(t *testing.T) {
	e := NewEngine(0.2, testSession(false))
	eval := e.Evaluate(model.Series{sellRow()}, activeWeekday)

	if eval.State != model.StateSell {
		t.Fatalf("expected SELL, got %s", eval.State)
	}
	if math.Abs(eval.Targets.StopLoss-1.1000) > 1e-9 {
		t.Errorf("stop loss: expected 1.1000, got %.5f", eval.Targets.StopLoss)
	}
	// risk = |1.0950 - 1.1000| = 0.0050, targets subtract it
	if math.Abs(eval.Targets.TakeProfit1-1.0900) > 1e-9 {
		t.Errorf("take profit 1: expected 1.0900, got %.5f", eval.Targets.TakeProfit1)
	}
	if math.Abs(eval.Targets.TakeProfit2-1.0850) > 1e-9 {
		t.Errorf("take profit 2: expected 1.0850, got %.5f", eval.Targets.TakeProfit2)
	}
}

func TestEvaluate_WickTieDoesNotFire(t *testing.T) {
	row := buyRow()
	row.LowerWick = row.Body * 0.2 // exactly at threshold
	e := NewEngine(0.2, testSession(false))
	eval := e.Evaluate(model.Series{row}, activeWeekday)
	if eval.State != model.StateScanning {
		t.Errorf("tie on wick ratio must not fire, got %s", eval.State)
	}
}

func TestEvaluate_NaNIndicatorsNeverFire(t *testing.T) {
	row := buyRow()
	row.EMA50 = math.NaN()
	e := NewEngine(0.2, testSession(false))
	eval := e.Evaluate(model.Series{row}, activeWeekday)
	if eval.State != model.StateScanning {
		t.Errorf("undefined indicators must evaluate to scanning, got %s", eval.State)
	}
}

func TestEvaluate_SessionGatingPriority(t *testing.T) {
	saturday := time.Date(2024, 7, 6, 18, 0, 0, 0, time.UTC)
	offHours := time.Date(2024, 7, 3, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		now       time.Time
		newsPause bool
		want      model.State
	}{
		{"weekend closes the market", saturday, false, model.StateMarketClosed},
		{"weekend wins over news pause", saturday, true, model.StateMarketClosed},
		{"news pause wins over off-hours", offHours, true, model.StateNewsPause},
		{"off-hours waits for session", offHours, false, model.StateWaiting},
	}
	for _, tt := range tests {
		// buyRow satisfies the rule: gating must win regardless.
		e := NewEngine(0.2, testSession(tt.newsPause))
		eval := e.Evaluate(model.Series{buyRow()}, tt.now)
		if eval.State != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, eval.State)
		}
	}
}

func TestEvaluate_EmptySeriesScans(t *testing.T) {
	e := NewEngine(0.2, testSession(false))
	eval := e.Evaluate(model.Series{}, activeWeekday)
	if eval.State != model.StateScanning {
		t.Errorf("expected scanning on empty series, got %s", eval.State)
	}
	if eval.Targets != nil {
		t.Error("expected no targets on empty series")
	}
}

func TestEvaluate_ShortSeriesNeverFires(t *testing.T) {
	// Fewer candles than the EMA(50) warm-up: indicators stay NaN and
	// the rule must not fire whatever the candle shapes are.
	candles := collector.GenerateMockCandles(1.1000, 30)
	series, err := collector.Augment(candles)
	if err != nil {
		t.Fatalf("augment: %v", err)
	}
	e := NewEngine(0.2, testSession(false))
	eval := e.Evaluate(series, activeWeekday)
	if eval.State == model.StateBuy || eval.State == model.StateSell {
		t.Errorf("rule fired on series shorter than warm-up: %s", eval.State)
	}
}
