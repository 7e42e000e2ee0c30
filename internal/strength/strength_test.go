package strength

import (
	"errors"
	"math"
	"testing"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/model"
)

func TestChange(t *testing.T) {
	tests := []struct {
		name     string
		closes   []float64
		inverted bool
		want     float64
		ok       bool
	}{
		{"normal currency", []float64{100, 102}, false, 2.0, true},
		{"inverted currency", []float64{100, 102}, true, -2.0, true},
		{"declining normal", []float64{102, 100}, false, -100.0 / 51, true},
		{"single point", []float64{100}, false, 0, false},
		{"empty", nil, false, 0, false},
		{"zero base", []float64{0, 100}, false, 0, false},
	}
	for _, tt := range tests {
		got, ok := Change(tt.closes, tt.inverted)
		if ok != tt.ok {
			t.Errorf("%s: expected ok=%v, got %v", tt.name, tt.ok, ok)
			continue
		}
		if ok && math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: expected %.4f, got %.4f", tt.name, tt.want, got)
		}
	}
}

// stubFetcher serves canned daily closes and fails for symbols it does
// not know.
type stubFetcher struct {
	closes map[string][]float64
}

func (s *stubFetcher) Name() string { return "stub" }

func (s *stubFetcher) FetchCandles(_, _ string, _ int) ([]model.Candle, error) {
	return nil, errors.New("not implemented")
}

func (s *stubFetcher) FetchDailyCloses(symbol string, _ int) ([]float64, error) {
	closes, ok := s.closes[symbol]
	if !ok {
		return nil, errors.New("symbol unavailable")
	}
	return closes, nil
}

func TestRank_SortsDescendingAndOmitsFailures(t *testing.T) {
	fetcher := &stubFetcher{closes: map[string][]float64{
		"EURUSD=X": {100, 101},   // +1.00
		"GBPUSD=X": {100, 103},   // +3.00
		"JPY=X":    {150, 153},   // +2.00 quote, inverted to -2.00
		"PHP=X":    {56},         // too short, omitted
		"NZDUSD=X": {100, 99.50}, // -0.50
		// AUDUSD=X missing: fetch fails, omitted
	}}
	r := NewRanker(fetcher)
	entries := r.Rank()

	wantOrder := []string{"GBP", "EUR", "NZD", "JPY"}
	if len(entries) != len(wantOrder) {
		t.Fatalf("expected %d entries, got %d: %v", len(wantOrder), len(entries), entries)
	}
	for i, want := range wantOrder {
		if entries[i].Currency != want {
			t.Errorf("position %d: expected %s, got %s", i, want, entries[i].Currency)
		}
	}
	if math.Abs(entries[3].Change-(-2.0)) > 1e-9 {
		t.Errorf("JPY: expected inverted -2.00, got %.2f", entries[3].Change)
	}
}
