package collector

import (
	"reflect"
	"testing"
	"time"
)

func TestCachedFetcher_MemoizesWithinTTL(t *testing.T) {
	mock := &MockFetcher{Candles: GenerateMockCandles(1.1000, 10)}
	cached := NewCachedFetcher(mock, time.Minute, 5*time.Minute)

	first, err := cached.FetchCandles("EURUSD=X", "15m", 10)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := cached.FetchCandles("EURUSD=X", "15m", 10)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if mock.CandleCalls != 1 {
		t.Errorf("expected 1 upstream call within TTL, got %d", mock.CandleCalls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical series from cached fetch")
	}
}

func TestCachedFetcher_DistinctKeysMiss(t *testing.T) {
	mock := &MockFetcher{Candles: GenerateMockCandles(1.1000, 10)}
	cached := NewCachedFetcher(mock, time.Minute, 5*time.Minute)

	if _, err := cached.FetchCandles("EURUSD=X", "15m", 10); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if _, err := cached.FetchCandles("EURUSD=X", "5m", 5); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if mock.CandleCalls != 2 {
		t.Errorf("expected 2 upstream calls for distinct keys, got %d", mock.CandleCalls)
	}
}

func TestCachedFetcher_RefetchesAfterExpiry(t *testing.T) {
	mock := &MockFetcher{Candles: GenerateMockCandles(1.1000, 10)}
	cached := NewCachedFetcher(mock, time.Minute, 5*time.Minute)

	now := time.Now()
	cached.now = func() time.Time { return now }

	if _, err := cached.FetchCandles("EURUSD=X", "15m", 10); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	now = now.Add(2 * time.Minute)
	if _, err := cached.FetchCandles("EURUSD=X", "15m", 10); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if mock.CandleCalls != 2 {
		t.Errorf("expected refetch after expiry, got %d upstream calls", mock.CandleCalls)
	}
}

func TestCachedFetcher_DailyClosesUseStrengthTTL(t *testing.T) {
	mock := &MockFetcher{DailyCloses: map[string][]float64{"JPY=X": {150, 151}}}
	cached := NewCachedFetcher(mock, time.Minute, 5*time.Minute)

	for i := 0; i < 3; i++ {
		closes, err := cached.FetchDailyCloses("JPY=X", 5)
		if err != nil {
			t.Fatalf("fetch closes: %v", err)
		}
		if len(closes) != 2 {
			t.Fatalf("expected 2 closes, got %d", len(closes))
		}
	}
	if mock.CloseCalls != 1 {
		t.Errorf("expected 1 upstream call for repeated close fetches, got %d", mock.CloseCalls)
	}
}
