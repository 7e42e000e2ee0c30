package collector

import (
	"errors"
	"math"
	"testing"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/model"
)

func TestCollect_EmptyFetchYieldsEmptySeries(t *testing.T) {
	col := NewCollector(&MockFetcher{Candles: []model.Candle{}})
	series, err := col.Collect("EURUSD=X", "15m", 10)
	if err != nil {
		t.Fatalf("empty provider result must not be an error: %v", err)
	}
	if !series.Empty() {
		t.Errorf("expected empty series, got %d rows", len(series))
	}
}

func TestCollect_FetchErrorPropagates(t *testing.T) {
	col := NewCollector(&MockFetcher{CandleErr: errors.New("network down")})
	if _, err := col.Collect("EURUSD=X", "15m", 10); err == nil {
		t.Error("expected transport error to propagate")
	}
}

func TestAugment_IndicatorFields(t *testing.T) {
	candles := GenerateMockCandles(1.1000, 80)
	series, err := Augment(candles)
	if err != nil {
		t.Fatalf("augment: %v", err)
	}
	if len(series) != len(candles) {
		t.Fatalf("expected %d rows, got %d", len(candles), len(series))
	}

	// Warm-up boundaries: EMA20 from index 19, EMA50 from 49, MACD
	// histogram from 33.
	if !math.IsNaN(series[18].EMA20) || math.IsNaN(series[19].EMA20) {
		t.Error("EMA20 warm-up boundary wrong")
	}
	if !math.IsNaN(series[48].EMA50) || math.IsNaN(series[49].EMA50) {
		t.Error("EMA50 warm-up boundary wrong")
	}
	if !math.IsNaN(series[32].MACDHist) || math.IsNaN(series[33].MACDHist) {
		t.Error("MACD histogram warm-up boundary wrong")
	}

	// Wick geometry is defined on every row.
	for i, row := range series {
		if row.Body < 0 || row.LowerWick < 0 || row.UpperWick < 0 {
			t.Fatalf("row %d: negative wick geometry", i)
		}
	}
}
