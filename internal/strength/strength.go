package strength

import (
	"log"
	"sort"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/collector"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/model"
)

// Currency maps a display code to its provider symbol. Inverted
// currencies are quoted USD-per-unit, so a rising quote means a weaker
// currency and the change sign is flipped.
type Currency struct {
	Code     string
	Symbol   string
	Inverted bool
}

// DefaultCurrencies is the sidebar watchlist.
var DefaultCurrencies = []Currency{
	{Code: "EUR", Symbol: "EURUSD=X"},
	{Code: "GBP", Symbol: "GBPUSD=X"},
	{Code: "AUD", Symbol: "AUDUSD=X"},
	{Code: "NZD", Symbol: "NZDUSD=X"},
	{Code: "JPY", Symbol: "JPY=X", Inverted: true},
	{Code: "PHP", Symbol: "PHP=X", Inverted: true},
}

// Ranker computes the currency-strength sidebar ranking.
type Ranker struct {
	Fetcher    collector.Fetcher
	Currencies []Currency
}

// NewRanker creates a Ranker over the default watchlist.
func NewRanker(fetcher collector.Fetcher) *Ranker {
	return &Ranker{Fetcher: fetcher, Currencies: DefaultCurrencies}
}

// Rank fetches a two-point daily series per currency and returns the
// day-over-day percentage changes sorted descending. A currency whose
// fetch fails or returns fewer than two closes is omitted.
func (r *Ranker) Rank() []model.StrengthEntry {
	entries := make([]model.StrengthEntry, 0, len(r.Currencies))
	for _, cur := range r.Currencies {
		closes, err := r.Fetcher.FetchDailyCloses(cur.Symbol, 5)
		if err != nil {
			log.Printf("[WARN] strength fetch %s: %v", cur.Code, err)
			continue
		}
		change, ok := Change(closes, cur.Inverted)
		if !ok {
			continue
		}
		entries = append(entries, model.StrengthEntry{Currency: cur.Code, Change: change})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Change > entries[j].Change })
	return entries
}

// Change computes the percentage change between the last two closes,
// sign-inverted for USD-quoted currencies. Returns false when the
// series is too short or the base close is zero.
func Change(closes []float64, inverted bool) (float64, bool) {
	if len(closes) < 2 {
		return 0, false
	}
	prev := closes[len(closes)-2]
	last := closes[len(closes)-1]
	if prev == 0 {
		return 0, false
	}
	change := (last - prev) / prev * 100
	if inverted {
		change = -change
	}
	return change, true
}
