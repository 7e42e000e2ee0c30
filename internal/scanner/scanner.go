package scanner

import (
	"log"
	"time"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/collector"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/config"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/model"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/notifier"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/recorder"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/strategy"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/strength"
)

// Request selects what one refresh evaluates.
type Request struct {
	Asset     config.Asset
	Timeframe config.Timeframe
	NewsPause bool
}

// Result is everything one refresh produces for the presentation layer.
type Result struct {
	Asset      config.Asset
	Timeframe  config.Timeframe
	Evaluation *model.Evaluation
	Series     model.Series
	Strengths  []model.StrengthEntry
}

// Scanner runs the per-refresh pipeline: fetch, augment, gate, evaluate,
// maybe notify, record.
type Scanner struct {
	Collector  *collector.Collector
	Ranker     *strength.Ranker
	Dispatcher *notifier.Dispatcher
	Recorder   recorder.Recorder
	Location   *time.Location
	Cfg        *config.Config
}

// NewScanner creates a Scanner. The location must match the configured
// session timezone (validated at config load).
func NewScanner(cfg *config.Config, col *collector.Collector, rk *strength.Ranker,
	disp *notifier.Dispatcher, rec recorder.Recorder, loc *time.Location) *Scanner {
	return &Scanner{
		Collector:  col,
		Ranker:     rk,
		Dispatcher: disp,
		Recorder:   rec,
		Location:   loc,
		Cfg:        cfg,
	}
}

// Scan executes the full pipeline once. Notification and recording
// failures never abort the scan; only a fetch transport error is
// returned, and even then the strength sidebar is still populated.
func (s *Scanner) Scan(req Request) (*Result, error) {
	res := &Result{Asset: req.Asset, Timeframe: req.Timeframe}
	res.Strengths = s.Ranker.Rank()

	series, err := s.Collector.Collect(req.Asset.Symbol, req.Timeframe.Interval, req.Timeframe.LookbackDays)
	if err != nil {
		return res, err
	}
	res.Series = series

	engine := strategy.NewEngine(s.Cfg.Signal.WickRatio, strategy.Session{
		Location:  s.Location,
		OpenHour:  s.Cfg.Session.OpenHour,
		CloseHour: s.Cfg.Session.CloseHour,
		NewsPause: req.NewsPause,
	})
	eval := engine.Evaluate(series, time.Now())
	res.Evaluation = eval

	if eval.State.Actionable() {
		s.Dispatcher.Dispatch(eval, req.Asset.Name, req.Timeframe.Name)
		if err := s.Recorder.RecordSignal(&recorder.SignalEvent{
			Time:        eval.Candle.Time,
			Asset:       req.Asset.Name,
			Timeframe:   req.Timeframe.Name,
			Signal:      string(eval.State),
			Price:       eval.Candle.Close,
			TakeProfit1: eval.Targets.TakeProfit1,
			TakeProfit2: eval.Targets.TakeProfit2,
			StopLoss:    eval.Targets.StopLoss,
		}); err != nil {
			log.Printf("[ERROR] record signal: %v", err)
		}
	}

	return res, nil
}
