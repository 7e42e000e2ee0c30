package strategy

import (
	"time"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/model"
)

// Session holds the gating parameters: the reference timezone, the
// active trading hours (inclusive on both ends) and the news-pause flag.
type Session struct {
	Location  *time.Location
	OpenHour  int
	CloseHour int
	NewsPause bool
}

// Gate applies the session checks in priority order and returns the
// gated state, or StateScanning when rule evaluation may proceed.
func (s Session) Gate(now time.Time) model.State {
	local := now.In(s.Location)
	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return model.StateMarketClosed
	}
	if s.NewsPause {
		return model.StateNewsPause
	}
	if h := local.Hour(); h < s.OpenHour || h > s.CloseHour {
		return model.StateWaiting
	}
	return model.StateScanning
}
