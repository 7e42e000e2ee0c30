package server

import (
	"encoding/json"
	"log"
	"math"
	"net/http"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/config"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/model"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/notifier"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/scanner"
)

// Handler serves the dashboard and its JSON API.
type Handler struct {
	Cfg        *config.Config
	Scanner    *scanner.Scanner
	Dispatcher *notifier.Dispatcher
}

// NewHandler creates the route mux for the dashboard.
func NewHandler(cfg *config.Config, sc *scanner.Scanner, disp *notifier.Dispatcher) http.Handler {
	h := &Handler{Cfg: cfg, Scanner: sc, Dispatcher: disp}
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.dashboard)
	mux.HandleFunc("/api/scan", h.apiScan)
	mux.HandleFunc("/api/test-alert", h.apiTestAlert)
	mux.HandleFunc("/healthz", h.healthz)
	return mux
}

// requestFromQuery resolves the asset/timeframe/news selection. Unknown
// names fall back to configured defaults.
func (h *Handler) requestFromQuery(r *http.Request) scanner.Request {
	q := r.URL.Query()
	news := h.Cfg.Alerts.NewsPause
	if v := q.Get("news"); v != "" {
		news = v == "1" || v == "true"
	}
	return scanner.Request{
		Asset:     h.Cfg.AssetByName(q.Get("asset")),
		Timeframe: h.Cfg.TimeframeByName(q.Get("tf")),
		NewsPause: news,
	}
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	req := h.requestFromQuery(r)
	res, err := h.Scanner.Scan(req)
	if err != nil {
		log.Printf("[ERROR] scan: %v", err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderDashboard(w, h.Cfg, req, res, err); err != nil {
		log.Printf("[ERROR] render dashboard: %v", err)
	}
}

// scanResponse is the JSON shape of one scan.
type scanResponse struct {
	Asset     string                `json:"asset"`
	Timeframe string                `json:"timeframe"`
	Signal    string                `json:"signal"`
	Label     string                `json:"label"`
	Color     string                `json:"color"`
	Price     float64               `json:"price,omitempty"`
	Targets   *model.Targets        `json:"targets,omitempty"`
	Candles   []candleJSON          `json:"candles"`
	Strengths []model.StrengthEntry `json:"strengths"`
	Error     string                `json:"error,omitempty"`
}

type candleJSON struct {
	Time     int64   `json:"time"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	EMA20    float64 `json:"ema20"`
	EMA50    float64 `json:"ema50"`
	MACDHist float64 `json:"macd_hist"`
}

func toScanResponse(req scanner.Request, res *scanner.Result, scanErr error) scanResponse {
	out := scanResponse{
		Asset:     req.Asset.Name,
		Timeframe: req.Timeframe.Name,
		Strengths: res.Strengths,
		Candles:   []candleJSON{},
	}
	if scanErr != nil {
		out.Error = scanErr.Error()
	}
	if res.Evaluation != nil {
		out.Signal = string(res.Evaluation.State)
		out.Label = res.Evaluation.State.Label()
		out.Color = res.Evaluation.State.Color()
		out.Price = res.Evaluation.Candle.Close
		out.Targets = res.Evaluation.Targets
	} else {
		out.Signal = string(model.StateScanning)
		out.Label = model.StateScanning.Label()
		out.Color = model.StateScanning.Color()
	}
	for _, row := range res.Series {
		out.Candles = append(out.Candles, candleJSON{
			Time:     row.Time.Unix(),
			Open:     row.Open,
			High:     row.High,
			Low:      row.Low,
			Close:    row.Close,
			EMA20:    nanToZero(row.EMA20),
			EMA50:    nanToZero(row.EMA50),
			MACDHist: nanToZero(row.MACDHist),
		})
	}
	return out
}

// nanToZero maps warm-up NaN values to 0 so they survive JSON encoding.
// Consumers treat 0 indicator values as "not yet defined".
func nanToZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

func (h *Handler) apiScan(w http.ResponseWriter, r *http.Request) {
	req := h.requestFromQuery(r)
	res, err := h.Scanner.Scan(req)
	if err != nil {
		log.Printf("[ERROR] scan: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toScanResponse(req, res, err)); err != nil {
		log.Printf("[ERROR] encode scan response: %v", err)
	}
}

func (h *Handler) apiTestAlert(w http.ResponseWriter, r *http.Request) {
	req := h.requestFromQuery(r)
	w.Header().Set("Content-Type", "application/json")
	if !h.Dispatcher.Sender.Configured() {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "missing bot token or chat id"})
		return
	}
	if err := h.Dispatcher.SendTest(req.Asset.Name); err != nil {
		log.Printf("[WARN] test alert: %v", err)
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"status": "sent"})
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
