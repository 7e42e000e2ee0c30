package server

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/config"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/scanner"
)

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

// dashboardView is the data passed to the dashboard template.
type dashboardView struct {
	Title      string
	Assets     []config.Asset
	Timeframes []config.Timeframe
	Selected   scanner.Request
	Resp       scanResponse
	ChartJSON  template.JS
	NewsPause  bool
	FetchError string
}

func renderDashboard(w io.Writer, cfg *config.Config, req scanner.Request, res *scanner.Result, scanErr error) error {
	resp := toScanResponse(req, res, scanErr)

	chart, err := json.Marshal(resp.Candles)
	if err != nil {
		return fmt.Errorf("marshal chart data: %w", err)
	}

	view := dashboardView{
		Title:      "Nexus Ultra Pro: Mobile Alert System",
		Assets:     cfg.Assets,
		Timeframes: cfg.Timeframes,
		Selected:   req,
		Resp:       resp,
		ChartJSON:  template.JS(chart),
		NewsPause:  req.NewsPause,
	}
	if scanErr != nil {
		view.FetchError = scanErr.Error()
	}
	return dashboardTmpl.Execute(w, view)
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { background:#0e1117; color:#fafafa; font-family:sans-serif; margin:0; padding:1rem 2rem; }
h1 { text-align:center; }
.signal { text-align:center; font-size:2.2rem; margin:1rem 0; }
.metrics { display:flex; justify-content:center; gap:3rem; margin-bottom:1rem; }
.metric { text-align:center; }
.metric .value { font-size:1.6rem; font-weight:bold; }
.metric .name { color:#9aa0a6; font-size:0.8rem; }
.layout { display:flex; gap:2rem; }
.chart { flex:1; }
.sidebar { width:220px; }
table { border-collapse:collapse; width:100%; }
td, th { padding:0.3rem 0.6rem; border-bottom:1px solid #2b2f36; text-align:right; }
.pos { color:#00c853; } .neg { color:#ff5252; }
form { text-align:center; margin-bottom:1rem; }
select, button { background:#1c2128; color:#fafafa; border:1px solid #2b2f36; padding:0.3rem; }
.err { color:#ff5252; text-align:center; }
</style>
</head>
<body>
<h1>🏛️ {{.Title}}</h1>
<form method="get" action="/">
  <label>Asset <select name="asset">
    {{range .Assets}}<option value="{{.Name}}" {{if eq .Name $.Selected.Asset.Name}}selected{{end}}>{{.Name}}</option>{{end}}
  </select></label>
  <label>Timeframe <select name="tf">
    {{range .Timeframes}}<option value="{{.Name}}" {{if eq .Name $.Selected.Timeframe.Name}}selected{{end}}>{{.Name}}</option>{{end}}
  </select></label>
  <label><input type="checkbox" name="news" value="1" {{if .NewsPause}}checked{{end}}> High Impact News Today?</label>
  <button type="submit">Refresh</button>
  <button type="button" onclick="fetch('/api/test-alert?asset={{.Selected.Asset.Name}}').then(r=>r.json()).then(j=>alert(j.status||j.error))">🔔 Send Test Alert</button>
</form>
{{if .FetchError}}<p class="err">data fetch failed: {{.FetchError}}</p>{{end}}
<div class="signal" style="color:{{.Resp.Color}}">{{.Resp.Label}}</div>
{{if .Resp.Targets}}
<div class="metrics">
  <div class="metric"><div class="value">{{printf "%.5f" .Resp.Targets.StopLoss}}</div><div class="name">STOP LOSS</div></div>
  <div class="metric"><div class="value">{{printf "%.5f" .Resp.Targets.TakeProfit1}}</div><div class="name">SAFE TP</div></div>
  <div class="metric"><div class="value">{{printf "%.5f" .Resp.Targets.TakeProfit2}}</div><div class="name">PRO TP</div></div>
</div>
{{end}}
<div class="layout">
  <div class="chart">
    {{if .Resp.Candles}}
    <canvas id="chart" width="960" height="480"></canvas>
    {{else}}
    <p class="err">No market data available.</p>
    {{end}}
  </div>
  <div class="sidebar">
    <h3>💪 Currency Strength</h3>
    <table>
      {{range .Resp.Strengths}}
      <tr><td style="text-align:left">{{.Currency}}</td>
        <td class="{{if ge .Change 0.0}}pos{{else}}neg{{end}}">{{printf "%+.2f%%" .Change}}</td></tr>
      {{end}}
    </table>
  </div>
</div>
<script>
var candles = {{.ChartJSON}};
(function () {
  var cv = document.getElementById('chart');
  if (!cv || candles.length === 0) return;
  var ctx = cv.getContext('2d');
  var n = candles.length, w = cv.width, h = cv.height, pad = 50;
  var lo = Infinity, hi = -Infinity;
  candles.forEach(function (c) {
    lo = Math.min(lo, c.low); hi = Math.max(hi, c.high);
  });
  var x = function (i) { return pad + (w - 2 * pad) * i / (n - 1); };
  var y = function (p) { return h - pad - (h - 2 * pad) * (p - lo) / (hi - lo); };
  var bw = Math.max(1, (w - 2 * pad) / n * 0.6);
  candles.forEach(function (c, i) {
    var up = c.close >= c.open;
    ctx.strokeStyle = ctx.fillStyle = up ? '#00c853' : '#ff5252';
    ctx.beginPath();
    ctx.moveTo(x(i), y(c.high)); ctx.lineTo(x(i), y(c.low)); ctx.stroke();
    var top = y(Math.max(c.open, c.close));
    ctx.fillRect(x(i) - bw / 2, top, bw, Math.max(1, Math.abs(y(c.open) - y(c.close))));
  });
  var line = function (key, color) {
    ctx.strokeStyle = color; ctx.beginPath();
    var started = false;
    candles.forEach(function (c, i) {
      if (!c[key]) return;
      if (!started) { ctx.moveTo(x(i), y(c[key])); started = true; }
      else { ctx.lineTo(x(i), y(c[key])); }
    });
    ctx.stroke();
  };
  line('ema20', 'yellow');
  line('ema50', 'cyan');
})();
</script>
</body>
</html>
`
