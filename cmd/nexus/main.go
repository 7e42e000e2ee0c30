package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/collector"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/config"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/notifier"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/recorder"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/scanner"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/server"
	"github.com/Nwuebsisj/nexus-ultra-pro/internal/strength"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] nexus starting...")

	// .env is optional; real config comes from yaml + environment.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Session.Timezone)
	if err != nil {
		log.Fatalf("[FATAL] load timezone: %v", err)
	}

	// Legacy CSV log stub: created once, never written to.
	if err := recorder.EnsureCSVStub(cfg.LogCSVPath); err != nil {
		log.Printf("[WARN] csv log stub: %v", err)
	}

	// Init fetcher with time-boxed memoization.
	fetcher := collector.NewCachedFetcher(
		collector.NewYahooFetcher(cfg.Proxy),
		cfg.PriceTTL(), cfg.StrengthTTL(),
	)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	col := collector.NewCollector(fetcher)
	ranker := strength.NewRanker(fetcher)

	// Init Telegram dispatcher. Missing credentials just disable alerts.
	tg := notifier.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	if !tg.Configured() {
		log.Println("[WARN] telegram credentials missing, alerts disabled")
	}
	disp := notifier.NewDispatcher(tg, cfg.Alerts.Enabled)

	// Init recorder.
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	sc := scanner.NewScanner(cfg, col, ranker, disp, rec, loc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := server.NewHTTPServer(ctx, cfg.Server.Addr, server.NewHandler(cfg, sc, disp))
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(ctx)
	}()
	log.Printf("[INFO] dashboard listening on %s", cfg.Server.Addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Printf("[ERROR] server: %v", err)
		}
	}
	log.Println("[INFO] nexus stopped")
}
