// Command wake periodically pings the deployed dashboard URL so the
// hosting platform does not idle it out.
package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func pingOnce(client *http.Client, appURL string) {
	resp, err := client.Get(appURL)
	if err != nil {
		log.Printf("[WARN] ping failed: %v", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		log.Printf("[INFO] pinged %s: status %d", appURL, resp.StatusCode)
	} else {
		log.Printf("[WARN] app might be sleeping, status %d", resp.StatusCode)
	}
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	_ = godotenv.Load()

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		log.Fatal("[FATAL] APP_URL is required")
	}
	schedule := os.Getenv("WAKE_CRON")
	if schedule == "" {
		schedule = "@every 10m"
	}

	client := &http.Client{Timeout: 30 * time.Second}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { pingOnce(client, appURL) }); err != nil {
		log.Fatalf("[FATAL] register ping schedule: %v", err)
	}
	c.Start()
	defer c.Stop()

	log.Printf("[INFO] wake pinger running (%s), target %s", schedule, appURL)
	pingOnce(client, appURL)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] wake pinger stopped")
}
