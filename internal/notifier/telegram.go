package notifier

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Sender delivers a notification message.
type Sender interface {
	Send(text string) error
	Configured() bool
}

// Telegram sends messages via the Telegram Bot API using a GET request
// with query parameters and Markdown formatting.
type Telegram struct {
	BotToken string
	ChatID   string
	BaseURL  string
	Client   *http.Client
}

// NewTelegram creates a Telegram sender with optional proxy support.
func NewTelegram(botToken, chatID, proxyURL string) *Telegram {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Telegram{
		BotToken: botToken,
		ChatID:   chatID,
		BaseURL:  "https://api.telegram.org",
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// Configured reports whether both credentials are present.
func (t *Telegram) Configured() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// Send delivers a message to the configured chat.
func (t *Telegram) Send(text string) error {
	params := url.Values{}
	params.Set("chat_id", t.ChatID)
	params.Set("text", text)
	params.Set("parse_mode", "Markdown")

	apiURL := fmt.Sprintf("%s/bot%s/sendMessage?%s", t.BaseURL, t.BotToken, params.Encode())
	resp, err := t.Client.Get(apiURL)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode, string(body))
	}
	return nil
}
