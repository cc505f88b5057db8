package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"homework_status_bot/internal/infra/practicum"

	"github.com/joho/godotenv"
)

const (
	defaultPollSchedule   = "@every 10m"
	defaultRequestTimeout = 30 * time.Second
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken    string
	TelegramToken     string
	TelegramChatIDRaw string
	TelegramChatID    int64
	PracticumEndpoint string
	TelegramAPIURL    string // empty means the public Bot API
	PollSchedule      string // cron spec or descriptor, e.g. "@every 10m"
	RequestTimeout    time.Duration
	DatabaseURL       string // optional; enables the Postgres tracker
	LogLevel          string
	Environment       string
}

// Load reads configuration from environment variables and .env file (if present).
// Missing credentials are reported by Validate, so the logger can be set up first.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		PracticumToken:    os.Getenv("PRACTICUM_TOKEN"),
		TelegramToken:     os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatIDRaw: strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
	}

	cfg.PracticumEndpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.PracticumEndpoint == "" {
		cfg.PracticumEndpoint = practicum.DefaultEndpoint
	}

	cfg.TelegramAPIURL = os.Getenv("TELEGRAM_API_URL")

	cfg.PollSchedule = os.Getenv("POLL_SCHEDULE")
	if cfg.PollSchedule == "" {
		cfg.PollSchedule = defaultPollSchedule // 600 seconds between cycles
	}

	cfg.RequestTimeout = defaultRequestTimeout
	if raw := os.Getenv("REQUEST_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: must be positive, got %s", d)
		}
		cfg.RequestTimeout = d
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

// Validate checks that every credential is present and parses the chat id.
func (c *AppConfig) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"PRACTICUM_TOKEN", c.PracticumToken},
		{"TELEGRAM_TOKEN", c.TelegramToken},
		{"TELEGRAM_CHAT_ID", c.TelegramChatIDRaw},
	}
	for _, v := range required {
		if v.value == "" {
			return fmt.Errorf("%s is not set", v.name)
		}
	}

	id, err := strconv.ParseInt(c.TelegramChatIDRaw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}
	c.TelegramChatID = id
	return nil
}
