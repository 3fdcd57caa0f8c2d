// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr      string
	DataPath        string // Empty means the dataset embedded in the binary.
	YearsActive     int
	ContactDelay    time.Duration
	CounterDuration time.Duration
	CounterFPS      int
	LogLevel        slog.Level
	SecureCookies   bool
}

// LoadDotEnv loads variables from a .env file at path into the process
// environment. Variables that are already set are left untouched. A missing
// file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from environment variables and returns a validated Config.
// All variables are optional: PORTFOLIO_LISTEN_ADDR (127.0.0.1:8080),
// PORTFOLIO_DATA_PATH (embedded dataset), PORTFOLIO_YEARS_ACTIVE (10),
// PORTFOLIO_CONTACT_DELAY (1s), PORTFOLIO_COUNTER_DURATION (2.5s),
// PORTFOLIO_COUNTER_FPS (60), PORTFOLIO_LOG_LEVEL (info),
// PORTFOLIO_SECURE_COOKIES (false).
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:      "127.0.0.1:8080",
		YearsActive:     10,
		ContactDelay:    time.Second,
		CounterDuration: 2500 * time.Millisecond,
		CounterFPS:      60,
		LogLevel:        slog.LevelInfo,
	}

	if v, ok := os.LookupEnv("PORTFOLIO_LISTEN_ADDR"); ok && v != "" {
		cfg.ListenAddr = v
	}

	if v, ok := os.LookupEnv("PORTFOLIO_DATA_PATH"); ok {
		cfg.DataPath = v
	}

	if v, ok := os.LookupEnv("PORTFOLIO_YEARS_ACTIVE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("PORTFOLIO_YEARS_ACTIVE must be a non-negative integer, got %q", v)
		}
		cfg.YearsActive = n
	}

	if v, ok := os.LookupEnv("PORTFOLIO_CONTACT_DELAY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("PORTFOLIO_CONTACT_DELAY has invalid duration %q: %w", v, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("PORTFOLIO_CONTACT_DELAY must not be negative, got %q", v)
		}
		cfg.ContactDelay = d
	}

	if v, ok := os.LookupEnv("PORTFOLIO_COUNTER_DURATION"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("PORTFOLIO_COUNTER_DURATION has invalid duration %q: %w", v, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("PORTFOLIO_COUNTER_DURATION must be positive, got %q", v)
		}
		cfg.CounterDuration = d
	}

	if v, ok := os.LookupEnv("PORTFOLIO_COUNTER_FPS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 240 {
			return nil, fmt.Errorf("PORTFOLIO_COUNTER_FPS must be an integer between 1 and 240, got %q", v)
		}
		cfg.CounterFPS = n
	}

	if v, ok := os.LookupEnv("PORTFOLIO_LOG_LEVEL"); ok && v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return nil, fmt.Errorf("PORTFOLIO_LOG_LEVEL has invalid level %q: %w", v, err)
		}
		cfg.LogLevel = level
	}

	if v, ok := os.LookupEnv("PORTFOLIO_SECURE_COOKIES"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("PORTFOLIO_SECURE_COOKIES must be a boolean, got %q", v)
		}
		cfg.SecureCookies = b
	}

	return cfg, nil
}
