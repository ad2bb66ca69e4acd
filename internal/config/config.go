package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

const (
	DefaultCronSchedule     = "* * * * *"
	DefaultRealTimeInterval = 10 * time.Second
	DefaultSheetRange       = "Sheet1!A:C"
	DefaultAboutCacheTTL    = 5 * time.Minute
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Auth  AuthConfig
	Sync  SyncConfig
	About AboutConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

type DBConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration

	// Seeded on first start when no account with this email exists
	AdminEmail    string
	AdminPassword string
}

type SyncConfig struct {
	CronEnabled      bool
	CronSchedule     string
	RealTimeEnabled  bool
	RealTimeInterval time.Duration

	SpreadsheetID   string
	SheetRange      string
	CredentialsFile string
}

// AnyEnabled reports whether at least one driver needs the spreadsheet.
func (s SyncConfig) AnyEnabled() bool {
	return s.CronEnabled || s.RealTimeEnabled
}

type AboutConfig struct {
	CacheTTL time.Duration
}

// ConfigError means a setting is structurally invalid and the feature behind it cannot run.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Key, e.Reason)
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cronEnabled, err := getBool("CRON_SYNC_ENABLED", false)
	if err != nil {
		return nil, err
	}
	realTimeEnabled, err := getBool("REALTIME_SYNC_ENABLED", false)
	if err != nil {
		return nil, err
	}
	intervalSec, err := getInt("REALTIME_SYNC_INTERVAL_SECONDS", int(DefaultRealTimeInterval/time.Second))
	if err != nil {
		return nil, err
	}
	if intervalSec <= 0 {
		return nil, &ConfigError{Key: "REALTIME_SYNC_INTERVAL_SECONDS", Reason: "must be greater than zero"}
	}
	aboutTTL, err := getInt("ABOUT_CACHE_TTL_SECONDS", int(DefaultAboutCacheTTL/time.Second))
	if err != nil {
		return nil, err
	}
	tokenHours, err := getInt("JWT_TTL_HOURS", 24)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Resto Admin v1.0"),
			Env:  getEnv("APP_ENV", "production"),
			Port: getEnv("PORT", "3000"),
		},
		DB: DBConfig{
			URL:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "resto"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
			TokenTTL:  time.Duration(tokenHours) * time.Hour,

			AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
			AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Sync: SyncConfig{
			CronEnabled:      cronEnabled,
			CronSchedule:     getEnv("CRON_SYNC_SCHEDULE", DefaultCronSchedule),
			RealTimeEnabled:  realTimeEnabled,
			RealTimeInterval: time.Duration(intervalSec) * time.Second,
			SpreadsheetID:    getEnv("SPREADSHEET_ID", ""),
			SheetRange:       getEnv("SPREADSHEET_RANGE", DefaultSheetRange),
			CredentialsFile:  getEnv("GOOGLE_CREDENTIALS_FILE", ""),
		},
		About: AboutConfig{
			CacheTTL: time.Duration(aboutTTL) * time.Second,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the cross-field rules that Load cannot express per key.
func (c *Config) Validate() error {
	if c.Sync.AnyEnabled() && c.Sync.SpreadsheetID == "" {
		return &ConfigError{Key: "SPREADSHEET_ID", Reason: "required when a sync driver is enabled"}
	}
	if _, err := cron.ParseStandard(c.Sync.CronSchedule); err != nil {
		return &ConfigError{Key: "CRON_SYNC_SCHEDULE", Reason: err.Error()}
	}
	if c.Auth.TokenTTL <= 0 {
		return &ConfigError{Key: "JWT_TTL_HOURS", Reason: "must be greater than zero"}
	}
	if c.About.CacheTTL < 0 {
		return &ConfigError{Key: "ABOUT_CACHE_TTL_SECONDS", Reason: "must not be negative"}
	}
	return nil
}

// IsDevelopment switches logging to the human readable encoder
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.App.Env, "development")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, &ConfigError{Key: key, Reason: fmt.Sprintf("invalid boolean %q", v)}
	}
	return b, nil
}

func getInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &ConfigError{Key: key, Reason: fmt.Sprintf("invalid integer %q", v)}
	}
	return n, nil
}
