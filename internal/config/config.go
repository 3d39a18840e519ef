package config

import (
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"panelshow-stats/pkg/logger"
)

// Config holds the whole application configuration. It is populated from
// environment variables once at startup and treated as immutable for the
// process lifetime; request handlers only ever read it.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Recent   RecentConfig
	Site     SiteConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// RecentConfig bounds the "recent shows" window around today. A value that is
// missing, not integer-coercible or non-positive is logged as a warning and
// replaced by its default; bad configuration never fails a request.
type RecentConfig struct {
	DaysAhead int
	DaysBack  int
}

const (
	DefaultRecentDaysAhead = 2
	DefaultRecentDaysBack  = 30
)

// SiteConfig carries externally-facing strings injected into rendering and
// the calendar time zone used to determine "today".
type SiteConfig struct {
	BaseURL      string
	TimeZoneName string
	TimeZone     *time.Location
}

func (r RecentConfig) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DaysAhead, validation.Required, validation.Min(1)),
		validation.Field(&r.DaysBack, validation.Required, validation.Min(1)),
	)
}

// Load reads configuration from environment variables. Misconfigured values
// degrade to defaults with a warning; Load itself never fails.
func Load() *Config {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "panelshow-stats"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "9248"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: loadDatabaseConfig(),
		Recent: RecentConfig{
			DaysAhead: getEnvInt("RECENT_DAYS_AHEAD", DefaultRecentDaysAhead),
			DaysBack:  getEnvInt("RECENT_DAYS_BACK", DefaultRecentDaysBack),
		},
		Site: SiteConfig{
			BaseURL:      getEnv("SITE_BASE_URL", "http://localhost:9248"),
			TimeZoneName: getEnv("TIME_ZONE", "UTC"),
		},
	}

	if err := cfg.Recent.Validate(); err != nil {
		logger.Warn("Recent window config invalid, using defaults", map[string]interface{}{
			"error":      err.Error(),
			"days_ahead": DefaultRecentDaysAhead,
			"days_back":  DefaultRecentDaysBack,
		})
		cfg.Recent = RecentConfig{
			DaysAhead: DefaultRecentDaysAhead,
			DaysBack:  DefaultRecentDaysBack,
		}
	}

	cfg.Site.TimeZone = resolveTimeZone(cfg.Site.TimeZoneName)
	cfg.Site.TimeZoneName = cfg.Site.TimeZone.String()

	return cfg
}

// resolveTimeZone loads a named location, falling back to UTC when the name
// is unknown.
func resolveTimeZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("Unknown time zone, falling back to UTC", map[string]interface{}{
			"time_zone": name,
		})
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logger.Warn("Config value is not an integer, using default", map[string]interface{}{
			"key":     key,
			"value":   value,
			"default": defaultValue,
		})
		return defaultValue
	}
	return parsed
}
