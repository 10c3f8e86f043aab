package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	DatabaseURL   string
	StorageDriver string
	// MigrationsPath is a golang-migrate source URL, e.g. "file://migrations".
	MigrationsPath string

	// Open Exchange Rates
	RatesAPIBaseURL string
	RatesAPIAppID   string
	RatesAPITimeout time.Duration

	CurrenciesCacheTTL time.Duration
	QuotesCacheTTL     time.Duration

	RateLimit          string // formatted for ulule/limiter, e.g. "120-M"
	CORSAllowedOrigins []string

	// Terminal calculator
	CalcDebounce time.Duration
}

const (
	defaultRatesAPIBaseURL    = "https://openexchangerates.org/api"
	defaultRatesAPITimeout    = 10 * time.Second
	defaultCurrenciesCacheTTL = 2 * time.Hour
	defaultQuotesCacheTTL     = 30 * time.Minute
	defaultCalcDebounce       = 300 * time.Millisecond
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("OXR_BASE_URL", defaultRatesAPIBaseURL)
	v.SetDefault("OXR_APP_ID", "")
	v.SetDefault("OXR_TIMEOUT", defaultRatesAPITimeout.String())
	v.SetDefault("CURRENCIES_CACHE_TTL", defaultCurrenciesCacheTTL.String())
	v.SetDefault("QUOTES_CACHE_TTL", defaultQuotesCacheTTL.String())
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("CALC_DEBOUNCE", defaultCalcDebounce.String())

	v.AutomaticEnv()

	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		StorageDriver:   strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		RatesAPIBaseURL: strings.TrimRight(v.GetString("OXR_BASE_URL"), "/"),
		RatesAPIAppID:   v.GetString("OXR_APP_ID"),
		RateLimit:       v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORAGE_DRIVER is %q", StorageDriverPostgres)
		}
	case StorageDriverMemory:
		log.Println("Warning: STORAGE_DRIVER=memory, cached rates will not survive a restart.")
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.RatesAPIAppID == "" {
		log.Println("Warning: OXR_APP_ID not set. Remote fetches will be rejected by the rates API.")
	}

	cfg.RatesAPITimeout = durationOrDefault(v, "OXR_TIMEOUT", defaultRatesAPITimeout)
	cfg.CurrenciesCacheTTL = durationOrDefault(v, "CURRENCIES_CACHE_TTL", defaultCurrenciesCacheTTL)
	cfg.QuotesCacheTTL = durationOrDefault(v, "QUOTES_CACHE_TTL", defaultQuotesCacheTTL)
	cfg.CalcDebounce = durationOrDefault(v, "CALC_DEBOUNCE", defaultCalcDebounce)

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// durationOrDefault parses key as a time.Duration, falling back to def on an
// empty, malformed or non-positive value.
func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
