package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RedisURL      string

	// Exchange rate source
	ExchangeAPIURLs     []string // Tried in order, primary first
	ExchangeAPISuffixes []string // Tried in order for every URL
	ExchangeAPITimeout  time.Duration
	DefaultCurrency     string
	SupportedCurrencies []string
	RatesCacheTTL       time.Duration

	// Bulk upload
	UploadConcurrency int
	MaxUploadBytes    int64
	UploadRateLimit   string // ulule/limiter format, e.g. "10-M"

	RejectDuplicateNames bool
	CORSAllowedOrigins   []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("EXCHANGE_API_URLS", "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest/v1/currencies,https://latest.currency-api.pages.dev/v1/currencies")
	viper.SetDefault("EXCHANGE_API_SUFFIXES", ".min.json,.json")
	viper.SetDefault("EXCHANGE_API_TIMEOUT", "5s")
	viper.SetDefault("DEFAULT_CURRENCY", "usd")
	viper.SetDefault("SUPPORTED_CURRENCIES", "eur,gbp,jpy,cad,brl")
	viper.SetDefault("RATES_CACHE_TTL", "100s")
	viper.SetDefault("UPLOAD_CONCURRENCY", 8)
	viper.SetDefault("MAX_UPLOAD_BYTES", 5<<20)
	viper.SetDefault("UPLOAD_RATE_LIMIT", "30-M")
	viper.SetDefault("REJECT_DUPLICATE_NAMES", false)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Using in-memory product store.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RedisURL = viper.GetString("REDIS_URL")

	cfg.ExchangeAPIURLs = splitList(viper.GetString("EXCHANGE_API_URLS"))
	if len(cfg.ExchangeAPIURLs) == 0 {
		log.Println("Warning: EXCHANGE_API_URLS is empty. Products will be stored without exchange rates.")
	}
	cfg.ExchangeAPISuffixes = splitList(viper.GetString("EXCHANGE_API_SUFFIXES"))
	if len(cfg.ExchangeAPISuffixes) == 0 {
		cfg.ExchangeAPISuffixes = []string{".min.json", ".json"}
	}

	cfg.ExchangeAPITimeout = parseDuration("EXCHANGE_API_TIMEOUT", 5*time.Second)
	cfg.RatesCacheTTL = parseDuration("RATES_CACHE_TTL", 100*time.Second)

	cfg.DefaultCurrency = strings.ToLower(strings.TrimSpace(viper.GetString("DEFAULT_CURRENCY")))
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = "usd"
	}
	cfg.SupportedCurrencies = splitList(strings.ToLower(viper.GetString("SUPPORTED_CURRENCIES")))

	cfg.UploadConcurrency = viper.GetInt("UPLOAD_CONCURRENCY")
	if cfg.UploadConcurrency <= 0 {
		log.Printf("Warning: Invalid value for UPLOAD_CONCURRENCY (%d). Defaulting to 8.\n", cfg.UploadConcurrency)
		cfg.UploadConcurrency = 8
	}
	cfg.MaxUploadBytes = viper.GetInt64("MAX_UPLOAD_BYTES")
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 5 << 20
	}
	cfg.UploadRateLimit = viper.GetString("UPLOAD_RATE_LIMIT")

	cfg.RejectDuplicateNames = viper.GetBool("REJECT_DUPLICATE_NAMES")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

// splitList splits a comma separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
