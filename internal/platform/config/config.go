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
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	DBMaxConns     int32
	MigrationsPath string
	LogLevel       string

	// Tokens are issued by the identity service; this service only validates them.
	JWTSecret string
	JWTIssuer string

	// RateLimit uses the ulule/limiter format, e.g. "100-M".
	RateLimit          string
	CORSAllowedOrigins []string

	// DuplicateWindow bounds how far apart a cash sale and a customer payment
	// may be to count as the same money. Zero means any distance.
	DuplicateWindow time.Duration
	CurrencyCode    string

	GeminiAPIKey            string
	GeminiModel             string
	GeminiRequestsPerMinute int

	// MetricsEnabled exposes Prometheus metrics on /metrics.
	MetricsEnabled bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("DUPLICATE_WINDOW", "0s")
	viper.SetDefault("CURRENCY_CODE", "BDT")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_REQUESTS_PER_MINUTE", 10)
	viper.SetDefault("PROMETHEUS_ENABLED", false)

	// Environment variables override .env values, which override the defaults.
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  viper.GetBool("ENABLE_DB_CHECK"),
		DBMaxConns:     viper.GetInt32("DB_MAX_CONNS"),
		MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		JWTIssuer:      viper.GetString("JWT_ISSUER"),
		RateLimit:      viper.GetString("RATE_LIMIT"),
		CurrencyCode:   strings.ToUpper(viper.GetString("CURRENCY_CODE")),
		GeminiAPIKey:   viper.GetString("GEMINI_API_KEY"),
		GeminiModel:    viper.GetString("GEMINI_MODEL"),
		MetricsEnabled: viper.GetBool("PROMETHEUS_ENABLED"),

		GeminiRequestsPerMinute: viper.GetInt("GEMINI_REQUESTS_PER_MINUTE"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	windowStr := viper.GetString("DUPLICATE_WINDOW")
	window, err := time.ParseDuration(windowStr)
	if err != nil || window < 0 {
		window = 0
		log.Printf("Warning: Invalid value for DUPLICATE_WINDOW ('%s'). Matching duplicates regardless of date.\n", windowStr)
	}
	cfg.DuplicateWindow = window

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. Report narratives are disabled.")
	}

	return cfg, nil
}
