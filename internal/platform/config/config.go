package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Balance reconciliation strategies applied when a payment is deleted.
const (
	DeleteStrategyRecompute = "recompute"
	DeleteStrategyReverse   = "reverse"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Pool tuning
	DBMaxConns        int32
	DBMinConns        int32
	DBMaxConnLifetime time.Duration

	RequestTimeout     time.Duration
	MigrationsPath     string
	AutoMigrate        bool
	CORSAllowedOrigins []string

	// Rate limiting, formatted the ulule way ("100-M")
	RateLimit string
	RedisURL  string

	// Ledger behaviour
	CashCreditsBalance bool
	DeleteStrategy     string

	DefaultPageSize int
	Location        *time.Location
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
	viper.SetDefault("DB_MIN_CONNS", 1)
	viper.SetDefault("DB_MAX_CONN_LIFETIME", "1h")
	viper.SetDefault("REQUEST_TIMEOUT", "15s")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("AUTO_MIGRATE", false)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("LEDGER_CASH_CREDITS_BALANCE", false)
	viper.SetDefault("LEDGER_DELETE_STRATEGY", DeleteStrategyRecompute)
	viper.SetDefault("DEFAULT_PAGE_SIZE", 20)
	viper.SetDefault("LOCATION", "Africa/Algiers")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.DBMaxConns = viper.GetInt32("DB_MAX_CONNS")
	cfg.DBMinConns = viper.GetInt32("DB_MIN_CONNS")
	if cfg.DBMinConns > cfg.DBMaxConns {
		log.Printf("Warning: DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d). Using %d.\n", cfg.DBMinConns, cfg.DBMaxConns, cfg.DBMaxConns)
		cfg.DBMinConns = cfg.DBMaxConns
	}
	cfg.DBMaxConnLifetime = durationOrDefault("DB_MAX_CONN_LIFETIME", time.Hour)
	cfg.RequestTimeout = durationOrDefault("REQUEST_TIMEOUT", 15*time.Second)

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.AutoMigrate = viper.GetBool("AUTO_MIGRATE")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.RedisURL = viper.GetString("REDIS_URL")

	cfg.CashCreditsBalance = viper.GetBool("LEDGER_CASH_CREDITS_BALANCE")
	cfg.DeleteStrategy = strings.ToLower(strings.TrimSpace(viper.GetString("LEDGER_DELETE_STRATEGY")))
	switch cfg.DeleteStrategy {
	case DeleteStrategyRecompute, DeleteStrategyReverse:
	default:
		log.Printf("Warning: Invalid value for LEDGER_DELETE_STRATEGY ('%s'). Defaulting to %s.\n", cfg.DeleteStrategy, DeleteStrategyRecompute)
		cfg.DeleteStrategy = DeleteStrategyRecompute
	}

	cfg.DefaultPageSize = viper.GetInt("DEFAULT_PAGE_SIZE")
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 20
	}

	locName := viper.GetString("LOCATION")
	loc, err := time.LoadLocation(locName)
	if err != nil {
		log.Printf("Warning: Unknown LOCATION ('%s'). Defaulting to UTC.\n", locName)
		loc = time.UTC
	}
	cfg.Location = loc

	return cfg, nil
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
