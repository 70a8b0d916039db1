package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort              = "8080"
	defaultMigrationsPath    = "file://migrations"
	defaultLogLevel          = "info"
	defaultAPIBasePath       = "/"
	defaultDBMaxConns        = 10
	defaultDBMinConns        = 0
	defaultDBMaxConnLifetime = time.Hour
	defaultDBConnectTimeout  = 5 * time.Second
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	// SeedFile is a SQL file of sample rows loaded after migrations. Ignored in production.
	SeedFile       string
	LogLevel       string
	APIBasePath    string

	DBMaxConns        int32
	DBMinConns        int32
	DBMaxConnLifetime time.Duration
	DBConnectTimeout  time.Duration

	CORSAllowedOrigins []string
	// RateLimit is a ulule/limiter formatted rate ("100-M"); empty disables limiting.
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("API_BASE_PATH", defaultAPIBasePath)
	v.SetDefault("DB_MAX_CONNS", defaultDBMaxConns)
	v.SetDefault("DB_MIN_CONNS", defaultDBMinConns)
	v.SetDefault("DB_MAX_CONN_LIFETIME", defaultDBMaxConnLifetime.String())
	v.SetDefault("DB_CONNECT_TIMEOUT", defaultDBConnectTimeout.String())
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT", "")

	// Environment variables override both defaults and .env values.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   v.GetString("PGSQL_URL"),
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),
		LogLevel:      strings.ToLower(v.GetString("LOG_LEVEL")),
		RateLimit:     strings.TrimSpace(v.GetString("RATE_LIMIT")),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}

	cfg.SeedFile = strings.TrimSpace(v.GetString("SEED_FILE"))
	if cfg.SeedFile != "" && cfg.IsProduction {
		log.Printf("Warning: SEED_FILE ('%s') is ignored in production.\n", cfg.SeedFile)
		cfg.SeedFile = ""
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", cfg.LogLevel, defaultLogLevel)
		cfg.LogLevel = defaultLogLevel
	}

	cfg.APIBasePath = normalizeBasePath(v.GetString("API_BASE_PATH"))

	cfg.DBMaxConns = positiveInt32(v, "DB_MAX_CONNS", defaultDBMaxConns)
	cfg.DBMinConns = int32(v.GetInt("DB_MIN_CONNS"))
	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		log.Printf("Warning: Invalid value for DB_MIN_CONNS (%d). Defaulting to %d.\n", cfg.DBMinConns, defaultDBMinConns)
		cfg.DBMinConns = defaultDBMinConns
	}
	cfg.DBMaxConnLifetime = duration(v, "DB_MAX_CONN_LIFETIME", defaultDBMaxConnLifetime)
	cfg.DBConnectTimeout = duration(v, "DB_CONNECT_TIMEOUT", defaultDBConnectTimeout)

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func duration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func positiveInt32(v *viper.Viper, key string, fallback int32) int32 {
	n := v.GetInt(key)
	if n <= 0 {
		log.Printf("Warning: Invalid value for %s (%d). Defaulting to %d.\n", key, n, fallback)
		return fallback
	}
	return int32(n)
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

func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return defaultAPIBasePath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}
