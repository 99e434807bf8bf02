package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultFormType is the order form type used when a caller supplies none.
const DefaultFormType = "MEMOREX"

// Server captures process level configuration.
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
	DefaultFormType string
	Log             LogConfig
	Database        DatabaseConfig
	Redis           RedisConfig
	Cascade         CascadeConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// DatabaseConfig points at the production-planning schema. An empty URL
// selects the in-memory stores.
type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

// RedisConfig configures the optional cache. An empty URL disables it.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type CascadeConfig struct {
	// CacheTTL bounds how long a rendered cascade may be served from the
	// cache. Zero disables caching.
	CacheTTL time.Duration
}

// Load reads the environment and reports every malformed value it replaced
// with a default.
func Load() (Server, error) {
	var errs []error

	cfg := Server{
		Addr:            envString("DESKFLOW_ADDR", ":8080"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second, &errs),
		DefaultFormType: strings.ToUpper(envString("DEFAULT_FORM_TYPE", DefaultFormType)),
		Log: LogConfig{
			Level:  strings.ToLower(envString("LOG_LEVEL", "info")),
			Format: strings.ToLower(envString("LOG_FORMAT", "json")),
		},
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: envInt("DB_MAX_OPEN_CONNS", 10, &errs),
			MaxIdleConns: envInt("DB_MAX_IDLE_CONNS", 5, &errs),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10, &errs),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2, &errs),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 2*time.Second, &errs),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", time.Second, &errs),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", time.Second, &errs),
		},
		Cascade: CascadeConfig{
			CacheTTL: envDuration("CASCADE_CACHE_TTL", 0, &errs),
		},
	}
	return cfg, errors.Join(errs...)
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int, errs *[]error) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		*errs = append(*errs, fmt.Errorf("%s: invalid integer %q", key, raw))
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		*errs = append(*errs, fmt.Errorf("%s: invalid duration %q", key, raw))
		return fallback
	}
	return d
}
