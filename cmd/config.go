package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"shipdesk/internal/core/application/desk"
	"shipdesk/internal/jobs"
	"shipdesk/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	HTTP     HTTPConfig
	Upstream UpstreamConfig
	Auth     AuthConfig
	Desk     DeskConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	Journal  JournalConfig
	Logger   LoggerConfig
}

type HTTPConfig struct {
	Host string
	Port string
}

// UpstreamConfig points at the courier backend.
type UpstreamConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type AuthConfig struct {
	JWTSecret string
}

// DeskConfig tunes the desks and their janitor.
type DeskConfig struct {
	ListPageSize    int
	RosterPageSize  int
	FallbackPolicy  string
	IdleMinutes     int
	JanitorSchedule string
}

// RedisConfig enables the roster cache when Addr is set.
type RedisConfig struct {
	Addr             string
	Password         string
	DB               int
	RosterTTLSeconds int
}

// PostgresConfig enables the action journal when URL or Host is set.
type PostgresConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JournalConfig struct {
	RetentionDays     int
	RetentionSchedule string
}

type LoggerConfig struct {
	Level string
}

const (
	maxPageSize      = 1000
	maxIdleMinutes   = 24 * 60
	maxRetentionDays = 3650
)

// LoadConfig reads the environment, after an optional .env file, and applies defaults.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := Config{
		HTTP: HTTPConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8081"),
		},
		Upstream: UpstreamConfig{
			BaseURL:        os.Getenv("UPSTREAM_BASE_URL"),
			TimeoutSeconds: getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 10),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		},
		Desk: DeskConfig{
			ListPageSize:    getEnvAsInt("LIST_PAGE_SIZE", desk.DefaultListPageSize),
			RosterPageSize:  getEnvAsInt("ROSTER_PAGE_SIZE", 100),
			FallbackPolicy:  getEnv("FALLBACK_POLICY", string(desk.FallbackOnAnyError)),
			IdleMinutes:     getEnvAsInt("DESK_IDLE_MINUTES", 30),
			JanitorSchedule: getEnv("DESK_JANITOR_SCHEDULE", jobs.DefaultJanitorSchedule),
		},
		Redis: RedisConfig{
			Addr:             os.Getenv("REDIS_ADDR"),
			Password:         os.Getenv("REDIS_PASSWORD"),
			DB:               redisDB,
			RosterTTLSeconds: getEnvAsInt("REDIS_ROSTER_TTL_SECONDS", 300),
		},
		Postgres: PostgresConfig{
			URL:      os.Getenv("DB_URL"),
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Journal: JournalConfig{
			RetentionDays:     getEnvAsInt("JOURNAL_RETENTION_DAYS", 30),
			RetentionSchedule: getEnv("JOURNAL_RETENTION_SCHEDULE", jobs.DefaultRetentionSchedule),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings the service can not start without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Upstream.BaseURL) == "" {
		return errs.NewValueIsRequiredError("UPSTREAM_BASE_URL")
	}
	if c.Auth.JWTSecret == "" {
		return errs.NewValueIsRequiredError("AUTH_JWT_SECRET")
	}
	if _, err := desk.ParseFallbackPolicy(c.Desk.FallbackPolicy); err != nil {
		return err
	}
	if c.Desk.ListPageSize < 1 || c.Desk.ListPageSize > maxPageSize {
		return errs.NewValueIsOutOfRangeError("LIST_PAGE_SIZE", c.Desk.ListPageSize, 1, maxPageSize)
	}
	if c.Desk.RosterPageSize < 1 || c.Desk.RosterPageSize > maxPageSize {
		return errs.NewValueIsOutOfRangeError("ROSTER_PAGE_SIZE", c.Desk.RosterPageSize, 1, maxPageSize)
	}
	if c.Desk.IdleMinutes < 1 || c.Desk.IdleMinutes > maxIdleMinutes {
		return errs.NewValueIsOutOfRangeError("DESK_IDLE_MINUTES", c.Desk.IdleMinutes, 1, maxIdleMinutes)
	}
	// Zero disables pruning.
	if c.Journal.RetentionDays < 0 || c.Journal.RetentionDays > maxRetentionDays {
		return errs.NewValueIsOutOfRangeError("JOURNAL_RETENTION_DAYS", c.Journal.RetentionDays, 0, maxRetentionDays)
	}
	return nil
}

func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%s", h.Host, h.Port)
}

func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSeconds) * time.Second
}

func (d DeskConfig) Idle() time.Duration {
	return time.Duration(d.IdleMinutes) * time.Minute
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

func (r RedisConfig) RosterTTL() time.Duration {
	return time.Duration(r.RosterTTLSeconds) * time.Second
}

// Retention is zero when pruning is disabled.
func (j JournalConfig) Retention() time.Duration {
	if j.RetentionDays <= 0 {
		return 0
	}
	return time.Duration(j.RetentionDays) * 24 * time.Hour
}

func (p PostgresConfig) Enabled() bool {
	return p.URL != "" || p.Host != ""
}

// DSN renders the connection string. A postgres:// URL takes precedence over
// the individual settings.
func (p PostgresConfig) DSN() (string, error) {
	if p.URL != "" {
		dsn, err := pq.ParseURL(p.URL)
		if err != nil {
			return "", errs.NewValueIsInvalidErrorWithCause("DB_URL", err)
		}
		return dsn, nil
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		quoteDSNValue(p.Host), quoteDSNValue(p.Port), quoteDSNValue(p.User),
		quoteDSNValue(p.Password), quoteDSNValue(p.Name), quoteDSNValue(p.SSLMode)), nil
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quoteDSNValue quotes a keyword/value connection string value the way pq does.
func quoteDSNValue(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
