package cmd_test

import (
	"testing"
	"time"

	"shipdesk/cmd"
	"shipdesk/internal/core/application/desk"
	"shipdesk/internal/pkg/errs"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://backend:8080")
	t.Setenv("AUTH_JWT_SECRET", "secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8081", cfg.HTTP.Addr())
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout())
	assert.Equal(t, desk.DefaultListPageSize, cfg.Desk.ListPageSize)
	assert.Equal(t, 30*time.Minute, cfg.Desk.Idle())
	assert.Equal(t, 30*24*time.Hour, cfg.Journal.Retention())
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Postgres.Enabled())
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LIST_PAGE_SIZE", "25")
	t.Setenv("FALLBACK_POLICY", "authorization")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("JOURNAL_RETENTION_DAYS", "0")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 25, cfg.Desk.ListPageSize)
	assert.Equal(t, "authorization", cfg.Desk.FallbackPolicy)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Zero(t, cfg.Journal.Retention())
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "missing upstream",
			env:     map[string]string{"UPSTREAM_BASE_URL": "", "AUTH_JWT_SECRET": "secret"},
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "missing secret",
			env:     map[string]string{"UPSTREAM_BASE_URL": "http://backend", "AUTH_JWT_SECRET": ""},
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name: "unknown fallback policy",
			env: map[string]string{
				"UPSTREAM_BASE_URL": "http://backend", "AUTH_JWT_SECRET": "secret", "FALLBACK_POLICY": "never",
			},
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name: "zero idle minutes",
			env: map[string]string{
				"UPSTREAM_BASE_URL": "http://backend", "AUTH_JWT_SECRET": "secret", "DESK_IDLE_MINUTES": "0",
			},
			wantErr: errs.ErrValueIsOutOfRange,
		},
		{
			name: "negative idle minutes",
			env: map[string]string{
				"UPSTREAM_BASE_URL": "http://backend", "AUTH_JWT_SECRET": "secret", "DESK_IDLE_MINUTES": "-5",
			},
			wantErr: errs.ErrValueIsOutOfRange,
		},
		{
			name: "zero list page size",
			env: map[string]string{
				"UPSTREAM_BASE_URL": "http://backend", "AUTH_JWT_SECRET": "secret", "LIST_PAGE_SIZE": "0",
			},
			wantErr: errs.ErrValueIsOutOfRange,
		},
		{
			name: "oversized roster page",
			env: map[string]string{
				"UPSTREAM_BASE_URL": "http://backend", "AUTH_JWT_SECRET": "secret", "ROSTER_PAGE_SIZE": "5000",
			},
			wantErr: errs.ErrValueIsOutOfRange,
		},
		{
			name: "negative retention",
			env: map[string]string{
				"UPSTREAM_BASE_URL": "http://backend", "AUTH_JWT_SECRET": "secret", "JOURNAL_RETENTION_DAYS": "-1",
			},
			wantErr: errs.ErrValueIsOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := cmd.LoadConfig()

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadConfig_InvalidRedisDB(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_DB", "first")

	_, err := cmd.LoadConfig()

	assert.Error(t, err)
}

func TestPostgresConfig_DSN(t *testing.T) {
	t.Run("from settings", func(t *testing.T) {
		p := cmd.PostgresConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "shipdesk", SSLMode: "disable"}

		dsn, err := p.DSN()

		require.NoError(t, err)
		assert.Equal(t, "host='db' port='5432' user='u' password='p' dbname='shipdesk' sslmode='disable'", dsn)
	})

	t.Run("quotes special characters", func(t *testing.T) {
		p := cmd.PostgresConfig{Host: "db", Port: "5432", User: "u", Password: `p w'\x`, Name: "shipdesk", SSLMode: "disable"}

		dsn, err := p.DSN()

		require.NoError(t, err)
		assert.Contains(t, dsn, `password='p w\'\\x' dbname='shipdesk'`)
	})

	t.Run("from url", func(t *testing.T) {
		p := cmd.PostgresConfig{URL: "postgres://u:p@db:5432/shipdesk?sslmode=disable"}

		dsn, err := p.DSN()

		require.NoError(t, err)
		assert.Equal(t, "dbname='shipdesk' host='db' password='p' port='5432' sslmode='disable' user='u'", dsn)
	})

	t.Run("bad url", func(t *testing.T) {
		p := cmd.PostgresConfig{URL: "mysql://db"}

		_, err := p.DSN()

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestEchoLogLevel(t *testing.T) {
	assert.Equal(t, log.DEBUG, cmd.EchoLogLevel("DEBUG"))
	assert.Equal(t, log.WARN, cmd.EchoLogLevel("warn"))
	assert.Equal(t, log.ERROR, cmd.EchoLogLevel("fatal"))
	assert.Equal(t, log.INFO, cmd.EchoLogLevel("verbose"))
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	logger, err := cmd.NewLogger(cmd.LoggerConfig{Level: "loud"})

	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(0))
	assert.False(t, logger.Core().Enabled(-1))
}
