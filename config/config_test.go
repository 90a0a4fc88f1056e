package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, defaultPostgresURL, cfg.Database.URL)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "https://trefle.io/api/v1", cfg.Trefle.BaseURL)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 12, cfg.Auth.PasswordHashCost)
	assert.Equal(t, 5, cfg.Auth.LoginRateLimit)
	assert.Equal(t, time.Minute, cfg.Auth.LoginRateWindow)
	assert.False(t, cfg.Server.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")
	t.Setenv("TREFLE_API_TOKEN", "abc")
	t.Setenv("LOOKUP_CACHE_TTL", "1h")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("LOGIN_RATE_WINDOW", "30s")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Server.IsProduction())
	assert.Equal(t, 90*time.Second, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "abc", cfg.Trefle.Token)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 30*time.Second, cfg.Auth.LoginRateWindow)
}

func TestSQLiteDriverDefaultsToLocalFile(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "SQLite")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, defaultSQLitePath, cfg.Database.URL)
}

func TestViperOverridesTakePrecedence(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	v := NewViper()
	v.Set("SERVER_PORT", 7070)

	assert.Equal(t, 7070, FromViper(v).Server.Port)
}
