package config_test

import (
	"testing"

	"github.com/jhoicas/Vitrinas-api/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "secreto")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "authenticated", cfg.Auth.Audience)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, int64(0), cfg.Stock.CriticalAtOrBelow)
	assert.True(t, cfg.Stock.CriticalRatio.IsZero())
	assert.False(t, cfg.Stock.HonorUpstreamStatus)
	assert.Equal(t, "./docs/swagger.json", cfg.Docs.SwaggerFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "secreto")
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co/")
	t.Setenv("SUPABASE_TIMEOUT_SECONDS", "3")
	t.Setenv("STOCK_CRITICAL_AT_OR_BELOW", "1")
	t.Setenv("STOCK_CRITICAL_RATIO", "0.25")
	t.Setenv("STOCK_HONOR_UPSTREAM_STATUS", "true")
	t.Setenv("DB_PGBOUNCER", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://abc.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, float64(3), cfg.Supabase.Timeout.Seconds())
	assert.Equal(t, int64(1), cfg.Stock.CriticalAtOrBelow)
	assert.True(t, cfg.Stock.CriticalRatio.Equal(decimal.RequireFromString("0.25")))
	assert.True(t, cfg.Stock.HonorUpstreamStatus)
	assert.True(t, cfg.DB.PgBouncer)
}

func TestLoad_RatioInvalido(t *testing.T) {
	t.Setenv("STOCK_CRITICAL_RATIO", "mucho")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate_SinSecreto(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_JWT_SECRET")
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss/word", DBName: "postgres", SSLMode: "require"}

	assert.Equal(t, "postgres://u:p%40ss%2Fword@db:5432/postgres?sslmode=require", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())

	c.DatabaseURL = "postgres://direct"
	assert.Equal(t, "postgres://direct", c.ConnectionString())
}
