package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lotusspa/SPA-OrderService/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
user = "orderservice"
dbname = "orderservice"

[customer_service]
url = "http://crm.internal:8081"
timeout = 3

[pricing]
tax_rate_bps = 1000
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.HTTPPort)
	require.Equal(t, 1000, cfg.Pricing.TaxRateBps)
	require.Equal(t, "http://crm.internal:8081", cfg.CustomerService.URL)

	// Untouched sections keep their defaults.
	require.Equal(t, 15, cfg.Server.ShutdownTimeout)
	require.Equal(t, "disable", cfg.Database.SSLMode)
	require.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_DefaultTaxRate(t *testing.T) {
	path := writeConfig(t, `
[database]
user = "orderservice"
dbname = "orderservice"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 800, cfg.Pricing.TaxRateBps)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("missing dbname", func(t *testing.T) {
		path := writeConfig(t, `
[database]
user = "orderservice"
`)
		_, err := config.Load(path)
		require.Error(t, err)
	})

	t.Run("negative tax rate", func(t *testing.T) {
		path := writeConfig(t, `
[database]
user = "orderservice"
dbname = "orderservice"

[pricing]
tax_rate_bps = -1
`)
		_, err := config.Load(path)
		require.Error(t, err)
	})

	t.Run("bad port", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 70000

[database]
user = "orderservice"
dbname = "orderservice"
`)
		_, err := config.Load(path)
		require.Error(t, err)
	})
}

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "svc",
		Password: "secret",
		DBName:   "orders",
		SSLMode:  "require",
	}
	require.Equal(t,
		"host=db.internal port=5433 user=svc password=secret dbname=orders sslmode=require",
		cfg.DSN())
}
