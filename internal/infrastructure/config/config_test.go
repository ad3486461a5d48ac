package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "erp-backoffice", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "Company", cfg.Report.CompanyName)
	assert.Equal(t, "http://localhost:3000", cfg.Report.FrontendBaseURL)
	assert.Equal(t, "en-US", cfg.Report.Locale)
	assert.Equal(t, "filesystem", cfg.Storage.Provider)
	assert.Equal(t, "log", cfg.Delivery.Provider)
	assert.Equal(t, time.Minute, cfg.Scheduler.TickInterval)
	assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ERP_REPORT_COMPANY_NAME", "Acme Ltd")
	t.Setenv("ERP_REPORT_FRONTEND_BASE_URL", "https://app.example.com")
	t.Setenv("ERP_DATABASE_PORT", "6543")
	t.Setenv("ERP_STORAGE_PROVIDER", "s3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Acme Ltd", cfg.Report.CompanyName)
	assert.Equal(t, "https://app.example.com", cfg.Report.FrontendBaseURL)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "s3", cfg.Storage.Provider)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"idle exceeds open", func(c *Config) { c.Database.MaxIdleConns = 100 }, "max_idle_conns"},
		{"bad sampling ratio", func(c *Config) { c.Telemetry.SamplingRatio = 2 }, "sampling_ratio"},
		{"bad frontend url", func(c *Config) { c.Report.FrontendBaseURL = "not a url" }, "frontend_base_url"},
		{"bad timezone", func(c *Config) { c.Report.Timezone = "Mars/Olympus" }, "timezone"},
		{"unknown storage", func(c *Config) { c.Storage.Provider = "ftp" }, "storage.provider"},
		{"pubsub without project", func(c *Config) { c.Delivery.Provider = "pubsub" }, "project_id"},
		{"production short secret", func(c *Config) {
			c.App.Env = "production"
			c.JWT.Secret = "short"
		}, "jwt.secret"},
		{"production wildcard cors", func(c *Config) {
			c.App.Env = "production"
			c.JWT.Secret = "0123456789abcdef0123456789abcdef"
			c.Database.Password = "pw"
			c.Database.SSLMode = "require"
			c.HTTP.CORSAllowOrigins = []string{"*"}
		}, "cors_allow_origins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDSN_EscapesPassword(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "erp", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/erp?sslmode=disable", d.DSN())
}
