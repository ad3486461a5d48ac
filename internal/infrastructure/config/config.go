package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Telemetry TelemetryConfig
	Report    ReportConfig
	Export    ExportConfig
	Storage   StorageConfig
	Scheduler SchedulerConfig
	Delivery  DeliveryConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // minutes
	ConnMaxIdleTime int // minutes
	LogLevel        string
}

// RedisConfig holds Redis connection settings. An empty Host disables Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig holds the settings used to validate bearer tokens
type JWTConfig struct {
	Secret   string
	Issuer   string
	Disabled bool
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
	Output string
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	MaxBodySize      int64
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string
}

// TelemetryConfig holds OpenTelemetry configuration
type TelemetryConfig struct {
	Enabled           bool
	CollectorEndpoint string
	SamplingRatio     float64
	ServiceName       string
	Insecure          bool
	MetricsEnabled    bool
	MetricsInterval   time.Duration
	DBTraceEnabled    bool
}

// ReportConfig is handed to the report assembler and every export renderer.
// CompanyName is printed in export header blocks; FrontendBaseURL is where
// chart regions are captured from.
type ReportConfig struct {
	CompanyName     string
	FrontendBaseURL string
	DashboardPath   string
	Locale          string
	CurrencySymbol  string
	Timezone        string
}

// ExportConfig holds headless-browser rendering settings
type ExportConfig struct {
	ChromeRemoteURL string // ws:// endpoint of a running browser, empty to launch one
	ChromePath      string
	NoSandbox       bool
	RenderTimeout   time.Duration
	RegionTimeout   time.Duration
	ImageWidth      int
	PoolSize        int
}

// StorageConfig selects and configures the artifact store
type StorageConfig struct {
	Provider   string // filesystem, s3, gcs
	BasePath   string
	Bucket     string
	PresignTTL time.Duration

	S3Endpoint        string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3UsePathStyle    bool

	GCSCredentialsJSON string
	GCSProjectID       string
}

// SchedulerConfig holds report schedule runner settings
type SchedulerConfig struct {
	Enabled           bool
	TickInterval      time.Duration
	MaxConcurrentJobs int
	JobTimeout        time.Duration
	LockTTL           time.Duration
}

// DeliveryConfig selects how scheduled report artifacts are handed off
type DeliveryConfig struct {
	Provider        string // log, pubsub
	ProjectID       string
	Topic           string
	CredentialsJSON string
}

// Load reads configuration with the following priority (highest first):
//  1. environment variables prefixed with ERP_ (ERP_DATABASE_PASSWORD)
//  2. a .env file in the working directory
//  3. config.toml
//  4. built-in defaults
func Load() (*Config, error) {
	// .env is optional; existing environment variables win
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("ERP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := fromViper(v)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
			LogLevel:        v.GetString("database.log_level"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			Secret:   v.GetString("jwt.secret"),
			Issuer:   v.GetString("jwt.issuer"),
			Disabled: v.GetBool("jwt.disabled"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			MaxBodySize:      v.GetInt64("http.max_body_size"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:       v.GetString("telemetry.service_name"),
			Insecure:          v.GetBool("telemetry.insecure"),
			MetricsEnabled:    v.GetBool("telemetry.metrics_enabled"),
			MetricsInterval:   v.GetDuration("telemetry.metrics_interval"),
			DBTraceEnabled:    v.GetBool("telemetry.db_trace_enabled"),
		},
		Report: ReportConfig{
			CompanyName:     v.GetString("report.company_name"),
			FrontendBaseURL: v.GetString("report.frontend_base_url"),
			DashboardPath:   v.GetString("report.dashboard_path"),
			Locale:          v.GetString("report.locale"),
			CurrencySymbol:  v.GetString("report.currency_symbol"),
			Timezone:        v.GetString("report.timezone"),
		},
		Export: ExportConfig{
			ChromeRemoteURL: v.GetString("export.chrome_remote_url"),
			ChromePath:      v.GetString("export.chrome_path"),
			NoSandbox:       v.GetBool("export.no_sandbox"),
			RenderTimeout:   v.GetDuration("export.render_timeout"),
			RegionTimeout:   v.GetDuration("export.region_timeout"),
			ImageWidth:      v.GetInt("export.image_width"),
			PoolSize:        v.GetInt("export.pool_size"),
		},
		Storage: StorageConfig{
			Provider:           v.GetString("storage.provider"),
			BasePath:           v.GetString("storage.base_path"),
			Bucket:             v.GetString("storage.bucket"),
			PresignTTL:         v.GetDuration("storage.presign_ttl"),
			S3Endpoint:         v.GetString("storage.s3_endpoint"),
			S3Region:           v.GetString("storage.s3_region"),
			S3AccessKeyID:      v.GetString("storage.s3_access_key_id"),
			S3SecretAccessKey:  v.GetString("storage.s3_secret_access_key"),
			S3UsePathStyle:     v.GetBool("storage.s3_use_path_style"),
			GCSCredentialsJSON: v.GetString("storage.gcs_credentials_json"),
			GCSProjectID:       v.GetString("storage.gcs_project_id"),
		},
		Scheduler: SchedulerConfig{
			Enabled:           v.GetBool("scheduler.enabled"),
			TickInterval:      v.GetDuration("scheduler.tick_interval"),
			MaxConcurrentJobs: v.GetInt("scheduler.max_concurrent_jobs"),
			JobTimeout:        v.GetDuration("scheduler.job_timeout"),
			LockTTL:           v.GetDuration("scheduler.lock_ttl"),
		},
		Delivery: DeliveryConfig{
			Provider:        v.GetString("delivery.provider"),
			ProjectID:       v.GetString("delivery.project_id"),
			Topic:           v.GetString("delivery.topic"),
			CredentialsJSON: v.GetString("delivery.credentials_json"),
		},
	}
}

// applyDefaults fills empty fields with built-in defaults
func applyDefaults(cfg *Config) {
	setString(&cfg.App.Name, "erp-backoffice")
	setString(&cfg.App.Env, "development")
	setString(&cfg.App.Port, "8080")

	setString(&cfg.Database.Host, "localhost")
	setInt(&cfg.Database.Port, 5432)
	setString(&cfg.Database.User, "postgres")
	setString(&cfg.Database.DBName, "erp")
	setString(&cfg.Database.SSLMode, "disable")
	setInt(&cfg.Database.MaxOpenConns, 25)
	setInt(&cfg.Database.MaxIdleConns, 5)
	setInt(&cfg.Database.ConnMaxLifetime, 60)
	setInt(&cfg.Database.ConnMaxIdleTime, 30)
	setString(&cfg.Database.LogLevel, "warn")

	setInt(&cfg.Redis.Port, 6379)

	setString(&cfg.JWT.Issuer, "erp-backoffice")

	setString(&cfg.Log.Level, "info")
	setString(&cfg.Log.Format, "console")
	setString(&cfg.Log.Output, "stdout")

	setDuration(&cfg.HTTP.ReadTimeout, 15*time.Second)
	// exports render through a browser and can be slow
	setDuration(&cfg.HTTP.WriteTimeout, 90*time.Second)
	setDuration(&cfg.HTTP.IdleTimeout, 60*time.Second)
	setInt(&cfg.HTTP.MaxHeaderBytes, 1<<20)
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 10 << 20
	}
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	}

	setString(&cfg.Telemetry.CollectorEndpoint, "localhost:4317")
	if cfg.Telemetry.SamplingRatio == 0 {
		cfg.Telemetry.SamplingRatio = 1.0
	}
	setString(&cfg.Telemetry.ServiceName, "erp-backoffice")
	setDuration(&cfg.Telemetry.MetricsInterval, 60*time.Second)

	setString(&cfg.Report.CompanyName, "Company")
	setString(&cfg.Report.FrontendBaseURL, "http://localhost:3000")
	setString(&cfg.Report.DashboardPath, "/dashboard")
	setString(&cfg.Report.Locale, "en-US")
	setString(&cfg.Report.CurrencySymbol, "$")
	setString(&cfg.Report.Timezone, "UTC")

	setDuration(&cfg.Export.RenderTimeout, 60*time.Second)
	setDuration(&cfg.Export.RegionTimeout, 5*time.Second)
	setInt(&cfg.Export.ImageWidth, 1600)
	setInt(&cfg.Export.PoolSize, 2)

	setString(&cfg.Storage.Provider, "filesystem")
	setString(&cfg.Storage.BasePath, "./data/exports")
	setString(&cfg.Storage.Bucket, "erp-exports")
	setDuration(&cfg.Storage.PresignTTL, 15*time.Minute)
	setString(&cfg.Storage.S3Region, "us-east-1")

	setDuration(&cfg.Scheduler.TickInterval, time.Minute)
	setInt(&cfg.Scheduler.MaxConcurrentJobs, 3)
	setDuration(&cfg.Scheduler.JobTimeout, 5*time.Minute)
	setDuration(&cfg.Scheduler.LockTTL, 10*time.Minute)

	setString(&cfg.Delivery.Provider, "log")
	setString(&cfg.Delivery.Topic, "report-deliveries")
}

func setString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func setInt(dst *int, def int) {
	if *dst == 0 {
		*dst = def
	}
}

func setDuration(dst *time.Duration, def time.Duration) {
	if *dst == 0 {
		*dst = def
	}
}

// validate checks cross-field constraints and production requirements
func (c *Config) validate() error {
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}
	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}

	if _, err := url.ParseRequestURI(c.Report.FrontendBaseURL); err != nil {
		return fmt.Errorf("report.frontend_base_url is not a valid URL: %w", err)
	}
	if _, err := time.LoadLocation(c.Report.Timezone); err != nil {
		return fmt.Errorf("report.timezone: %w", err)
	}

	switch c.Storage.Provider {
	case "filesystem", "s3", "gcs":
	default:
		return fmt.Errorf("storage.provider must be one of filesystem, s3, gcs, got %q", c.Storage.Provider)
	}
	switch c.Delivery.Provider {
	case "log":
	case "pubsub":
		if c.Delivery.ProjectID == "" {
			return fmt.Errorf("delivery.project_id is required for the pubsub provider")
		}
	default:
		return fmt.Errorf("delivery.provider must be log or pubsub, got %q", c.Delivery.Provider)
	}

	if c.App.Env == "production" {
		if c.JWT.Disabled {
			return fmt.Errorf("jwt.disabled cannot be set in production")
		}
		if len(c.JWT.Secret) < 32 {
			return fmt.Errorf("jwt.secret must be at least 32 characters in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("database.password is required in production")
		}
		if c.Database.SSLMode == "disable" {
			return fmt.Errorf("database.sslmode cannot be 'disable' in production")
		}
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production")
			}
		}
	}
	return nil
}

// IsProduction reports whether the app runs in production
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// DSN returns the database connection string with escaped credentials
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
