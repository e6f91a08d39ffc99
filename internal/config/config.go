package config

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres; DatabaseURL takes precedence over the separate fields
	DatabaseURL      string `toml:"database_url"`
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresPassword string `toml:"postgres_password"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresSSLMode  string `toml:"postgres_ssl_mode"`
	RunMigrations    bool   `toml:"run_migrations"`

	// redis
	RedisEnabled        bool   `toml:"redis_enabled"`
	RedisHost           string `toml:"redis_host"`
	RedisPort           string `toml:"redis_port"`
	RedisPassword       string `toml:"-"`
	AveragesCacheTTLSec int    `toml:"averages_cache_ttl_sec"`

	// export
	ExportTmpDir          string `toml:"export_tmp_dir"`
	ExportRateLimitPerMin int    `toml:"export_rate_limit_per_min"`

	// telemetry
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	TracingEnabled        bool   `toml:"-"`
	SentryDSN             string `toml:"-"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// envOverrides are read from the process environment and win over the TOML file.
type envOverrides struct {
	DatabaseURL      string `env:"DATABASE_URL"`
	Port             int    `env:"PORT"`
	RedisPassword    string `env:"REDIS_PASSWORD"`
	SentryDSN        string `env:"SENTRY_DSN"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED"`
	ExportTmpDir     string `env:"EXPORT_TMP_DIR"`
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)

	if err := cfg.applyEnv(context.Background(), envconfig.OsLookuper()); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(ctx context.Context, lookuper envconfig.Lookuper) error {
	var overrides envOverrides
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &overrides,
		Lookuper: lookuper,
	}); err != nil {
		return fmt.Errorf("process env overrides: %w", err)
	}

	if overrides.DatabaseURL != "" {
		c.DatabaseURL = overrides.DatabaseURL
	}
	if overrides.Port != 0 {
		c.Port = overrides.Port
	}
	if overrides.ExportTmpDir != "" {
		c.ExportTmpDir = overrides.ExportTmpDir
	}
	c.RedisPassword = overrides.RedisPassword
	c.SentryDSN = overrides.SentryDSN
	c.TracingEnabled = overrides.HoneycombEnabled

	return nil
}

// PostgresConnString returns DATABASE_URL if set, otherwise builds one from the separate fields.
func (c *Config) PostgresConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   c.PostgresHost + ":" + c.PostgresPort,
		Path:   "/" + c.PostgresDBName,
	}
	user := c.PostgresUser
	if user == "" {
		user = "postgres"
	}
	if c.PostgresPassword != "" {
		u.User = url.UserPassword(user, c.PostgresPassword)
	} else {
		u.User = url.User(user)
	}
	if c.PostgresSSLMode != "" {
		u.RawQuery = "sslmode=" + c.PostgresSSLMode
	}
	return u.String()
}

func (c *Config) AveragesCacheTTL() time.Duration {
	if c.AveragesCacheTTLSec <= 0 {
		return time.Hour
	}
	return time.Duration(c.AveragesCacheTTLSec) * time.Second
}
