package config

import (
	"fmt"
	"net/url"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for monitor-engine.
// Configuration can come from YAML file (config.yaml) or environment
// variables. Environment variables always override YAML values; secrets
// (passwords) must only come from environment variables.
type Config struct {
	Env     string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version string `yaml:"-"` // Set at load time, not from config

	// Primary relational store (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`

	// Externally-owned employee directory (SQL Server)
	Directory DirectoryConfig `yaml:"directory"`

	// Report emission targets
	Export ExportConfig `yaml:"export"`

	// MigrationsPath is the directory holding primary-store migrations.
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`
}

// DatabaseConfig holds primary PostgreSQL configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"monitor"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"gm_monitor"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"10"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
}

// DirectoryConfig holds the external employee-directory connection.
// The directory database is owned by another team; nothing beyond the
// employee id column can be assumed about its schema, and the engine
// must keep working when it is unreachable.
type DirectoryConfig struct {
	Host              string `yaml:"host" env:"DIRECTORY_HOST" env-default:"localhost"`
	Port              int    `yaml:"port" env:"DIRECTORY_PORT" env-default:"1433"`
	User              string `yaml:"user" env:"DIRECTORY_USER" env-default:"sa"`
	Password          string `yaml:"-" env:"DIRECTORY_PASSWORD"` // Secret - not in YAML
	Database          string `yaml:"database" env:"DIRECTORY_DATABASE" env-default:"gm_administration"`
	Schema            string `yaml:"schema" env:"DIRECTORY_SCHEMA" env-default:"dbo"`
	Table             string `yaml:"table" env:"DIRECTORY_TABLE" env-default:"employees"`
	ConnectionTimeout int    `yaml:"connection_timeout" env:"DIRECTORY_CONNECTION_TIMEOUT" env-default:"30"`
	Encrypt           bool   `yaml:"encrypt" env:"DIRECTORY_ENCRYPT" env-default:"false"`
}

// ExportConfig holds report emission targets.
type ExportConfig struct {
	// MetricsDir receives one CSV per metric plus a manifest.
	MetricsDir string `yaml:"metrics_dir" env:"EXPORT_METRICS_DIR" env-default:"deliverables/metrics"`
	// DocumentsDir receives generated KPI documents.
	DocumentsDir string `yaml:"documents_dir" env:"EXPORT_DOCUMENTS_DIR" env-default:"deliverables"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. The version parameter is injected at build time.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// ConnectionString returns a SQL Server connection URL for the directory.
func (c *DirectoryConfig) ConnectionString() string {
	query := url.Values{}
	query.Set("database", c.Database)
	query.Set("connection timeout", fmt.Sprintf("%d", c.ConnectionTimeout))
	if c.Encrypt {
		query.Set("encrypt", "true")
	} else {
		query.Set("encrypt", "disable")
	}

	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		RawQuery: query.Encode(),
	}
	return u.String()
}
