package config

import (
	"fmt"
	"time"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-required:"true"`
	Storage  string         `yaml:"storage" env:"STORAGE" env-default:"postgres"`
	Timezone string         `yaml:"timezone" env:"TIMEZONE" env-default:"Local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type PostgresConfig struct {
	Host           string        `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `yaml:"username" env:"POSTGRES_USERNAME" env-default:"postgres"`
	Password       string        `yaml:"password" env:"POSTGRES_PASSWORD"`
	Database       string        `yaml:"database" env:"POSTGRES_DATABASE" env-default:"tasks"`
	SSLMode        string        `yaml:"ssl_mode" env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `yaml:"ping_timeout" env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
	AutoMigrate    bool          `yaml:"auto_migrate" env:"POSTGRES_AUTO_MIGRATE" env-default:"false"`
}

// MetricsConfig keeps metrics on unless Disabled is set.
type MetricsConfig struct {
	Disabled  bool   `yaml:"disabled" env:"METRICS_DISABLED" env-default:"false"`
	Path      string `yaml:"path" env:"METRICS_PATH" env-default:"/metrics"`
	Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE" env-default:"tasktracker"`
}

// Validate rejects values the tags cannot express.
func (c *Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("unknown env: %s", c.Env)
	}

	switch c.Storage {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("unknown storage: %s", c.Storage)
	}

	_, err := c.Location()
	return err
}

// Location is the time zone that decides which calendar day "today" is.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// PostgresURL builds the connection string for pgxpool.
func (c PostgresConfig) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Username, c.Password, c.Host,
		c.Port, c.Database, c.SSLMode)
}
