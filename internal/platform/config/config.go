// Package config carga la configuración del servicio.
//
// Orden de carga:
//  1. valores por defecto
//  2. archivo YAML (opcional)
//  3. variables de entorno
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
	// DriverMemory no abre base: repos in-memory (dev / demos).
	DriverMemory   = "memory"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Logging   LoggingConfig   `yaml:"logging"`
	Animals   AnimalsConfig   `yaml:"animals"`
	Dates     DatesConfig     `yaml:"dates"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type ServerConfig struct {
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// Tiempo máximo para drenar requests al apagar.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	CORSAllowedOrigin    string `yaml:"cors_allowed_origin"`
	ExposeInternalErrors bool   `yaml:"expose_internal_errors"`
	MetricsEnabled       bool   `yaml:"metrics_enabled"`
	SwaggerEnabled       bool   `yaml:"swagger_enabled"`
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`

	// Path solo aplica a sqlite.
	Path string `yaml:"path"`
	// BootstrapSchema crea las tablas si no existen (modo embebido / dev).
	BootstrapSchema bool `yaml:"bootstrap_schema"`

	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	PingTimeout     time.Duration `yaml:"ping_timeout"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	App      string `yaml:"app"`
	Buffered bool   `yaml:"buffered"`
}

type AnimalsConfig struct {
	// ListActiveOnly filtra /animals/list a is_active = true.
	ListActiveOnly bool `yaml:"list_active_only"`
}

type DatesConfig struct {
	// Strict: una fecha no parseable es 400 en vez de "sin fecha".
	Strict bool `yaml:"strict"`
}

type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              3000,
			ReadTimeout:       5 * time.Second,
			WriteTimeout:      10 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			CORSAllowedOrigin: "*",
			MetricsEnabled:    true,
			SwaggerEnabled:    true,
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Name:            "zoo_db",
			SSLMode:         "disable",
			Path:            "./data/zoo.db",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			ConnMaxIdleTime: 5 * time.Minute,
			PingTimeout:     3 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			App:    "zoo-inventory",
		},
		Animals: AnimalsConfig{
			ListActiveOnly: true,
		},
		RateLimit: RateLimitConfig{
			Enabled:           false,
			RequestsPerSecond: 20,
			Burst:             40,
		},
	}
}

// Load lee el YAML en path (si path != "") y aplica overrides de entorno.
func Load(path string) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	// Database (mismos nombres de env que el backend Rust)
	cfg.Database.Driver = getEnvString("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.Host = getEnvString("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnvInt("DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnvString("DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnvString("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = getEnvString("DB_NAME", cfg.Database.Name)
	cfg.Database.SSLMode = getEnvString("DB_SSLMODE", cfg.Database.SSLMode)
	cfg.Database.Path = getEnvString("DB_PATH", cfg.Database.Path)
	cfg.Database.BootstrapSchema = getEnvBool("DB_BOOTSTRAP_SCHEMA", cfg.Database.BootstrapSchema)

	// Server
	cfg.Server.Port = getEnvInt("PORT", cfg.Server.Port)
	cfg.Server.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", cfg.Server.CORSAllowedOrigin)
	cfg.Server.ExposeInternalErrors = getEnvBool("EXPOSE_INTERNAL_ERRORS", cfg.Server.ExposeInternalErrors)

	// Logging
	cfg.Logging.Level = getEnvString("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnvString("LOG_FORMAT", cfg.Logging.Format)
	cfg.Logging.App = getEnvString("APP_NAME", cfg.Logging.App)

	// Dominio
	cfg.Animals.ListActiveOnly = getEnvBool("ANIMALS_LIST_ACTIVE_ONLY", cfg.Animals.ListActiveOnly)
	cfg.Dates.Strict = getEnvBool("DATES_STRICT", cfg.Dates.Strict)

	cfg.RateLimit.Enabled = getEnvBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case DriverPostgres:
		if strings.TrimSpace(c.Database.Password) == "" {
			errs = append(errs, errors.New("DB_PASSWORD must be set"))
		}
		if strings.TrimSpace(c.Database.Host) == "" {
			errs = append(errs, errors.New("database host is required"))
		}
		if c.Database.Port <= 0 || c.Database.Port > 65535 {
			errs = append(errs, fmt.Errorf("invalid database port %d", c.Database.Port))
		}
	case DriverSQLite:
		if strings.TrimSpace(c.Database.Path) == "" {
			errs = append(errs, errors.New("database path is required for sqlite"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unsupported database driver %q", c.Database.Driver))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid server port %d", c.Server.Port))
	}
	if c.Database.MaxOpenConns <= 0 {
		errs = append(errs, errors.New("max_open_conns must be positive"))
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		errs = append(errs, errors.New("rate_limit needs positive requests_per_second and burst"))
	}

	return errors.Join(errs...)
}

// Addr es la dirección de escucha del servidor HTTP.
func (c ServerConfig) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}
