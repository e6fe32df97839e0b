package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ServerConfig configures cmd/api.
type ServerConfig struct {
	App      AppConfig
	Database DatabaseConfig
}

type DatabaseConfig struct {
	Driver     string `env:"DB_DRIVER" envDefault:"postgres"`
	Host       string `env:"DB_HOST" envDefault:"localhost"`
	Port       int    `env:"DB_PORT" envDefault:"5432"`
	User       string `env:"DB_USER" envDefault:"postgres"`
	Password   string `env:"DB_PASSWORD"`
	Name       string `env:"DB_NAME" envDefault:"hris_lite"`
	SSLMode    string `env:"DB_SSL_MODE" envDefault:"disable"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"hris.db"`
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int      `env:"APP_PORT" envDefault:"8080"`
	Env         string   `env:"APP_ENV" envDefault:"development"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	FrontendURL []string `env:"FRONTEND_URL" envDefault:"http://localhost:3000" envSeparator:","`
	// SeedDemo fills an empty database with demo employees and a week of attendance on startup.
	SeedDemo    bool     `env:"SEED_DEMO" envDefault:"false"`
}

// ClientConfig configures cmd/console.
type ClientConfig struct {
	APIBaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	Timeout    time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	LogLevel   string        `env:"LOG_LEVEL" envDefault:"warn"`
}

// loadDotEnv reads .env into the process environment. A missing file is not an error.
func loadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// LoadServer reads the server configuration from .env and the environment.
func LoadServer(files ...string) (*ServerConfig, error) {
	if err := loadDotEnv(files...); err != nil {
		return nil, err
	}

	config := &ServerConfig{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadClient reads the console configuration from .env and the environment.
func LoadClient(files ...string) (*ClientConfig, error) {
	if err := loadDotEnv(files...); err != nil {
		return nil, err
	}

	config := &ClientConfig{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *ServerConfig) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case DriverSQLite:
		if strings.TrimSpace(c.Database.SQLitePath) == "" {
			return fmt.Errorf("SQLITE_PATH is required")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q", DriverPostgres, DriverSQLite)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *ServerConfig) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func (c *ClientConfig) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive")
	}
	return nil
}
