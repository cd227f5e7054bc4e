package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage drivers
const (
	StorageDriverSupabase = "supabase"
	StorageDriverLocal    = "local"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string        `yaml:"port" env:"SERVER_PORT"`
		Mode         string        `yaml:"mode" env:"SERVER_MODE"`
		CORSOrigins  []string      `yaml:"cors_origins" env:"SERVER_CORS_ORIGINS"`
		ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
	} `yaml:"database"`

	// Auth holds the settings used to verify access tokens issued by the identity provider.
	Auth struct {
		JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
		Audience  string `yaml:"audience" env:"AUTH_AUDIENCE"`
	} `yaml:"auth"`

	Identity struct {
		BaseURL string        `yaml:"base_url" env:"IDENTITY_BASE_URL"`
		APIKey  string        `yaml:"api_key" env:"IDENTITY_API_KEY"`
		Timeout time.Duration `yaml:"timeout" env:"IDENTITY_TIMEOUT"`
	} `yaml:"identity"`

	Storage struct {
		Driver         string `yaml:"driver" env:"STORAGE_DRIVER"`
		Bucket         string `yaml:"bucket" env:"STORAGE_BUCKET"`
		LocalPath      string `yaml:"local_path" env:"STORAGE_LOCAL_PATH"`
		MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"STORAGE_MAX_UPLOAD_BYTES"`
		SupabaseURL    string `yaml:"supabase_url" env:"SUPABASE_URL"`
		SupabaseKey    string `yaml:"supabase_key" env:"SUPABASE_KEY"`
	} `yaml:"storage"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Seed struct {
		Enabled    bool     `yaml:"enabled" env:"SEED_ENABLED"`
		Subjects   []string `yaml:"subjects"`
		Professors []string `yaml:"professors"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a .env file, a yaml file and environment variables,
// in that order of increasing precedence.
func LoadConfig(configPath string) (*Config, error) {
	// .env is optional; a missing file is not an error
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.CORSOrigins = []string{"http://localhost:5173"}
	config.Server.ReadTimeout = 15 * time.Second
	config.Server.WriteTimeout = 60 * time.Second

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "notehub"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"

	config.Auth.Audience = "authenticated"

	config.Identity.Timeout = 10 * time.Second

	config.Storage.Driver = StorageDriverSupabase
	config.Storage.Bucket = "notes"
	config.Storage.LocalPath = "uploads"
	config.Storage.MaxUploadBytes = 20 << 20

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database conn_max_lifetime: %w", err)
	}

	if config.Auth.JWTSecret == "" {
		return fmt.Errorf("auth jwt secret is required")
	}

	switch config.Storage.Driver {
	case StorageDriverSupabase:
		if config.Storage.SupabaseURL == "" || config.Storage.SupabaseKey == "" {
			return fmt.Errorf("supabase url and key are required for the supabase storage driver")
		}
	case StorageDriverLocal:
		if config.Storage.LocalPath == "" {
			return fmt.Errorf("storage local_path is required for the local storage driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	if config.Storage.Bucket == "" {
		return fmt.Errorf("storage bucket is required")
	}

	if config.Storage.MaxUploadBytes <= 0 {
		return fmt.Errorf("storage max_upload_bytes must be positive")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}
