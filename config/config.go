package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store backend selection values.
const (
	BackendDatabase = "database"
	BackendMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	Port         string `envconfig:"PORT" default:"4000"`
	GoEnv        string `envconfig:"GO_ENV" default:"development"`
	DatabaseURL  string `envconfig:"DATABASE_URL"`
	StoreBackend string `envconfig:"STORE_BACKEND" default:"database"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`

	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSS3Bucket        string `envconfig:"AWS_S3_BUCKET"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY"`

	SheetsAPIKey  string `envconfig:"GOOGLE_SHEETS_API_KEY"`
	SpreadsheetID string `envconfig:"GOOGLE_SPREADSHEET_ID"`
}

// Load loads the configuration from environment variables.
// It automatically determines which .env file to load based on GO_ENV.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try the environment-specific file first, then plain .env. In hosted
	// environments variables are set directly, so missing files are fine.
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all required configuration values are set
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendDatabase:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_BACKEND=database")
		}
	case BackendMemory:
		// volatile demo mode, nothing further required
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendDatabase, BackendMemory, c.StoreBackend)
	}
	return nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}
