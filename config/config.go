package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported values for DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	DBDriver string
	DBUrl    string

	// PublicBaseURL, when set, is used to build the absolute links encoded in QR codes.
	PublicBaseURL  string
	ContextTimeout time.Duration
	AllowedOrigins []string

	Email EmailConfig
}

// EmailConfig configures the new-wish notifier.
type EmailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	NotifyAddress      string
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env usually does not exist and system env vars are used.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:   env,
		Port:          os.Getenv("PORT"),
		DBDriver:      strings.ToLower(os.Getenv("DB_DRIVER")),
		DBUrl:         os.Getenv("DATABASE_URL"),
		PublicBaseURL: strings.TrimSuffix(os.Getenv("PUBLIC_BASE_URL"), "/"),
		Email: EmailConfig{
			Provider:           os.Getenv("EMAIL_PROVIDER"),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           os.Getenv("EMAIL_FROM_NAME"),
			NotifyAddress:      os.Getenv("NOTIFY_EMAIL"),
			Region:             os.Getenv("AWS_REGION"),
			AccessKeyID:        os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
			InsecureSkipVerify: os.Getenv("SES_INSECURE_SKIP_VERIFY") == "true",
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = DriverSQLite
	}
	if cfg.DBUrl == "" && cfg.DBDriver == DriverSQLite {
		cfg.DBUrl = "file:wishes.db?mode=rwc"
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "noop"
	}

	cfg.ContextTimeout = 5 * time.Second
	if s := os.Getenv("CONTEXT_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, err
		}
		cfg.ContextTimeout = d
	}

	if s := os.Getenv("CORS_ALLOWED_ORIGINS"); s != "" {
		cfg.AllowedOrigins = strings.Split(s, ",")
	}

	return cfg, nil
}
