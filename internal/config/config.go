package config

import (
	"fmt"
	"strings"

	apperrors "espresso-backend/internal/errors"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Artifact sources understood by ARTIFACT_SOURCE
const (
	ArtifactSourceFixture = "fixture"
	ArtifactSourceBucket  = "bucket"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"API_PORT"`
	APIVersion  string `mapstructure:"API_VERSION"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Project / bucket configuration
	ProjectID     string `mapstructure:"FIREBASE_PROJECT_ID"`
	StorageBucket string `mapstructure:"FIREBASE_STORAGE_BUCKET"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Artifact storage configuration
	ArtifactSource   string `mapstructure:"ARTIFACT_SOURCE"`
	StorageEndpoint  string `mapstructure:"STORAGE_ENDPOINT"`
	StorageRegion    string `mapstructure:"STORAGE_REGION"`
	StorageAccessKey string `mapstructure:"STORAGE_ACCESS_KEY"`
	StorageSecretKey string `mapstructure:"STORAGE_SECRET_KEY"`

	// Write protection
	AuthEnabled bool   `mapstructure:"AUTH_ENABLED"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// ALLOWED_ORIGINS arrives as a comma separated string from the environment
	config.AllowedOrigins = splitList(strings.Join(config.AllowedOrigins, ","))

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("API_PORT", "3001")
	v.SetDefault("API_VERSION", "v2")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("FIREBASE_PROJECT_ID", "headbits-tha")
	v.SetDefault("FIREBASE_STORAGE_BUCKET", "headbits-tha.appspot.com")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "espresso")
	v.SetDefault("DB_SSL_MODE", "disable")

	// Artifact storage defaults
	v.SetDefault("ARTIFACT_SOURCE", ArtifactSourceFixture)
	v.SetDefault("STORAGE_ENDPOINT", "")
	v.SetDefault("STORAGE_REGION", "us-east-1")
	v.SetDefault("STORAGE_ACCESS_KEY", "")
	v.SetDefault("STORAGE_SECRET_KEY", "")

	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validate(config *Config) error {
	if config.APIVersion == "" {
		return fmt.Errorf("API_VERSION is required")
	}

	switch config.ArtifactSource {
	case ArtifactSourceFixture:
	case ArtifactSourceBucket:
		if config.StorageBucket == "" {
			return apperrors.ErrStorageBucketMissing
		}
	default:
		return apperrors.ErrUnknownArtifactSource
	}

	if config.IsProduction() && config.AuthEnabled {
		if config.JWTSecret == "" || config.JWTSecret == defaultJWTSecret {
			return apperrors.ErrJWTSecretMissing
		}
	}

	return nil
}

// APIPrefix returns the route prefix, e.g. /api/v2
func (c *Config) APIPrefix() string {
	return "/api/" + c.APIVersion
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
