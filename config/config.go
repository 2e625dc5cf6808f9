package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultDatabaseName is used when DATABASE_NAME is not set
const DefaultDatabaseName = "canteen"

// Config holds all application configuration
type Config struct {
	DatabaseURL         string
	DatabaseName        string
	Port                string
	GoEnv               string
	AWSRegion           string
	AWSS3Bucket         string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	UploadDir           string
	ImageUploadsEnabled bool
}

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	config := &Config{
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		DatabaseName:        getEnv("DATABASE_NAME", ""),
		Port:                getEnv("PORT", "8000"),
		GoEnv:               getEnv("GO_ENV", "development"),
		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSS3Bucket:         getEnv("AWS_S3_BUCKET", ""),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		UploadDir:           getEnv("UPLOAD_DIR", "./uploads"),
		ImageUploadsEnabled: getEnvBool("IMAGE_UPLOADS_ENABLED", true),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that configuration values are usable.
// A missing DATABASE_URL is not an error: the store simply stays uninitialized.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port)
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

// DatabaseURLSet reports whether a store connection URL was configured
func (c *Config) DatabaseURLSet() bool {
	return c.DatabaseURL != ""
}

// DatabaseNameSet reports whether DATABASE_NAME was configured explicitly
func (c *Config) DatabaseNameSet() bool {
	return c.DatabaseName != ""
}

// GetDatabaseName returns the configured database name or the default one
func (c *Config) GetDatabaseName() string {
	if c.DatabaseName == "" {
		return DefaultDatabaseName
	}
	return c.DatabaseName
}

// UseS3 reports whether menu images go to S3 instead of the local upload directory
func (c *Config) UseS3() bool {
	return c.AWSS3Bucket != ""
}

// ListenAddr returns the address the HTTP server binds to
func (c *Config) ListenAddr() string {
	return "0.0.0.0:" + c.Port
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Ignoring invalid %s=%q, using %t", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
