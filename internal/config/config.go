package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the permit geocoder.
//
// Fields:
// - Env: The current environment (local, development, production).
// - Port: The port for the monitoring server.
// - Region: The named bounding box that gates manual lookup entries.
// - FallbackProvider: Optional external provider for addresses the lookup table misses ("", "google", "nominatim").
// - APIKey: The API key for the fallback provider (required for Google).
// - City/State: Scope for structured fallback queries.
// - Workers: The number of concurrent workers for batch processing.
// - Interval: The duration between batch polling intervals.
// - Socrata: Open-data portal configuration for permit ingestion.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env              string
	Port             int
	Region           string
	FallbackProvider string
	APIKey           string
	City             string
	State            string
	Workers          int
	Interval         time.Duration
	Socrata          SocrataConfig
	Database         PostgresConfig
}

// SocrataConfig holds the open-data portal settings for permit ingestion.
type SocrataConfig struct {
	Domain   string // Domain is the portal host ("data.cityofberkeley.info").
	AppToken string // AppToken is the optional API token; requests without one may be rate-limited.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// MustLoad loads the configuration from the environment (with optional
// .env file) and panics on malformed values.
func MustLoad() *Config {
	_ = godotenv.Load()

	interval, err := time.ParseDuration(setDefaultEnv("GEOCODER_INTERVAL", "10m"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	healthPort, err := strconv.Atoi(setDefaultEnv("GEOCODER_HEALTH_PORT", "8080"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	workers, err := strconv.Atoi(setDefaultEnv("GEOCODER_WORKERS", "10"))
	if err != nil {
		panic("failed to parse workers from configuration, must be an integer")
	}

	return &Config{
		Env:              setDefaultEnv("GEOCODER_ENV", "production"),
		Port:             healthPort,
		Region:           setDefaultEnv("GEOCODER_REGION", "Berkeley"),
		FallbackProvider: os.Getenv("GEOCODER_FALLBACK_PROVIDER"),
		APIKey:           os.Getenv("GEOCODER_FALLBACK_KEY"),
		City:             setDefaultEnv("GEOCODER_CITY", "Berkeley"),
		State:            setDefaultEnv("GEOCODER_STATE", "California"),
		Workers:          workers,
		Interval:         interval,
		Socrata: SocrataConfig{
			Domain:   setDefaultEnv("SOCRATA_DOMAIN", "data.cityofberkeley.info"),
			AppToken: os.Getenv("SOCRATA_APP_TOKEN"),
		},
		Database: PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
