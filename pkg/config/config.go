package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL      string
	Port             string
	IsProduction     bool
	JWTSecret        string
	TrackingIDPrefix string
	RedisURL         string // empty disables the Redis event feed
	EventStream      string
	RateLimit        string // ulule/limiter formatted rate, e.g. "100-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("TRACKING_ID_PREFIX", "DPC")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("EVENT_STREAM", "shipment-events")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		TrackingIDPrefix: viper.GetString("TRACKING_ID_PREFIX"),
		RedisURL:         viper.GetString("REDIS_URL"),
		EventStream:      viper.GetString("EVENT_STREAM"),
		RateLimit:        viper.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Falling back to the in-memory store.")
	}
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL environment variable not set. Shipment events will only be logged.")
	}

	return cfg, nil
}
