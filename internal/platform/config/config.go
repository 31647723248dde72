package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	StrictAccounts  bool
	DefaultCurrency string
	RateLimit       string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STRICT_ACCOUNTS", false)
	viper.SetDefault("DEFAULT_CURRENCY", "INR")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		StrictAccounts:  viper.GetBool("STRICT_ACCOUNTS"),
		DefaultCurrency: viper.GetString("DEFAULT_CURRENCY"),
		RateLimit:       viper.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		// Not fatal: the application falls back to the in-memory store.
		log.Println("Warning: PGSQL_URL environment variable not set. Using in-memory storage.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	return cfg, nil
}
