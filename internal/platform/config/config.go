package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	SecretKey     string
	SessionExpiry time.Duration

	// Bootstrap admin credentials. The web surface never creates operators.
	AdminUsername string
	AdminPassword string

	UploadDir      string
	MaxUploadBytes int64

	// EnforceRateSpread rejects overlapping buy/sell ranges (max_buy >= min_sell)
	// when enabled. Policy toggled across deployments, so it is configuration.
	EnforceRateSpread bool

	SeedSampleData bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SECRET_KEY", "dev-secret-key-change-in-production")
	viper.SetDefault("SESSION_EXPIRY_DURATION", "12h")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("MAX_UPLOAD_BYTES", int64(10*1024*1024))
	viper.SetDefault("ENFORCE_RATE_SPREAD", false)
	viper.SetDefault("SEED_SAMPLE_DATA", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.SecretKey = viper.GetString("SECRET_KEY")
	if cfg.SecretKey == "dev-secret-key-change-in-production" {
		log.Println("Warning: SECRET_KEY not set. Using default insecure key.")
	}

	sessionExpiryStr := viper.GetString("SESSION_EXPIRY_DURATION")
	sessionExpiry, err := time.ParseDuration(sessionExpiryStr)
	if err != nil {
		sessionExpiry = 12 * time.Hour
		if sessionExpiryStr != "" {
			log.Printf("Warning: Invalid value for SESSION_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", sessionExpiryStr, sessionExpiry.String())
		}
	}
	cfg.SessionExpiry = sessionExpiry

	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	if cfg.AdminPassword == "" {
		log.Println("Warning: ADMIN_PASSWORD not set. Admin bootstrap will be skipped.")
	}

	cfg.UploadDir = viper.GetString("UPLOAD_DIR")
	cfg.MaxUploadBytes = viper.GetInt64("MAX_UPLOAD_BYTES")
	cfg.EnforceRateSpread = viper.GetBool("ENFORCE_RATE_SPREAD")
	cfg.SeedSampleData = viper.GetBool("SEED_SAMPLE_DATA")

	return cfg, nil
}
