package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// RateLimit uses the limiter formatted syntax, e.g. "100-M" for 100
	// requests per minute.
	RateLimit string

	// CORSAllowedOrigins is a comma separated list of origins.
	CORSAllowedOrigins []string

	// FMVTolerancePct is the percentage divergence between the two sides of a
	// barter exchange above which a mismatch warning is raised.
	FMVTolerancePct decimal.Decimal

	// Form1099BThreshold is the yearly per-counterparty barter income at or
	// above which the counterparty appears on the 1099-B report.
	Form1099BThreshold decimal.Decimal

	// Kafka event publishing. Disabled unless brokers are configured.
	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "barter-books-app")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("FMV_TOLERANCE_PCT", "5")
	viper.SetDefault("FORM_1099B_THRESHOLD", "600")
	viper.SetDefault("KAFKA_ENABLED", false)
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_TOPIC", "barter-books.transactions")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitAndTrim(viper.GetString("CORS_ALLOWED_ORIGINS"))

	fmvToleranceStr := viper.GetString("FMV_TOLERANCE_PCT")
	fmvTolerance, err := decimal.NewFromString(fmvToleranceStr)
	if err != nil || fmvTolerance.IsNegative() {
		fmvTolerance = decimal.NewFromInt(5)
		log.Printf("Warning: Invalid value for FMV_TOLERANCE_PCT ('%s'). Defaulting to %s.\n", fmvToleranceStr, fmvTolerance.String())
	}
	cfg.FMVTolerancePct = fmvTolerance

	thresholdStr := viper.GetString("FORM_1099B_THRESHOLD")
	threshold, err := decimal.NewFromString(thresholdStr)
	if err != nil || threshold.IsNegative() {
		threshold = decimal.NewFromInt(600)
		log.Printf("Warning: Invalid value for FORM_1099B_THRESHOLD ('%s'). Defaulting to %s.\n", thresholdStr, threshold.String())
	}
	cfg.Form1099BThreshold = threshold

	cfg.KafkaEnabled = viper.GetBool("KAFKA_ENABLED")
	cfg.KafkaBrokers = splitAndTrim(viper.GetString("KAFKA_BROKERS"))
	cfg.KafkaTopic = viper.GetString("KAFKA_TOPIC")
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		log.Println("Warning: KAFKA_ENABLED is set but KAFKA_BROKERS is empty. Event publishing disabled.")
		cfg.KafkaEnabled = false
	}

	return cfg, nil
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
