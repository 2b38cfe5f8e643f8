package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Draft session store
	RedisURL        string
	DraftSessionTTL time.Duration

	// Notification transport
	KafkaBrokers            []string
	KafkaNotificationsTopic string

	// Role seeds: actor IDs granted elevated roles at startup.
	AdminIDs   []string
	ManagerIDs []string

	// Rate limiting, in ulule/limiter notation (e.g. "100-M").
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "changify-backend")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("DRAFT_SESSION_TTL", "30m")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_NOTIFICATIONS_TOPIC", "order-notifications")
	viper.SetDefault("ADMIN_IDS", "")
	viper.SetDefault("MANAGER_IDS", "")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 1
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "changify-backend"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.RedisURL = viper.GetString("REDIS_URL")
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set. Draft sessions will be kept in process memory.")
	}

	draftTTLStr := viper.GetString("DRAFT_SESSION_TTL")
	draftTTL, err := time.ParseDuration(draftTTLStr)
	if err != nil || draftTTL <= 0 {
		draftTTL = 30 * time.Minute
		log.Printf("Warning: Invalid value for DRAFT_SESSION_TTL ('%s'). Defaulting to %s.\n", draftTTLStr, draftTTL.String())
	}
	cfg.DraftSessionTTL = draftTTL

	cfg.KafkaBrokers = splitList(viper.GetString("KAFKA_BROKERS"))
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("Warning: KAFKA_BROKERS not set. Order notifications will be logged only.")
	}
	cfg.KafkaNotificationsTopic = viper.GetString("KAFKA_NOTIFICATIONS_TOPIC")

	cfg.AdminIDs = splitList(viper.GetString("ADMIN_IDS"))
	if len(cfg.AdminIDs) == 0 {
		log.Println("Warning: ADMIN_IDS not set. No admin actors will be available.")
	}
	cfg.ManagerIDs = splitList(viper.GetString("MANAGER_IDS"))

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}

// splitList parses a comma-separated env value into a slice, dropping empty
// entries.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
