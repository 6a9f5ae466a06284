package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Marianaberrio/TendenciasBackend/internal/auth/token"
)

type Config struct {
	Env   string
	Port  string
	DBURL string

	AccessTokenSecret   string
	RefreshTokenSecret  string
	MFAChallengeSecret  string
	AdminRegisterSecret string

	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	MFAChallengeTTL time.Duration
	ResetTokenTTL   time.Duration

	ScryptCost int
	MFAIssuer  string
	SentryDSN  string
}

// Load reads configuration from the environment, after loading an optional
// .env file. Secrets have no defaults and abort startup when missing; TTLs
// abort on anything unparsable rather than degrading to zero.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:   getEnv("ENV", "development"),
		Port:  getEnv("PORT", "3000"),
		DBURL: mustGetEnv("DB_URL"),

		AccessTokenSecret:   mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret:  mustGetEnv("REFRESH_TOKEN_SECRET"),
		MFAChallengeSecret:  mustGetEnv("MFA_CHALLENGE_SECRET"),
		AdminRegisterSecret: mustGetEnv("ADMIN_REGISTER_SECRET"),

		AccessTokenTTL:  mustGetTTL("ACCESS_TOKEN_TTL", "15m"),
		RefreshTokenTTL: mustGetTTL("REFRESH_TOKEN_TTL", "15d"),
		MFAChallengeTTL: mustGetTTL("MFA_CHALLENGE_TTL", "5m"),
		ResetTokenTTL:   mustGetTTL("RESET_TOKEN_TTL", "24h"),

		ScryptCost: getEnvAsInt("SCRYPT_COST", 0),
		MFAIssuer:  getEnv("MFA_ISSUER", "MedPresc"),
		SentryDSN:  getEnv("SENTRY_DSN", ""),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func mustGetTTL(key, defaultVal string) time.Duration {
	d, err := token.ParseTTL(getEnv(key, defaultVal))
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	if d <= 0 {
		log.Fatalf("Duration for %s must be positive", key)
	}
	return d
}
