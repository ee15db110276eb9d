package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret signs session tokens when JWT_SECRET is unset. Only fit for local runs.
const DefaultJWTSecret = "change-me"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	SwaggerHost string
	LogLevel    string

	// UpstreamBaseURL is the root of the property-management REST API.
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	// PublicBaseURL is where browsers reach this service; OAuth callbacks point here.
	PublicBaseURL string

	SessionTTL           time.Duration
	SessionRetryAttempts int
	SessionRetryDelay    time.Duration
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		MySQLDSN:             getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/leasehub?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              getEnvInt("REDIS_DB", 0),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		JWTSecret:            getEnv("JWT_SECRET", DefaultJWTSecret),
		SwaggerHost:          os.Getenv("SWAGGER_HOST"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		UpstreamBaseURL:      getEnv("UPSTREAM_BASE_URL", "http://localhost:4000/api"),
		UpstreamTimeout:      getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second),
		PublicBaseURL:        getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		SessionTTL:           getEnvDuration("SESSION_TTL", 12*time.Hour),
		SessionRetryAttempts: getEnvInt("SESSION_RETRY_ATTEMPTS", 3),
		SessionRetryDelay:    getEnvDuration("SESSION_RETRY_DELAY", 500*time.Millisecond),
	}
}

// DefaultSecret reports whether tokens are signed with DefaultJWTSecret.
func (c *Config) DefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
