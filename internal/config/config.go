package config

import (
	"os"
	"strconv"
	"time"

	"mastermind_reach/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	JWTSecret   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// random.org integers endpoint used by the code generator
	RandomOrgURL     string
	RandomOrgTimeout time.Duration

	// Rate limits
	APIRateLimit    int
	APIRateWindow   time.Duration
	GuessRateLimit  int
	GuessRateWindow time.Duration

	LogLevel string
	LogJSON  bool
}

// Load reads configuration from the environment, with a .env file as
// a development convenience. Missing DATABASE_URL or JWT_SECRET is fatal.
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	randomOrgURL := os.Getenv("RANDOM_ORG_URL")
	if randomOrgURL == "" {
		randomOrgURL = "https://www.random.org/integers/"
	}

	return &Config{
		AppPort:     port,
		DatabaseURL: dbURL,
		JWTSecret:   jwtSecret,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),

		RandomOrgURL:     randomOrgURL,
		RandomOrgTimeout: envSeconds("RANDOM_ORG_TIMEOUT_SECONDS", 5*time.Second),

		APIRateLimit:    envInt("API_RATE_LIMIT", 60),
		APIRateWindow:   envSeconds("API_RATE_WINDOW_SECONDS", time.Minute),
		GuessRateLimit:  envInt("GUESS_RATE_LIMIT", 30),
		GuessRateWindow: envSeconds("GUESS_RATE_WINDOW_SECONDS", time.Minute),

		LogLevel: envDefault("LOG_LEVEL", "info"),
		LogJSON:  os.Getenv("LOG_JSON") == "true",
	}
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envSeconds(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return def
}
