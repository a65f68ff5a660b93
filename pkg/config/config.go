package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	// ScenarioPath points to a YAML demo scenario; empty runs the built-in one.
	ScenarioPath     string
	QuoteConcurrency int
}

// Load reads an optional .env file, then the process environment. Variables
// already set in the environment win over .env entries.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:           getEnv("APP_ENV", "dev"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		ScenarioPath:     getEnv("CART_SCENARIO", ""),
		QuoteConcurrency: getEnvInt("QUOTE_CONCURRENCY", 10),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}

	return n
}
