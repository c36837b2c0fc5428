package config

import (
	"os"
)

type Config struct {
	AppPort string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string
}

func Load() Config {

	cfg := Config{
		AppPort: getenv("APP_PORT", "8080"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
