package config

import (
	"os"
	"strings"
)

// Config holds all server configuration, read once at startup
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	RedisAddr string
	JWTSecret string
}

// Load reads configuration from the environment with sane defaults
func Load() *Config {
	redisAddr := getEnvOrDefault("REDIS_URI", "localhost:6379")
	redisAddr = strings.TrimPrefix(redisAddr, "redis://")

	return &Config{
		Port:      getEnvOrDefault("PORT", "8080"),
		MongoURI:  getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnvOrDefault("MONGO_DB", "judgesim"),
		RedisAddr: redisAddr,
		JWTSecret: getEnvOrDefault("JWT_SECRET", "super-secret-key-change-in-production"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
