package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Document store
	MongoURI string // connection string, e.g. "mongodb://localhost:27017"
	MongoDB  string // database name

	// "development" or "production"; gates error detail in responses
	Env string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout: getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		MongoURI:        mustGetenv("MONGO_URI"),
		MongoDB:         getenvDefault("MONGO_DB", "dsa_tracker"),
		Env:             getenvDefault("ENV", "development"),
	}
}

// Development reports whether error details may be exposed to clients.
func (c *Config) Development() bool {
	return c.Env != "production"
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}
