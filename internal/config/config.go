// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds settings shared by the CLI and the HTTP server.
type Config struct {
	Addr         string
	Lookahead    int
	PreviewRows  int
	MaxUploadMB  int64
	CacheEntries int
}

// Load reads .env (if present) and the ATTCLEAN_* environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] ignoring .env: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		Addr:         getEnv("ATTCLEAN_ADDR", ":8080"),
		Lookahead:    getEnvInt("ATTCLEAN_LOOKAHEAD", 10),
		PreviewRows:  getEnvInt("ATTCLEAN_PREVIEW_ROWS", 50),
		MaxUploadMB:  int64(getEnvInt("ATTCLEAN_MAX_UPLOAD_MB", 32)),
		CacheEntries: getEnvInt("ATTCLEAN_CACHE_ENTRIES", 16),
	}
}

// MaxUploadBytes returns the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt falls back to defaultValue for missing, malformed or non-positive values.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
