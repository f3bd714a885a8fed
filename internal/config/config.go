package config

import "os"

// apiBaseURL can be injected at build time:
//
//	go build -ldflags "-X motoinventory/internal/config.apiBaseURL=https://api.example.com"
//
// It takes precedence over the API_URL environment variable; the final
// fallback is the local backend on its default port.
var apiBaseURL string

const defaultAPIBaseURL = "http://localhost:8080"

type Config struct {
	Addr       string
	GinMode    string
	APIBaseURL string
}

func Load() *Config {
	return &Config{
		Addr:       getEnv("ADDR", ":3000"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		APIBaseURL: resolveAPIBaseURL(),
	}
}

func resolveAPIBaseURL() string {
	if apiBaseURL != "" {
		return apiBaseURL
	}
	if v := os.Getenv("API_URL"); v != "" {
		return v
	}
	return defaultAPIBaseURL
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
