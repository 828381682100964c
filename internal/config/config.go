package config

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HighLevel HighLevelConfig
	Addr      string
}

// HighLevelConfig holds credentials for the HighLevel catalog API.
type HighLevelConfig struct {
	APIToken   string
	LocationID string
	BaseURL    string
	APIVersion string
	// HTTPClient overrides the default transport, used by tests.
	HTTPClient *http.Client
}

func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	config := &Config{
		HighLevel: HighLevelConfig{
			APIToken:   os.Getenv("HL_API_TOKEN"),
			LocationID: os.Getenv("HL_LOCATION_ID"),
			BaseURL:    os.Getenv("HL_BASE_URL"),
			APIVersion: getEnvOrDefault("HL_API_VERSION", "2021-07-28"),
		},
		Addr: getEnvOrDefault("ADDR", ":8080"),
	}

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
