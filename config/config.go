package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken          string
	WeatherAPIKey     string
	SpoonacularAPIKey string
	HTTPAddr          string
}

// Load reads configuration from the environment, with .env as a convenience
// for local runs. Only the bot token is mandatory: missing API keys degrade
// the weather and food lookups instead of crashing the process.
func Load() (*Config, error) {
	// A missing .env file is fine in production, variables come from the
	// environment there.
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:          os.Getenv("BOT_TOKEN"),
		WeatherAPIKey:     os.Getenv("WEATHER_API_KEY"),
		SpoonacularAPIKey: os.Getenv("SPOONACULAR_API_KEY"),
		HTTPAddr:          os.Getenv("HTTP_ADDR"),
	}
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable is not set")
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	return cfg, nil
}
