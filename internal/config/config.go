package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the data lab client.
type Config struct {
	// APIBaseURL is the fallback base address for the versioned API.
	// It is used as-is when discovery fails or is disabled.
	APIBaseURL string

	// DiscoveryURL is the well-known endpoint that publishes the live
	// base address. Set it to "" to skip discovery entirely.
	DiscoveryURL string

	DiscoveryTimeout time.Duration
	RequestTimeout   time.Duration

	// Headless controls whether the backend runs its scraping browser
	// without a visible window.
	Headless bool
}

// Load reads configuration from environment variables and optional config file.
// Environment variables take precedence over config file values.
//
// Expected environment variables:
//   - DATALAB_API_BASE_URL (optional, defaults to the local backend)
//   - DATALAB_DISCOVERY_URL (optional, defaults to the local backend)
//   - DATALAB_DISCOVERY_TIMEOUT (optional)
//   - DATALAB_REQUEST_TIMEOUT (optional)
//   - DATALAB_HEADLESS (optional)
func Load() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	// Defaults match the backend's local development setup
	v.SetDefault("api_base_url", "http://localhost:8000/api/v1")
	v.SetDefault("discovery_url", "http://localhost:8000/api/config")
	v.SetDefault("discovery_timeout", "5s")
	// Scrape triggers drive a browser on the backend and routinely take
	// minutes for bulk runs
	v.SetDefault("request_timeout", "5m")
	v.SetDefault("headless", true)

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.datalab")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	v.BindEnv("api_base_url", "DATALAB_API_BASE_URL")
	v.BindEnv("discovery_url", "DATALAB_DISCOVERY_URL")
	v.BindEnv("discovery_timeout", "DATALAB_DISCOVERY_TIMEOUT")
	v.BindEnv("request_timeout", "DATALAB_REQUEST_TIMEOUT")
	v.BindEnv("headless", "DATALAB_HEADLESS")

	// Typed getters cast env-supplied strings into durations and bools
	config := &Config{
		APIBaseURL:       v.GetString("api_base_url"),
		DiscoveryURL:     v.GetString("discovery_url"),
		DiscoveryTimeout: v.GetDuration("discovery_timeout"),
		RequestTimeout:   v.GetDuration("request_timeout"),
		Headless:         v.GetBool("headless"),
	}

	if config.APIBaseURL == "" {
		return nil, fmt.Errorf("api_base_url cannot be empty")
	}
	if _, err := url.ParseRequestURI(config.APIBaseURL); err != nil {
		return nil, fmt.Errorf("invalid api_base_url: %w", err)
	}
	if config.DiscoveryURL != "" {
		if _, err := url.ParseRequestURI(config.DiscoveryURL); err != nil {
			return nil, fmt.Errorf("invalid discovery_url: %w", err)
		}
	}
	if config.DiscoveryTimeout <= 0 {
		return nil, fmt.Errorf("discovery_timeout must be positive")
	}
	if config.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request_timeout must be positive")
	}

	return config, nil
}
