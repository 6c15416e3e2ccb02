package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/callback"
	"github.com/dharavthjayanth/GUVI-HONEYPOT/internal/detector"
)

type Config struct {
	Server   ServerConfig   `json:"server" mapstructure:"server"`
	Honeypot HoneypotConfig `json:"honeypot" mapstructure:"honeypot"`
	Callback CallbackConfig `json:"callback" mapstructure:"callback"`
}

type ServerConfig struct {
	Host string `json:"host" mapstructure:"host"`
	Port int    `json:"port" mapstructure:"port"`
}

type HoneypotConfig struct {
	// APIKey is the static key checked against the x-api-key header.
	APIKey      string `json:"api_key" mapstructure:"api_key"`
	Environment string `json:"environment" mapstructure:"environment"`

	// ScamThreshold is the score at which a message flags the session.
	ScamThreshold int `json:"scam_threshold" mapstructure:"scam_threshold"`
	// MinEngagementMessages is how many turns must be exchanged before a
	// final report may fire.
	MinEngagementMessages int `json:"min_engagement_messages" mapstructure:"min_engagement_messages"`
}

type CallbackConfig struct {
	URL            string `json:"url" mapstructure:"url"`
	TimeoutSeconds int    `json:"timeout_seconds" mapstructure:"timeout_seconds"`
	MaxRetries     int    `json:"max_retries" mapstructure:"max_retries"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("honeypot.environment", "production")
	viper.SetDefault("honeypot.scam_threshold", detector.DefaultThreshold)
	viper.SetDefault("honeypot.min_engagement_messages", 2)
	viper.SetDefault("callback.url", callback.DefaultURL)
	viper.SetDefault("callback.timeout_seconds", 5)
	viper.SetDefault("callback.max_retries", 2)

	// Read config; a missing file is fine, env vars carry the rest.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	loadEnvOverrides(&cfg)

	if cfg.Honeypot.APIKey == "" {
		return nil, errors.New("missing env var: HONEYPOT_API_KEY")
	}

	return &cfg, nil
}

func loadEnvOverrides(cfg *Config) {
	if key := strings.TrimSpace(os.Getenv("HONEYPOT_API_KEY")); key != "" {
		cfg.Honeypot.APIKey = key
	}
	if env := strings.TrimSpace(os.Getenv("ENVIRONMENT")); env != "" {
		cfg.Honeypot.Environment = env
	}
	if port := os.Getenv("HONEYPOT_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if url := os.Getenv("HONEYPOT_CALLBACK_URL"); url != "" {
		cfg.Callback.URL = url
	}
	if th := os.Getenv("HONEYPOT_SCAM_THRESHOLD"); th != "" {
		if v, err := strconv.Atoi(th); err == nil {
			cfg.Honeypot.ScamThreshold = v
		}
	}
}
