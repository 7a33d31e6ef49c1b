package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// WeatherSettings configures the OpenWeather connector and the freshness
// window used before refetching an observation for a location.
type WeatherSettings struct {
	APIKey          string        `mapstructure:"api_key"`
	BaseURL         string        `mapstructure:"base_url" validate:"required,url"`
	DefaultLocation string        `mapstructure:"default_location" validate:"required"`
	DefaultLat      float64       `mapstructure:"default_lat" validate:"required"`
	DefaultLon      float64       `mapstructure:"default_lon" validate:"required"`
	FreshnessTTL    time.Duration `mapstructure:"freshness_ttl" validate:"required"`
}

// MarketSettings configures the Agmarknet market data connector.
type MarketSettings struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

// LLMSettings configures the OpenAI-compatible inference endpoint serving the
// fine-tuned agricultural model. When BaseURL is empty the assistant runs on
// the built-in response catalog only.
type LLMSettings struct {
	BaseURL     string  `mapstructure:"base_url"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float32 `mapstructure:"temperature"`
	TopP        float32 `mapstructure:"top_p"`
}

// Enabled reports whether a remote inference endpoint is configured.
func (s *LLMSettings) Enabled() bool {
	return s.BaseURL != ""
}

// RestConfig aggregates all settings for the REST API process.
type RestConfig struct {
	Port           string           `mapstructure:"port" validate:"required"`
	Environment    string           `mapstructure:"environment" validate:"required,oneof=development testing production"`
	AllowedOrigins []string         `mapstructure:"allowed_origins"`
	Database       DatabaseSettings `mapstructure:"database"`
	Logger         LoggerSettings   `mapstructure:"logger"`
	Weather        WeatherSettings  `mapstructure:"weather"`
	Market         MarketSettings   `mapstructure:"market"`
	LLM            LLMSettings      `mapstructure:"llm"`
}

// Validate checks the aggregate configuration.
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}

	return nil
}

// InitializeRestConfig loads the REST API configuration from the given YAML
// file with CROPGPT_-prefixed environment variable overrides.
// Precedence (highest to lowest): env vars > config file > defaults.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()

	setRestDefaults(v)

	v.SetEnvPrefix("CROPGPT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("environment", EnvDevelopment)
	v.SetDefault("allowed_origins", []string{"*"})

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "cropgpt.db")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)

	v.SetDefault("weather.base_url", "https://api.openweathermap.org")
	v.SetDefault("weather.default_location", "Ranchi")
	v.SetDefault("weather.default_lat", 23.3441)
	v.SetDefault("weather.default_lon", 85.3096)
	v.SetDefault("weather.freshness_ttl", 15*time.Minute)

	v.SetDefault("market.base_url", "https://api.data.gov.in")

	v.SetDefault("llm.model", "cropgpt-llama2-7b")
	v.SetDefault("llm.max_tokens", 512)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.top_p", 0.9)
}
