// Package config loads the socialnet runtime configuration from an optional
// YAML file laid over the defaults, applies environment overrides, then
// validates it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "SOCIALNET_CONFIG"
	EnvNewsAPIKey = "SOCIALNET_NEWS_API_KEY"
	EnvLogLevel   = "SOCIALNET_LOG_LEVEL"
)

// Config holds all application configuration.
type Config struct {
	LogLevel      string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat     string `yaml:"log_format" validate:"oneof=console json"`
	ActivityLimit int    `yaml:"activity_limit" validate:"gte=0"`
	FeedLimit     int    `yaml:"feed_limit" validate:"gte=0"`
	News          News   `yaml:"news"`
}

// News configures the headline client.
type News struct {
	BaseURL  string        `yaml:"base_url" validate:"required,url"`
	APIKey   string        `yaml:"api_key"`
	Language string        `yaml:"language" validate:"required,len=2"`
	Number   int           `yaml:"number" validate:"gte=1,lte=100"`
	Timeout  time.Duration `yaml:"timeout" validate:"gt=0"`
	Breaker  Breaker       `yaml:"breaker"`
}

// Breaker configures the circuit breaker around news requests.
type Breaker struct {
	MaxRequests      uint32        `yaml:"max_requests" validate:"gte=1"`
	Interval         time.Duration `yaml:"interval" validate:"gte=0"`
	Timeout          time.Duration `yaml:"timeout" validate:"gt=0"`
	FailureThreshold float64       `yaml:"failure_threshold" validate:"gt=0,lte=1"`
	MinRequests      uint32        `yaml:"min_requests" validate:"gte=1"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:      "warn",
		LogFormat:     "console",
		ActivityLimit: 10,
		FeedLimit:     20,
		News: News{
			BaseURL:  "https://api.worldnewsapi.com",
			Language: "en",
			Number:   5,
			Timeout:  10 * time.Second,
			Breaker: Breaker{
				MaxRequests:      1,
				Interval:         time.Minute,
				Timeout:          30 * time.Second,
				FailureThreshold: 0.6,
				MinRequests:      3,
			},
		},
	}
}

// Load reads configuration from a YAML file over the defaults, then applies
// environment overrides. Keys absent from the file keep their default; an
// explicit zero is kept as written. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	applyEnvironmentOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Path returns the config file path from the environment, or "" if unset.
func Path() string {
	return os.Getenv(EnvConfigPath)
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return errors.New(strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "len":
		return fmt.Sprintf("%s must be %s characters", field, e.Param())
	case "gt", "gte", "lt", "lte":
		return fmt.Sprintf("%s must be %s %s", field, e.Tag(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func applyEnvironmentOverrides(cfg *Config) {
	if key := os.Getenv(EnvNewsAPIKey); key != "" {
		cfg.News.APIKey = key
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
}
