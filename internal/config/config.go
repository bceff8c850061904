package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "GATEWAY_"

// Environments the GP API is reachable in.
const (
	EnvironmentTest       = "TEST"
	EnvironmentProduction = "PRODUCTION"
)

const (
	sandboxBaseURL    = "https://apis.sandbox.globalpay.com/ucp"
	productionBaseURL = "https://apis.globalpay.com/ucp"
)

type Config struct {
	Primary Primary      `koanf:"primary"`
	Server  ServerConfig `koanf:"server"`
	GPAPI   GPAPIConfig  `koanf:"gp_api"`
	Retry   RetryConfig  `koanf:"retry"`
	Logger  LoggerConfig `koanf:"logger"`
	Worker  WorkerConfig `koanf:"worker"`
}

type WorkerConfig struct {
	TokenRefreshInterval time.Duration `koanf:"token_refresh_interval" validate:"required,gt=0"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

// GPAPIConfig holds the merchant credentials and the fixed transaction
// attributes sent with every GP API call.
type GPAPIConfig struct {
	AppID          string        `koanf:"app_id" validate:"required"`
	AppKey         string        `koanf:"app_key" validate:"required"`
	BaseURL        string        `koanf:"base_url" validate:"omitempty,url"`
	Environment    string        `koanf:"environment" validate:"required,oneof=TEST PRODUCTION"`
	Channel        string        `koanf:"channel" validate:"required,oneof=CNP CP"`
	Country        string        `koanf:"country" validate:"required,len=2"`
	APIVersion     string        `koanf:"api_version" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

// URL returns the configured base URL, or the documented one for the environment.
func (c GPAPIConfig) URL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if c.Environment == EnvironmentProduction {
		return productionBaseURL
	}
	return sandboxBaseURL
}

// RetryConfig applies to access-token requests only. Transaction calls are
// sent once.
type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay" validate:"required"`
	MaxRetries int           `koanf:"max_retries" validate:"required,min=1"`
}

// GatewayCallBudget is the longest one payment can spend waiting on the
// processor: authorize and capture, each preceded by a token fetch that
// exhausts its retries.
func (c *Config) GatewayCallBudget() time.Duration {
	token := time.Duration(c.Retry.MaxRetries) * c.GPAPI.RequestTimeout
	for attempt := 0; attempt < c.Retry.MaxRetries-1; attempt++ {
		token += c.Retry.BaseDelay<<attempt + c.Retry.BaseDelay/2
	}
	return 2 * (token + c.GPAPI.RequestTimeout)
}

// validateTimeouts rejects a write deadline that could cut a response while
// the capture is still in flight.
func (c *Config) validateTimeouts() error {
	if budget := c.GatewayCallBudget(); c.Server.WriteTimeout <= budget {
		return fmt.Errorf("server.write_timeout %s must exceed the gateway call budget %s", c.Server.WriteTimeout, budget)
	}
	return nil
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                   "development",
		"server.port":                   "8000",
		"server.read_timeout":           "15s",
		"server.write_timeout":          "300s",
		"server.idle_timeout":           "120s",
		"gp_api.environment":            EnvironmentTest,
		"gp_api.channel":                "CNP",
		"gp_api.country":                "IE",
		"gp_api.api_version":            "2021-03-22",
		"gp_api.request_timeout":        "30s",
		"retry.base_delay":              "500ms",
		"retry.max_retries":             3,
		"logger.level":                  "info",
		"logger.format":                 "json",
		"worker.token_refresh_interval": "30s",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	if err := mainConfig.validateTimeouts(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
