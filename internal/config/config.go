package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable, e.g. CHANNELGATE_API_BASE_URL.
const EnvPrefix = "CHANNELGATE"

// DefaultBaseURL is the local development backend.
const DefaultBaseURL = "http://localhost:8001"

// Session backends selectable with CHANNELGATE_SESSION_BACKEND.
const (
	SessionBackendFile   = "file"
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Config holds client and CLI settings read from the environment.
type Config struct {
	// HTTP
	BaseURL     string        `envconfig:"API_BASE_URL" default:"http://localhost:8001" validate:"required,url"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s" validate:"gte=0"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`

	// Session storage
	SessionBackend string `envconfig:"SESSION_BACKEND" default:"file" validate:"oneof=file memory redis"`
	SessionFile    string `envconfig:"SESSION_FILE"`
	RedisURL       string `envconfig:"REDIS_URL" validate:"omitempty,url"`
	RedisKey       string `envconfig:"REDIS_KEY" default:"channelgate:session"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn error"`
}

var validate = validator.New()

// New processes CHANNELGATE_* variables and validates the result.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints. It is exported so callers that build a
// Config by hand (flags, tests) can apply the same rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.SessionBackend == SessionBackendRedis && c.RedisURL == "" {
		return fmt.Errorf("invalid configuration: %s_REDIS_URL is required for the redis session backend", EnvPrefix)
	}
	return nil
}

// NewForTesting returns a config pointing at baseURL with an in-memory
// session and no env lookups.
func NewForTesting(baseURL string) *Config {
	return &Config{
		BaseURL:        baseURL,
		HTTPTimeout:    5 * time.Second,
		SessionBackend: SessionBackendMemory,
		RedisKey:       "channelgate:session",
		LogLevel:       "debug",
	}
}
