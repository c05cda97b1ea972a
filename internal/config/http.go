package config

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HttpConfig struct {
	BaseConfig
	Server    HttpServerConfig `envconfig:"HTTP_SERVER"`
	RateLimit RateLimitConfig  `envconfig:"RATE_LIMIT"`
	CORS      CORSConfig       `envconfig:"CORS"`
	Health    HealthConfig     `envconfig:"HEALTH"`
}

type HttpServerConfig struct {
	Host         string `envconfig:"HOST" default:"0.0.0.0"`
	Port         int    `envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout  int    `envconfig:"READ_TIMEOUT" default:"30" validate:"min=1"`
	WriteTimeout int    `envconfig:"WRITE_TIMEOUT" default:"30" validate:"min=1"`
	IdleTimeout  int    `envconfig:"IDLE_TIMEOUT" default:"120" validate:"min=1"`
	// MaxFormBytes caps urlencoded and JSON request bodies.
	MaxFormBytes int64 `envconfig:"MAX_FORM_BYTES" default:"65536" validate:"min=1024"`
}

type RateLimitConfig struct {
	GlobalRequests int `envconfig:"GLOBAL_REQUESTS" default:"1000" validate:"min=1"`
	GlobalWindow   int `envconfig:"GLOBAL_WINDOW" default:"60" validate:"min=1"`
	RequestsPerIP  int `envconfig:"REQUESTS_PER_IP" default:"100" validate:"min=1"`
	WindowSeconds  int `envconfig:"WINDOW_SECONDS" default:"60" validate:"min=1"`
}

type CORSConfig struct {
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Content-Type,X-CSRF-Token"`
	ExposedHeaders   []string `envconfig:"EXPOSED_HEADERS" default:""`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
	MaxAge           int      `envconfig:"MAX_AGE" default:"86400"`
}

type HealthConfig struct {
	CheckTimeout     time.Duration `envconfig:"CHECK_TIMEOUT" default:"2s" validate:"min=1ms"`
	ReadinessTimeout time.Duration `envconfig:"READINESS_TIMEOUT" default:"5s" validate:"min=1ms"`
}

var ErrWildcardOrigin = errors.New("CORS_ALLOWED_ORIGINS must list explicit origins in production")

func LoadHttp() (*HttpConfig, error) {
	var cfg HttpConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))
	return &cfg, nil
}

// CheckCORS rejects the wildcard origin in production. The form API then
// only answers browsers on the configured site origins.
func (c *HttpConfig) CheckCORS() error {
	if c.IsProduction() && slices.Contains(c.CORS.AllowedOrigins, "*") {
		return ErrWildcardOrigin
	}
	return nil
}
