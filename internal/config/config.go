package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"

	"sobasite/internal/platform/logger"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type BaseConfig struct {
	Environment string       `envconfig:"ENV" default:"development" validate:"oneof=development staging production test"`
	Logger      LoggerConfig `envconfig:"LOGGER"`
}

type LoggerConfig struct {
	Level  logger.Level  `envconfig:"LEVEL" default:"info"`
	Format logger.Format `envconfig:"FORMAT" default:"json"`
}

// LoadBase reads ENV and the logger settings. ENV is lower-cased so that
// "Production" and "production" select the same behaviour.
func LoadBase() (*BaseConfig, error) {
	var cfg BaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))
	return &cfg, nil
}

func (c *BaseConfig) IsProduction() bool {
	return c.Environment == EnvProduction
}
