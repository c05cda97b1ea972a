package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type FormConfig struct {
	Session SessionConfig `envconfig:"FORM_SESSION"`
	Site    SiteConfig    `envconfig:"SITE"`
}

type SessionConfig struct {
	TTL           time.Duration `envconfig:"TTL" default:"30m" validate:"min=0s"`
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m" validate:"min=1s"`
	MaxSessions   int           `envconfig:"MAX" default:"10000" validate:"min=0"`
}

type SiteConfig struct {
	// ContentPath points at a YAML file replacing the embedded site content.
	ContentPath string `envconfig:"CONTENT_PATH" default:""`
}

func LoadForm() (*FormConfig, error) {
	var cfg FormConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
