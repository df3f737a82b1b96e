package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const (
	LogFormatTerminal = "terminal"
	LogFormatJSON     = "json"
)

type Config struct {
	LogLevel  string `env:"RSM_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"RSM_LOG_FORMAT" envDefault:"terminal"`
	// Genesis is the path of a genesis YAML document, empty for the built-in demo
	Genesis string `env:"RSM_GENESIS"`
	// Blocks is the path of a blocks YAML document, empty for the built-in demo
	Blocks string `env:"RSM_BLOCKS"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}
