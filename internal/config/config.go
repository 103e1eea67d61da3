package config

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPHost string  `yaml:"http-host" env:"HTTP_HOST" env-default:"127.0.0.1"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Console  Console `yaml:"console"`
}

type Console struct {
	HideHistory bool `yaml:"hide-history" env:"CONSOLE_HIDE_HISTORY"`
}

// Load reads the YAML file at path when it exists and applies environment
// overrides and defaults on top. A missing file is not an error.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}

		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Config) GetHTTPAddr() string {
	return net.JoinHostPort(that.HTTPHost, that.HTTPPort)
}
