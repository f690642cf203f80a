package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Prompt   string `yaml:"prompt" env:"PROMPT" env-default:"> "`
	Render   Render `yaml:"render"`
}

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Render struct {
	Color       string `yaml:"color" env:"RENDER_COLOR" env-default:"auto"`
	RedSymbol   string `yaml:"red-symbol" env-default:"R"`
	BlackSymbol string `yaml:"black-symbol" env-default:"B"`
	EmptySymbol string `yaml:"empty-symbol" env-default:"."`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file at path, environment variables take precedence.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
