package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	StartPlayer string `yaml:"start-player" env:"TICTACTOE_START_PLAYER" env-default:"X"`
}

// MustLoad - loads configuration from the given yml file plus environment
// overrides. A missing file is fine for a CLI tool; the env defaults apply.
// A file that exists but cannot be parsed is a setup error and panics.
func MustLoad(path string) *Config {
	config := &Config{}

	err := cleanenv.ReadConfig(path, config)
	if errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment: %w", err))
		}
		return config
	}

	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
