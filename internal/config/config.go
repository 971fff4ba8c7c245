package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeHuman    = "human"
	ModeComputer = "computer"
	ModeWatch    = "watch"
)

var ErrUnknownMode = errors.New("unknown mode")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode     string `yaml:"mode" env:"MORRIS_MODE" env-default:"computer"`
	MaxTurns int    `yaml:"max-turns" env:"MORRIS_MAX_TURNS" env-default:"300"`
	Bot      Bot    `yaml:"bot"`
}

type Bot struct {
	MinThink time.Duration `yaml:"min-think" env:"MORRIS_BOT_MIN_THINK" env-default:"500ms"`
	MaxThink time.Duration `yaml:"max-think" env:"MORRIS_BOT_MAX_THINK" env-default:"1300ms"`
	Seed     uint64        `yaml:"seed" env:"MORRIS_BOT_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	switch that.Mode {
	case ModeHuman, ModeComputer, ModeWatch:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}

	if that.Bot.MaxThink < that.Bot.MinThink {
		return fmt.Errorf("bot max-think %s is below min-think %s", that.Bot.MaxThink, that.Bot.MinThink)
	}

	return nil
}
