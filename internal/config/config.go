package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game    `yaml:"game"`
	AI       AI      `yaml:"ai"`
	Console  Console `yaml:"console"`
}

type Game struct {
	Kind      string `yaml:"kind" env:"GAME_KIND" env-default:"tictactoe"`
	HumanMark string `yaml:"human-mark" env:"GAME_HUMAN_MARK" env-default:"X"`
}

// AI holds search depths per game. A depth of 0 searches to the end of the game.
type AI struct {
	TicTacToeDepth   int  `yaml:"tictactoe-depth" env:"AI_TICTACTOE_DEPTH" env-default:"0"`
	ConnectFourDepth int  `yaml:"connectfour-depth" env:"AI_CONNECTFOUR_DEPTH" env-default:"4"`
	DisablePruning   bool `yaml:"disable-pruning" env:"AI_DISABLE_PRUNING" env-default:"false"`
}

type Console struct {
	Prompt      string `yaml:"prompt" env:"CONSOLE_PROMPT" env-default:"game> "`
	HistoryFile string `yaml:"history-file" env:"CONSOLE_HISTORY_FILE" env-default:""`
}

// MustLoad - load all configurations in config.yml file, falling back to the environment when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to read config %s: %w", path, err)
	}

	return config, nil
}
