package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/CIDgravity/snakelet"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// config structure
type Config struct {
	Github GithubConfig `mapstructure:"GITHUB"`
	Logs   LogsConfig   `mapstructure:"LOGS"`
}

type GithubConfig struct {
	PageSize int `mapstructure:"PageSize"`
}

type LogsConfig struct {
	Level            string `mapstructure:"Level"` // error | warn | info | debug - case insensitive
	OutputLogsAsJSON bool   `mapstructure:"OutputLogsAsJson"`
}

// Load reads the optional config/config.toml next to the binary or in the
// working directory. A missing file is not an error: defaults apply.
func Load() (*Config, error) {
	// load .env file if it exists, so GITHUB_TOKEN can be kept in a dotfile
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment variables only")
	}

	cfg := GetDefault()

	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err != nil {
		return nil, err
	}

	configFilePath := dir + "/config/config.toml"

	if _, err := os.Stat(configFilePath); errors.Is(err, os.ErrNotExist) {
		if _, err := os.Stat("config/config.toml"); errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		configFilePath = "config/config.toml"
	}

	if _, err := snakelet.InitAndLoad(cfg, configFilePath); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetDefault
func GetDefault() *Config {
	return &Config{
		Github: GithubConfig{
			PageSize: 100,
		},
		Logs: LogsConfig{
			Level:            "info",
			OutputLogsAsJSON: false,
		},
	}
}
