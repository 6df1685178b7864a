package config

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// SettingsFile is the optional user settings file looked up in the working
// directory. Unknown keys are ignored.
const SettingsFile = "config.json"

type Settings struct {
	GithubTokenPath string `mapstructure:"githubTokenPath"`
	DefaultUsername string `mapstructure:"defaultUsername"`
}

// LoadSettings reads the settings file from disk on every call.
// A missing, unreadable or malformed file is never an error for the caller:
// it is logged and an empty Settings is returned instead.
func LoadSettings() Settings {
	return loadSettingsFrom(SettingsFile)
}

func loadSettingsFrom(path string) Settings {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Settings{}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		log.WithError(err).WithField("file", path).Warn("unable to read settings file. make sure it contains valid JSON")
		return Settings{}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		log.WithError(err).WithField("file", path).Warn("unable to decode settings file")
		return Settings{}
	}

	return settings
}

// TokenFilePath returns the configured token file path, re-reading the
// settings file
func TokenFilePath() (string, bool) {
	settings := LoadSettings()
	return settings.GithubTokenPath, settings.GithubTokenPath != ""
}

// DefaultUsername returns the configured default username, re-reading the
// settings file
func DefaultUsername() (string, bool) {
	settings := LoadSettings()
	return settings.DefaultUsername, settings.DefaultUsername != ""
}
