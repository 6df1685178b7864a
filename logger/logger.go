package logger

import (
	"os"
	"strings"

	"github.com/rvalois/gh-language-stats/config"
	"github.com/sirupsen/logrus"
)

// Setup will configure the logrus logger.
// Logs go to stderr so stdout stays clean for the report itself.
func Setup(cfg config.Config) {
	logrus.SetOutput(os.Stderr)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if cfg.Logs.OutputLogsAsJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetLevel(StringToLogrusLogType(cfg.Logs.Level))
}

// StringToLogrusLogType will convert string to the right logrus level
func StringToLogrusLogType(logLevel string) logrus.Level {
	switch strings.ToLower(logLevel) {
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}
