package credentials

import (
	"fmt"
	"os"
	"strings"

	"github.com/rvalois/gh-language-stats/config"
	log "github.com/sirupsen/logrus"
)

// EnvTokenVar is checked before any settings-file lookup
const EnvTokenVar = "GITHUB_TOKEN"

// Resolve produces the github access token for this run.
// Priority: environment variable first, then the token file referenced by the
// settings file. When neither yields a token, a CREDENTIAL_MISSING error is
// returned so the caller can print the setup instructions.
func Resolve() (string, error) {
	return resolve(os.Getenv(EnvTokenVar), config.TokenFilePath)
}

func resolve(envToken string, tokenFilePath func() (string, bool)) (string, error) {
	if envToken != "" {
		log.Debug("using github token from environment variable " + EnvTokenVar)
		return envToken, nil
	}

	if path, ok := tokenFilePath(); ok {
		token, err := readTokenFile(path)

		if err != nil {
			log.WithError(err).WithField("file", path).Warn("unable to read token file")
		} else if token != "" {
			log.WithField("file", path).Debug("using github token from file")
			return token, nil
		}
	}

	return "", fmt.Errorf("CREDENTIAL_MISSING")
}

// readTokenFile reads and trims the raw token from a file on disk
func readTokenFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(raw)), nil
}
