package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenFileAt(t *testing.T, content string) func() (string, bool) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal("unable to write token file fixture")
	}

	return func() (string, bool) { return path, true }
}

func noTokenFile() (string, bool) {
	return "", false
}

// TestResolvePrefersEnvironment checks that the environment variable always
// wins over a configured token file
func TestResolvePrefersEnvironment(t *testing.T) {
	token, err := resolve("env-token", tokenFileAt(t, "file-token\n"))

	assert.NoError(t, err)
	assert.Equal(t, "env-token", token)
}

// TestResolveReadsTokenFile checks that the token file content is trimmed
func TestResolveReadsTokenFile(t *testing.T) {
	token, err := resolve("", tokenFileAt(t, "abc123\n"))

	assert.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

// TestResolveMissingEverywhere checks the CREDENTIAL_MISSING failure
func TestResolveMissingEverywhere(t *testing.T) {
	_, err := resolve("", noTokenFile)

	assert.EqualError(t, err, "CREDENTIAL_MISSING")
}

// TestResolveUnreadableTokenFile checks that a bad token path degrades to the
// missing-credential error instead of failing hard
func TestResolveUnreadableTokenFile(t *testing.T) {
	_, err := resolve("", func() (string, bool) {
		return filepath.Join(t.TempDir(), "does-not-exist"), true
	})

	assert.EqualError(t, err, "CREDENTIAL_MISSING")
}

// TestResolveEmptyTokenFile checks that a whitespace-only token file does not
// produce an empty token
func TestResolveEmptyTokenFile(t *testing.T) {
	_, err := resolve("", tokenFileAt(t, "  \n"))

	assert.EqualError(t, err, "CREDENTIAL_MISSING")
}

// TestResolveFromEnvironment exercises the exported entry point
func TestResolveFromEnvironment(t *testing.T) {
	t.Setenv(EnvTokenVar, "from-env")

	token, err := Resolve()

	assert.NoError(t, err)
	assert.Equal(t, "from-env", token)
}
