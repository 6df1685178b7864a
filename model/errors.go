package model

type CLIError struct {
	Code    string
	Message string
}

func (e CLIError) Error() string {
	return e.Code
}

const credentialMissingHelp = `GitHub Personal Access Token not found. Please either:
1. Set the 'GITHUB_TOKEN' environment variable, or
2. Create a 'config.json' file with the path to your token file.

To generate a Personal Access Token (PAT) on GitHub:
1. Go to your GitHub Settings -> Developer settings -> Personal access tokens -> Tokens (classic) or Fine-grained tokens.
2. Click 'Generate new token'.
3. Give it a descriptive name (e.g., 'RepoLanguageStats').
4. For 'Tokens (classic)', grant at least the 'public_repo' scope if you only need public repos, or 'repo' for all repos. For 'Fine-grained tokens', grant 'Read' access to 'Contents' for selected repositories or all public repositories.
5. Copy the generated token to a file.
6. Create a 'config.json' file with the path to your token file:
   {
     "githubTokenPath": "/path/to/your/token/file"
   }`

// NewCLIError maps an internal error code to the message shown to the user
func NewCLIError(errReason error) CLIError {
	switch errReason.Error() {
	case "CREDENTIAL_MISSING":
		return CLIError{
			Code:    "CREDENTIAL_MISSING",
			Message: credentialMissingHelp,
		}

	case "EMPTY_USERNAME":
		return CLIError{
			Code:    "EMPTY_USERNAME",
			Message: "Username cannot be empty. Exiting.",
		}

	default:
		return CLIError{
			Code:    errReason.Error(),
			Message: "unexpected error. run again with log level debug for details",
		}
	}
}
