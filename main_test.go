package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPromptUsername will test username reading from stdin
// no settings file exists in the test working directory, so these cases run
// without a configured default
func TestPromptUsername(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expected       string
		expectError    bool
		expectedErrMsg string
	}{
		{
			name:     "Plain username",
			input:    "octocat\n",
			expected: "octocat",
		},
		{
			name:     "Surrounding whitespace is trimmed",
			input:    "  octocat  \n",
			expected: "octocat",
		},
		{
			name:           "Blank input without a default",
			input:          "\n",
			expectError:    true,
			expectedErrMsg: "EMPTY_USERNAME",
		},
		{
			name:           "Closed stdin without a default",
			input:          "",
			expectError:    true,
			expectedErrMsg: "EMPTY_USERNAME",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			username, err := promptUsername(strings.NewReader(tt.input), &out)

			if tt.expectError {
				assert.EqualError(t, err, tt.expectedErrMsg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, username)
			}

			assert.Contains(t, out.String(), "Enter the GitHub username")
		})
	}
}
