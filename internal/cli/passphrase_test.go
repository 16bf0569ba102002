// Package cli — passphrase_test.go exercises the config-file merge:
// defaults from the file apply only to flags the user did not set, and
// explicit flags always win. The tests run the real commands with
// $PPGEN_CONFIG pointed at a fixture and inspect the generated output.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/ppgen/internal/config"
)

// writeConfig writes a JSONC defaults file to a temp dir and points
// $PPGEN_CONFIG at it for the duration of the test.
func writeConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(config.EnvVar, path)
}

// captureStdout runs fn with os.Stdout redirected to a pipe and
// returns everything it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

// runPassphraseCmd executes a fresh passphrase command with the given
// arguments and returns the generated passphrase (the first output line).
func runPassphraseCmd(t *testing.T, args ...string) string {
	t.Helper()
	out := captureStdout(t, func() {
		cmd := NewPassphraseCommand()
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute())
	})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	return lines[0]
}

// TestPassphrase_ConfigDefaultsApply verifies that file values fill in
// flags the user left unset: with words=6 and separator="." in the
// file and no flags given, the output has 6 dot-joined words.
func TestPassphrase_ConfigDefaultsApply(t *testing.T) {
	writeConfig(t, `{"words": 6, "separator": "."}`)

	pw := runPassphraseCmd(t)
	assert.Len(t, strings.Split(pw, "."), 6, "file defaults should apply when flags are unset")
}

// TestPassphrase_ExplicitFlagBeatsConfig verifies precedence: an
// explicit --words overrides the file value while the file's
// separator still applies to the unset flag.
func TestPassphrase_ExplicitFlagBeatsConfig(t *testing.T) {
	writeConfig(t, `{"words": 6, "separator": "."}`)

	pw := runPassphraseCmd(t, "--words", "3")
	assert.Len(t, strings.Split(pw, "."), 3, "explicit --words must beat the file value")
}

// TestPassphrase_ExplicitSeparatorBeatsConfig verifies the same
// precedence for the separator: with -s given, the file separator is
// ignored and the file word count still applies.
func TestPassphrase_ExplicitSeparatorBeatsConfig(t *testing.T) {
	writeConfig(t, `{"words": 5, "separator": "."}`)

	pw := runPassphraseCmd(t, "-s", "_")
	assert.NotContains(t, pw, ".")
	assert.Len(t, strings.Split(pw, "_"), 5)
}

// TestPassphrase_NoConfigFileUsesBuiltins verifies the built-in
// defaults (4 words, hyphen) when no defaults file exists.
func TestPassphrase_NoConfigFileUsesBuiltins(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	// Point the user config dir at an empty temp dir so a developer's
	// real defaults file cannot leak into the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	pw := runPassphraseCmd(t)
	assert.Len(t, strings.Split(pw, "-"), 4)
}

// TestComplex_ConfigMinLengthApplies verifies the complex command
// picks up minLength from the file when --min-length is unset, and
// that an explicit flag beats it.
func TestComplex_ConfigMinLengthApplies(t *testing.T) {
	writeConfig(t, `{"minLength": 40}`)

	fromFile := captureStdout(t, func() {
		cmd := NewComplexCommand()
		cmd.SetArgs(nil)
		require.NoError(t, cmd.Execute())
	})
	pw := strings.Split(strings.TrimSpace(fromFile), "\n")[0]
	assert.GreaterOrEqual(t, len(pw), 40, "file minLength should apply when the flag is unset")

	explicit := captureStdout(t, func() {
		cmd := NewComplexCommand()
		cmd.SetArgs([]string{"--min-length", "12"})
		require.NoError(t, cmd.Execute())
	})
	pw = strings.Split(strings.TrimSpace(explicit), "\n")[0]
	assert.GreaterOrEqual(t, len(pw), 12)
	assert.Less(t, len(pw), 40, "explicit --min-length must beat the file value")
}
