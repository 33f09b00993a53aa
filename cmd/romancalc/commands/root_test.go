package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--home", home}, args...))
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestToRoman(t *testing.T) {
	home := t.TempDir()
	out, err := run(t, home, "to-roman", "1994")
	require.NoError(t, err)
	assert.Equal(t, "MCMXCIV", out)

	_, err = run(t, home, "to-roman", "4000")
	assert.Error(t, err)
	_, err = run(t, home, "to-roman", "ten")
	assert.Error(t, err)
}

func TestToInt(t *testing.T) {
	home := t.TempDir()
	out, err := run(t, home, "to-int", "xiv")
	require.NoError(t, err)
	assert.Equal(t, "14", out)

	out, err = run(t, home, "to-int", "--normalize", "IIII")
	require.NoError(t, err)
	assert.Equal(t, "4 IV", out)

	_, err = run(t, home, "to-int", "ABC")
	assert.Error(t, err)
}

func TestPress_PersistsBetweenInvocations(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "press", "X", "+")
	require.NoError(t, err)
	assert.Equal(t, "X", out)

	out, err = run(t, home, "press", "V", "=")
	require.NoError(t, err)
	assert.Equal(t, "XV", out)

	out, err = run(t, home, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "display=XV")

	out, err = run(t, home, "clear")
	require.NoError(t, err)
	assert.Equal(t, "0", out)
}

func TestPress_SessionsAreIndependent(t *testing.T) {
	home := t.TempDir()

	_, err := run(t, home, "--session", "a", "press", "M")
	require.NoError(t, err)
	out, err := run(t, home, "--session", "b", "press", "I")
	require.NoError(t, err)
	assert.Equal(t, "I", out)

	out, err = run(t, home, "--session", "a", "press", "C")
	require.NoError(t, err)
	assert.Equal(t, "MC", out)
}

func TestPress_RejectsUnknownToken(t *testing.T) {
	_, err := run(t, t.TempDir(), "press", "Q")
	assert.Error(t, err)
}

func TestPress_OverflowShowsError(t *testing.T) {
	out, err := run(t, t.TempDir(), "press", "M", "M", "M", "+", "M", "M", "=")
	require.NoError(t, err)
	assert.Equal(t, "Error/Too Big", out)
}

func TestLogLevelFlagIsValidated(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, "--log-level", "trace", "show")
	assert.Error(t, err)

	_, err = run(t, home, "--log-level", "debug", "show")
	assert.NoError(t, err)
}
