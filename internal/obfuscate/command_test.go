package obfuscate

import (
	"context"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not found")
	}
	return sh
}

func TestCommand_RunsExternalTool(t *testing.T) {
	sh := requireShell(t)

	c := &Command{
		Path: sh,
		Args: []string{"-c", `{ echo "/*obf*/"; cat "$0"; } > "$1"`, inPlaceholder, outPlaceholder},
	}

	out, err := c.Obfuscate(context.Background(), "main.js", "var a = 1;")
	require.NoError(t, err)
	assert.Equal(t, "/*obf*/\nvar a = 1;", out)
}

func TestCommand_NonZeroExitIsFatal(t *testing.T) {
	sh := requireShell(t)

	c := &Command{Path: sh, Args: []string{"-c", `echo "bad input" >&2; exit 3`}}

	_, err := c.Obfuscate(context.Background(), "main.js", "var a = 1;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad input")
	assert.Contains(t, err.Error(), "main.js")
}

func TestCommand_MissingOutputIsFatal(t *testing.T) {
	sh := requireShell(t)

	c := &Command{Path: sh, Args: []string{"-c", "exit 0"}}

	_, err := c.Obfuscate(context.Background(), "main.js", "var a = 1;")
	require.ErrorContains(t, err, "read obfuscator output for main.js")
}

func TestCommand_MissingExecutable(t *testing.T) {
	c := NewCommand("/nonexistent/javascript-obfuscator")
	_, err := c.Obfuscate(context.Background(), "main.js", "var a = 1;")
	require.Error(t, err)
}
