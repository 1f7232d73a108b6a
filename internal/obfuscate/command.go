package obfuscate

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	DefaultCommand = "javascript-obfuscator"

	inPlaceholder  = "{in}"
	outPlaceholder = "{out}"
)

// maximalArgs pins every probabilistic javascript-obfuscator feature to
// "always apply".
var maximalArgs = []string{
	inPlaceholder, "--output", outPlaceholder,
	"--compact", "true",
	"--control-flow-flattening", "true",
	"--control-flow-flattening-threshold", "1",
	"--dead-code-injection", "true",
	"--dead-code-injection-threshold", "1",
	"--identifier-names-generator", "hexadecimal",
	"--numbers-to-expressions", "true",
	"--self-defending", "true",
	"--simplify", "true",
	"--split-strings", "true",
	"--split-strings-chunk-length", "5",
	"--string-array", "true",
	"--string-array-encoding", "base64",
	"--string-array-threshold", "1",
	"--string-array-rotate", "true",
	"--string-array-shuffle", "true",
	"--string-array-calls-transform", "true",
	"--string-array-calls-transform-threshold", "1",
	"--string-array-index-shift", "true",
	"--string-array-wrappers-count", "5",
	"--string-array-wrappers-chained-calls", "true",
	"--string-array-wrappers-parameters-max-count", "5",
	"--string-array-wrappers-type", "function",
	"--transform-object-keys", "true",
	"--unicode-escape-sequence", "true",
	"--source-map", "false",
}

// Command runs an external obfuscator that reads an input file and writes
// an output file. Args may reference the files through {in} and {out}.
type Command struct {
	Path string
	Args []string
}

func NewCommand(path string) *Command {
	if path == "" {
		path = DefaultCommand
	}
	return &Command{Path: path, Args: maximalArgs}
}

func (c *Command) Obfuscate(ctx context.Context, name, source string) (string, error) {
	dir, err := os.MkdirTemp("", "shipguard-*")
	if err != nil {
		return "", fmt.Errorf("temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "in.js")
	out := filepath.Join(dir, "out.js")
	if err := os.WriteFile(in, []byte(source), 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", in, err)
	}

	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		a = strings.ReplaceAll(a, inPlaceholder, in)
		args[i] = strings.ReplaceAll(a, outPlaceholder, out)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %w: %s", c.Path, name, err, strings.TrimSpace(stderr.String()))
	}

	result, err := os.ReadFile(out)
	if err != nil {
		return "", fmt.Errorf("read obfuscator output for %s: %w", name, err)
	}
	return string(result), nil
}
