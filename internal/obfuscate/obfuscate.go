// Package obfuscate adapts source-transformation engines to the asset
// transformer. Every engine is configured with its strongest profile: the
// goal is output that is as hard to read back as possible, not small output.
package obfuscate

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/shipguard/internal/common"
)

const (
	EngineEsbuild = "esbuild"
	EngineCommand = "command"
)

// Obfuscator rewrites JavaScript source into an equivalent, unreadable form.
// name is the file name and is used only for diagnostics.
type Obfuscator interface {
	Obfuscate(ctx context.Context, name, source string) (string, error)
}

// Settings selects and configures an engine.
type Settings struct {
	Engine string
	// Command is the external obfuscator executable for EngineCommand.
	Command string
	// MangleProps is an optional property-name regexp for EngineEsbuild.
	MangleProps string
}

// New returns the engine named in s.
func New(s Settings) (Obfuscator, error) {
	switch strings.ToLower(strings.TrimSpace(s.Engine)) {
	case EngineEsbuild, "":
		return NewEsbuild(s.MangleProps), nil
	case EngineCommand:
		return NewCommand(s.Command), nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownEngine, s.Engine)
	}
}
