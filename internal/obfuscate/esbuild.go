package obfuscate

import (
	"context"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// TransformError carries every message esbuild reported for one file.
type TransformError struct {
	Name     string
	Messages []api.Message
}

func (e *TransformError) Error() string {
	parts := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		if m.Location != nil {
			parts = append(parts, fmt.Sprintf("%d:%d: %s", m.Location.Line, m.Location.Column, m.Text))
		} else {
			parts = append(parts, m.Text)
		}
	}
	return fmt.Sprintf("transform %s: %s", e.Name, strings.Join(parts, "; "))
}

// Esbuild obfuscates through esbuild's in-process transform API.
type Esbuild struct {
	opts api.TransformOptions
}

// MaximalOptions turns on every minification knob that keeps a plain
// script's external behavior: identifier and syntax mangling, whitespace
// removal, ASCII-only output, no comments, no debugger statements and no
// source map. Top-level names stay intact since the input is not a module.
func MaximalOptions() api.TransformOptions {
	return api.TransformOptions{
		Loader:            api.LoaderJS,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		Charset:           api.CharsetASCII,
		LegalComments:     api.LegalCommentsNone,
		Drop:              api.DropDebugger,
		Sourcemap:         api.SourceMapNone,
		LogLevel:          api.LogLevelSilent,
	}
}

func NewEsbuild(mangleProps string) *Esbuild {
	opts := MaximalOptions()
	opts.MangleProps = mangleProps
	return &Esbuild{opts: opts}
}

func (e *Esbuild) Obfuscate(ctx context.Context, name, source string) (string, error) {
	opts := e.opts
	opts.Sourcefile = name

	result := api.Transform(source, opts)
	if len(result.Errors) > 0 {
		return "", &TransformError{Name: name, Messages: result.Errors}
	}

	return string(result.Code), nil
}
