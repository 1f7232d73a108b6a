// Package transform implements the post-build asset pass: in a single
// directory it deletes every source map and replaces every JavaScript file
// with its obfuscated form.
//
// The pass is sequential and non-recursive. The first failure aborts it and
// leaves the directory partially processed; a fresh build regenerates it.
// Running the pass twice obfuscates already obfuscated files again.
package transform

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/shipguard/internal/common"
	"github.com/dmitrijs2005/shipguard/internal/logging"
	"github.com/dmitrijs2005/shipguard/internal/obfuscate"
)

// Action is what the pass does with one directory entry.
type Action int

const (
	ActionSkip Action = iota
	ActionDeleteMap
	ActionObfuscate
)

func (a Action) String() string {
	switch a {
	case ActionDeleteMap:
		return "delete-map"
	case ActionObfuscate:
		return "obfuscate"
	default:
		return "skip"
	}
}

// Classify maps a file name to its action. ".map" is checked first, so
// "main.js.map" is deleted, not obfuscated.
func Classify(name string) Action {
	switch {
	case strings.HasSuffix(name, ".map"):
		return ActionDeleteMap
	case strings.HasSuffix(name, ".js"):
		return ActionObfuscate
	default:
		return ActionSkip
	}
}

// Report counts what a pass did.
type Report struct {
	Deleted    []string
	Obfuscated []string
	Skipped    int
}

type Transformer struct {
	obf    obfuscate.Obfuscator
	out    io.Writer
	logger logging.Logger
}

// NewTransformer returns a Transformer that writes one plain-text line per
// processed file to out.
func NewTransformer(obf obfuscate.Obfuscator, out io.Writer, logger logging.Logger) *Transformer {
	return &Transformer{obf: obf, out: out, logger: logger}
}

// Run processes every direct entry of dir once, in listing order.
func (t *Transformer) Run(ctx context.Context, dir string) (*Report, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("list %s: %w", dir, common.ErrorNotADirectory)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	report := &Report{}
	for _, e := range entries {
		name := e.Name()

		// subdirectories are never entered nor matched
		if e.IsDir() {
			report.Skipped++
			continue
		}

		path := filepath.Join(dir, name)

		switch Classify(name) {
		case ActionDeleteMap:
			if err := os.Remove(path); err != nil {
				return report, fmt.Errorf("delete %s: %w", path, err)
			}
			report.Deleted = append(report.Deleted, name)
			fmt.Fprintf(t.out, "Deleted MAP: %s\n", name)

		case ActionObfuscate:
			if err := t.obfuscateFile(ctx, path, name); err != nil {
				return report, err
			}
			report.Obfuscated = append(report.Obfuscated, name)
			fmt.Fprintf(t.out, "Obfuscated: %s\n", name)

		default:
			report.Skipped++
		}
	}

	t.logger.Info(ctx, "asset pass finished",
		"dir", dir,
		"deleted", len(report.Deleted),
		"obfuscated", len(report.Obfuscated),
		"skipped", report.Skipped)

	return report, nil
}

func (t *Transformer) obfuscateFile(ctx context.Context, path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	obfuscated, err := t.obf.Obfuscate(ctx, name, string(src))
	if err != nil {
		return fmt.Errorf("obfuscate %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(obfuscated), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	t.logger.Debug(ctx, "file obfuscated", "file", name, "before", len(src), "after", len(obfuscated))
	return nil
}
