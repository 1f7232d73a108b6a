// Package filex holds small filesystem helpers shared by the commands.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureParentDir creates the directory that will hold file, relative paths
// being resolved against the working directory. It returns the absolute
// path of file.
func EnsureParentDir(file string) (string, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", file, err)
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return abs, nil
}

// IsFileDSN reports whether a sqlite DSN names a file on disk rather than an
// in-memory database.
func IsFileDSN(dsn string) bool {
	if dsn == "" || dsn == ":memory:" {
		return false
	}
	if strings.HasPrefix(dsn, "file:") {
		return !strings.Contains(dsn, "mode=memory") && !strings.HasPrefix(dsn, "file::memory:")
	}
	return true
}

// DSNPath strips the "file:" scheme and any query string from a sqlite DSN.
func DSNPath(dsn string) string {
	p := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	return p
}
