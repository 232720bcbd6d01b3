// Package filex contains file-system helpers for the CLI's local state
// (session database, downloaded exports).
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureSubDir creates base/name (and any missing parents) and returns the
// absolute path. An empty base means the current working directory.
func EnsureSubDir(base, name string) (string, error) {
	if base == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		base = cwd
	}

	dir, err := filepath.Abs(filepath.Join(base, name))
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", name, err)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
