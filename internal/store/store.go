// Package store persists courses, flattened questions, and per-session
// viewing progress. Two backends implement the same repository
// interfaces: an in-memory map store and a SQLite store; callers depend
// only on the interfaces in repo.go.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store bundles the repositories a backend provides.
type Store interface {
	CourseRepo
	ProgressRepo
	EventRepo
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)

// DefaultDBPath resolves the database file path in priority order:
// 1. COURSEFORGE_DB environment variable
// 2. $XDG_DATA_HOME/courseforge/courseforge.db
// 3. ~/.local/share/courseforge/courseforge.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("COURSEFORGE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "courseforge", "courseforge.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
