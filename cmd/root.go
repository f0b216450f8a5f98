package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jfuginay/courseforge-ai/internal/logger"
	"github.com/jfuginay/courseforge-ai/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "courseforge",
	Short: "Turn YouTube videos into interactive courses",
	Long:  "CourseForge — generates structured courses with timed quiz questions from YouTube videos, and serves them over HTTP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COURSEFORGE_DB env var)")
	rootCmd.PersistentFlags().String("store", "sqlite", "Storage backend: sqlite or memory")
	rootCmd.PersistentFlags().String("log", "production", "Log mode: production or development")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then COURSEFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore builds the storage backend selected by flags. The returned
// closer is a no-op for the in-memory backend.
func openStore(cmd *cobra.Command) (store.Store, io.Closer, error) {
	backend, _ := cmd.Flags().GetString("store")
	switch backend {
	case "memory":
		return store.NewMemoryStore(), nopCloser{}, nil
	case "sqlite":
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.OpenSQLite(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return st, st, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	mode, _ := cmd.Flags().GetString("log")
	return logger.New(mode)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
