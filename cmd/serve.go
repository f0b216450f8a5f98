package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jfuginay/courseforge-ai/internal/coursegen"
	"github.com/jfuginay/courseforge-ai/internal/llm"
	"github.com/jfuginay/courseforge-ai/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	// The root command runs serve by default, so it takes the same flags.
	for _, c := range []*cobra.Command{serveCmd, rootCmd} {
		c.Flags().String("addr", defaultAddr(), "Listen address")
		c.Flags().Float64("generate-rps", 1, "Rate limit for generation endpoints (requests per second, 0 disables)")
	}
}

func runServe(cmd *cobra.Command) error {
	log, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	st, closer, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), log, st)
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	addr, _ := cmd.Flags().GetString("addr")
	rps, _ := cmd.Flags().GetFloat64("generate-rps")
	mode := "release"
	if m, _ := cmd.Flags().GetString("log"); m == "development" {
		mode = "debug"
	}

	srv := server.New(addr, mode, server.RouterConfig{
		Generator:     coursegen.New(provider, coursegen.DefaultConfig(), log),
		Store:         st,
		Log:           log,
		GenerateRPS:   rps,
		GenerateBurst: 3,
	})
	return srv.Run(ctx)
}

func defaultAddr() string {
	if p := os.Getenv("COURSEFORGE_PORT"); p != "" {
		return ":" + p
	}
	return ":8080"
}
