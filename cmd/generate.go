package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jfuginay/courseforge-ai/internal/coursegen"
	"github.com/jfuginay/courseforge-ai/internal/llm"
)

var generateCmd = &cobra.Command{
	Use:   "generate <youtube-url>",
	Short: "Generate a course from a YouTube URL and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		ctx := cmd.Context()
		provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), log, nil)
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		gen := coursegen.New(provider, coursegen.DefaultConfig(), log)
		data, err := gen.Generate(ctx, args[0])
		if err != nil {
			return fmt.Errorf("generate course: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	},
}
