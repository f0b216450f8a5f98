package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jfuginay/courseforge-ai/internal/course"
	"github.com/jfuginay/courseforge-ai/internal/player"
	"github.com/jfuginay/courseforge-ai/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play <course-id>",
	Short: "Play a stored course in the terminal",
	Long:  "Play simulates watching the course video: playback advances at --speed simulated seconds per real second and pauses at each quiz question.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		speed, _ := cmd.Flags().GetInt("speed")
		auto, _ := cmd.Flags().GetBool("auto")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err = runPlay(ctx, st, args[0], playOptions{speed: speed, auto: auto}, os.Stdin, os.Stdout)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	playCmd.Flags().Int("speed", 30, "Simulated playback seconds per real second")
	playCmd.Flags().Bool("auto", false, "Answer every question correctly without prompting")
}

type playOptions struct {
	speed int
	auto  bool
}

// runPlay drives a stored course through the playback controller: a
// counter stands in for the video element's position, and each quiz
// pause prompts on the terminal until an answer is submitted.
func runPlay(ctx context.Context, st store.Store, courseID string, opts playOptions, in io.Reader, out io.Writer) error {
	c, err := st.GetCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("course %s not found", courseID)
		}
		return fmt.Errorf("get course: %w", err)
	}
	recs, err := st.GetQuestions(ctx, courseID)
	if err != nil {
		return fmt.Errorf("get questions: %w", err)
	}

	questions := make([]player.Question, len(recs))
	for i, q := range recs {
		questions[i] = player.Question{
			ID:          q.ID,
			Timestamp:   q.Timestamp,
			Prompt:      q.Prompt,
			Options:     q.Options,
			Correct:     q.CorrectAnswer,
			Explanation: q.Explanation,
		}
	}

	duration := c.Duration
	if duration == 0 && len(questions) > 0 {
		duration = questions[len(questions)-1].Timestamp + 30
	}

	cfg := player.DefaultConfig()
	if opts.speed > 0 {
		cfg.PollInterval = time.Second / time.Duration(opts.speed)
	}
	ctrl := player.NewController(questions, duration, cfg)
	answers := bufio.NewReader(in)

	fmt.Fprintf(out, "Playing %q (%s, %d questions)\n",
		c.Title, course.FormatDuration(duration), len(questions))

	// One simulated second per poll; the counter holds still while a
	// question is on screen.
	position := 0
	src := player.PositionFunc(func() int {
		if ctrl.State() == player.Playing {
			position++
		}
		return position
	})

	return ctrl.Run(ctx, src, player.Hooks{
		OnQuestion: func(q player.Question) {
			fmt.Fprintf(out, "\n[%s] %s\n", course.FormatTimestamp(q.Timestamp), q.Prompt)
			for i, opt := range q.Options {
				fmt.Fprintf(out, "  %d. %s\n", i+1, opt)
			}
			answer := q.Correct
			if !opts.auto {
				answer = readAnswer(answers, out, len(q.Options))
			}
			att, err := ctrl.Submit(answer)
			if err != nil {
				fmt.Fprintf(out, "answer not recorded: %v\n", err)
				return
			}
			if att.Correct {
				fmt.Fprintln(out, "Correct!")
			} else {
				fmt.Fprintf(out, "Not quite. %s\n", q.Explanation)
			}
		},
		OnComplete: func() {
			fmt.Fprintf(out, "\nCourse complete. Score: %d%%\n", ctrl.Score())
		},
	})
}

// readAnswer prompts until it gets a number in [1, n], returning the
// zero-based option index. EOF falls back to the first option so a
// truncated pipe still finishes the session.
func readAnswer(r *bufio.Reader, out io.Writer, n int) int {
	for {
		fmt.Fprintf(out, "Your answer (1-%d): ", n)
		line, err := r.ReadString('\n')
		if v, convErr := strconv.Atoi(strings.TrimSpace(line)); convErr == nil && v >= 1 && v <= n {
			return v - 1
		}
		if err != nil {
			return 0
		}
	}
}
