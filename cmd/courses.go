package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jfuginay/courseforge-ai/internal/course"
	"github.com/jfuginay/courseforge-ai/internal/store"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Inspect stored courses",
}

var coursesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		courses, err := st.ListCourses(context.Background())
		if err != nil {
			return fmt.Errorf("list courses: %w", err)
		}
		if len(courses) == 0 {
			fmt.Println("No courses stored yet.")
			return nil
		}

		fmt.Printf("%-36s  %-40s  %-9s  %s\n", "ID", "Title", "Duration", "Created")
		fmt.Println(strings.Repeat("─", 100))
		for _, c := range courses {
			title := c.Title
			if len(title) > 40 {
				title = title[:40]
			}
			fmt.Printf("%-36s  %-40s  %-9s  %s\n",
				c.ID, title, course.FormatDuration(c.Duration),
				c.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var coursesViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show a stored course and its questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		ctx := context.Background()
		c, err := st.GetCourse(ctx, args[0])
		if err != nil {
			if err == store.ErrNotFound {
				return fmt.Errorf("course %s not found", args[0])
			}
			return fmt.Errorf("get course: %w", err)
		}
		questions, err := st.GetQuestions(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("get questions: %w", err)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("ID:        %s\n", c.ID)
		fmt.Printf("Title:     %s\n", c.Title)
		fmt.Printf("Video:     %s\n", c.YouTubeURL)
		fmt.Printf("Duration:  %s\n", course.FormatDuration(c.Duration))
		fmt.Printf("Topics:    %s\n", strings.Join(c.Metadata.Topics, ", "))
		fmt.Printf("Created:   %s\n", c.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Println()
		fmt.Println(c.Description)

		fmt.Println()
		fmt.Println(sep)
		fmt.Printf("QUESTIONS (%d)\n", len(questions))
		fmt.Println(sep)
		for _, q := range questions {
			fmt.Printf("[%s] %s\n", course.FormatTimestamp(q.Timestamp), q.Prompt)
			for i, opt := range q.Options {
				marker := " "
				if i == q.CorrectAnswer {
					marker = "*"
				}
				fmt.Printf("  %s %d. %s\n", marker, i+1, opt)
			}
			if q.Explanation != "" {
				fmt.Printf("  → %s\n", q.Explanation)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	coursesCmd.AddCommand(coursesListCmd)
	coursesCmd.AddCommand(coursesViewCmd)
}
