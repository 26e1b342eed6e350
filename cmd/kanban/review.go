// Review commands: generate a weekly summary, list and show past
// reviews, list available summarizers.
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kanban/internal/summary"
)

func newReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Generate and browse weekly reviews",
	}
	cmd.AddCommand(newReviewGenerateCmd())
	cmd.AddCommand(newReviewListCmd())
	cmd.AddCommand(newReviewShowCmd())
	cmd.AddCommand(newReviewSummarizersCmd())
	return cmd
}

func newReviewGenerateCmd() *cobra.Command {
	var start, end, summarizerName string
	cmd := &cobra.Command{
		Use:   "generate <board-id>",
		Short: "Generate a weekly review for a board",
		Long: `Generate builds the time-windowed projection for the board, runs the
selected summarizer over it, prints the summary, and persists it as a
weekly review with the supporting evidence.

Example:
  kanban review generate board_1a --start 2026-08-17 --end 2026-08-23`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summarizer, ok := summary.Lookup(summarizerName)
			if !ok {
				return fmt.Errorf("unknown summarizer %q", summarizerName)
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			window, err := s.SummaryWindow(args[0], start, end)
			if err != nil {
				return fmt.Errorf("assemble summary window: %w", err)
			}
			slog.Debug("summary window assembled",
				"tasks", len(window.Tasks),
				"comments", len(window.Comments),
				"history", len(window.History))

			markdown := summarizer.Summarize(window)
			review, err := s.CreateWeeklyReview(
				[]string{args[0]},
				summary.StoryIDs(window),
				start, end,
				markdown,
				summary.Evidence(window),
			)
			if err != nil {
				return fmt.Errorf("persist review: %w", err)
			}
			return printResult(review, func() {
				fmt.Println(markdown)
				fmt.Printf("\nSaved review %s\n", review.ID)
			})
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "start date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&end, "end", "", "end date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&summarizerName, "summarizer", "markdown", "summarizer to use")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newReviewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			reviews := s.Reviews()
			return printResult(reviews, func() {
				for _, r := range reviews {
					fmt.Printf("%s  %s .. %s  (%d evidence records)\n", r.ID, r.StartDate, r.EndDate, len(r.Evidence))
				}
			})
		},
	}
}

func newReviewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <review-id>",
		Short: "Print a saved review's summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			r, err := s.Review(args[0])
			if err != nil {
				return err
			}
			return printResult(r, func() {
				fmt.Println(r.SummaryMarkdown)
			})
		},
	}
}

func newReviewSummarizersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarizers",
		Short: "List available summarizers",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range summary.All() {
				fmt.Printf("%-12s %s\n", s.Name(), s.Describe())
			}
			return nil
		},
	}
}
