// Comment commands: add, list, edit, delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Manage task comments",
	}
	cmd.AddCommand(newCommentAddCmd())
	cmd.AddCommand(newCommentListCmd())
	cmd.AddCommand(newCommentEditCmd())
	cmd.AddCommand(newCommentDeleteCmd())
	return cmd
}

func newCommentAddCmd() *cobra.Command {
	var author string
	cmd := &cobra.Command{
		Use:   "add <task-id> <body>",
		Short: "Add a comment to a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if author == "" {
				author = configAuthor
			}
			c, err := s.AddComment(args[0], author, args[1])
			if err != nil {
				return fmt.Errorf("add comment: %w", err)
			}
			return printResult(c, func() {
				fmt.Printf("Added comment %s\n", c.ID)
			})
		},
	}
	cmd.Flags().StringVar(&author, "author", "", "comment author (default: config.yaml author)")
	return cmd
}

func newCommentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <task-id>",
		Short: "List a task's comments, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			comments := s.CommentsForTask(args[0])
			return printResult(comments, func() {
				for _, c := range comments {
					edited := ""
					if len(c.EditedHistory) > 0 {
						edited = " (edited)"
					}
					fmt.Printf("%s  [%s] %s: %s%s\n", c.ID, c.Timestamp, c.Author, c.Body, edited)
				}
			})
		},
	}
}

func newCommentEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <comment-id> <body>",
		Short: "Edit a comment, keeping the prior body in its edit log",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.EditComment(args[0], args[1]); err != nil {
				return fmt.Errorf("edit comment: %w", err)
			}
			fmt.Printf("Edited comment %s\n", args[0])
			return nil
		},
	}
}

func newCommentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <comment-id>",
		Short: "Delete a comment outright",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.DeleteComment(args[0]); err != nil {
				return fmt.Errorf("delete comment: %w", err)
			}
			fmt.Printf("Deleted comment %s\n", args[0])
			return nil
		},
	}
}
