// Task commands: create, list, show, update, move, rehome, archive,
// delete.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// taskFlags holds the optional task fields shared by create and update.
type taskFlags struct {
	title       string
	description string
	priority    string
	estimate    string
	dueDate     string
	color       string
	tags        []string
}

func (f *taskFlags) register(cmd *cobra.Command, withTitle bool) {
	if withTitle {
		cmd.Flags().StringVar(&f.title, "title", "", "task title")
	}
	cmd.Flags().StringVar(&f.description, "description", "", "task description")
	cmd.Flags().StringVar(&f.priority, "priority", "", "priority (free text)")
	cmd.Flags().StringVar(&f.estimate, "estimate", "", "estimate (free text)")
	cmd.Flags().StringVar(&f.dueDate, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.color, "color", "", "override color")
	cmd.Flags().StringSliceVar(&f.tags, "tags", nil, "tags")
}

func (f *taskFlags) patch(cmd *cobra.Command) map[string]any {
	patch := map[string]any{}
	patchString(patch, cmd.Flags().Changed("title"), "title", f.title)
	patchString(patch, cmd.Flags().Changed("description"), "description", f.description)
	patchString(patch, cmd.Flags().Changed("priority"), "priority", f.priority)
	patchString(patch, cmd.Flags().Changed("estimate"), "estimate", f.estimate)
	patchString(patch, cmd.Flags().Changed("due"), "due_date", f.dueDate)
	patchString(patch, cmd.Flags().Changed("color"), "color", f.color)
	patchStrings(patch, cmd.Flags().Changed("tags"), "tags", f.tags)
	return patch
}

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(newTaskCreateCmd())
	cmd.AddCommand(newTaskListCmd())
	cmd.AddCommand(newTaskShowCmd())
	cmd.AddCommand(newTaskUpdateCmd())
	cmd.AddCommand(newTaskMoveCmd())
	cmd.AddCommand(newTaskRehomeCmd())
	cmd.AddCommand(newTaskArchiveCmd())
	cmd.AddCommand(newTaskUnarchiveCmd())
	cmd.AddCommand(newTaskDeleteCmd())
	return cmd
}

func newTaskCreateCmd() *cobra.Command {
	var flags taskFlags
	cmd := &cobra.Command{
		Use:   "create <board-id> <column-id> <story-id> <title>",
		Short: "Create a new task",
		Long: `Create a task on a board, in a column, under a story. The task gets
the next sequential ID for the story's code.

Example:
  kanban task create board_1a col_2b story_3c "Wire up login" --priority high`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			t, err := s.CreateTask(args[0], args[1], args[2], args[3], flags.patch(cmd))
			if err != nil {
				return fmt.Errorf("create task: %w", err)
			}
			return printResult(t, func() {
				fmt.Printf("Created task %s %q\n", t.ID, t.Title)
			})
		},
	}
	flags.register(cmd, false)
	return cmd
}

func newTaskListCmd() *cobra.Command {
	var boardID, storyID string
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks on a board or under a story",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (boardID == "") == (storyID == "") {
				return fmt.Errorf("exactly one of --board or --story is required")
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			tasks := s.TasksForBoard(boardID, all)
			if storyID != "" {
				tasks = s.TasksForStory(storyID, all)
			}
			return printResult(tasks, func() {
				for _, t := range tasks {
					marker := ""
					if t.Archived {
						marker = " [archived]"
					}
					fmt.Printf("%-12s %-10s %s%s\n", t.ID, t.ColumnID, t.Title, marker)
				}
			})
		},
	}
	cmd.Flags().StringVar(&boardID, "board", "", "board ID")
	cmd.Flags().StringVar(&storyID, "story", "", "story ID")
	cmd.Flags().BoolVar(&all, "all", false, "include archived tasks")
	return cmd
}

func newTaskShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show a task with its history and comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			t, err := s.Task(args[0])
			if err != nil {
				return err
			}
			comments := s.CommentsForTask(t.ID)
			out := struct {
				Task     any `json:"task"`
				Comments any `json:"comments"`
			}{t, comments}
			return printResult(out, func() {
				fmt.Printf("%s  %s\n", t.ID, t.Title)
				if t.Description != "" {
					fmt.Println(t.Description)
				}
				fmt.Printf("Board %s, column %s, story %s\n", t.BoardID, t.ColumnID, t.StoryID)
				if t.Priority != "" {
					fmt.Printf("Priority: %s\n", t.Priority)
				}
				if t.Estimate != "" {
					fmt.Printf("Estimate: %s\n", t.Estimate)
				}
				if t.DueDate != nil {
					fmt.Printf("Due: %s\n", *t.DueDate)
				}
				if len(t.Tags) > 0 {
					fmt.Printf("Tags: %s\n", strings.Join(t.Tags, ", "))
				}
				fmt.Println("History:")
				for _, h := range t.History {
					fmt.Printf("  %s  %s %v\n", h.Timestamp, h.EventType, h.Payload)
				}
				if len(comments) > 0 {
					fmt.Println("Comments:")
					for _, c := range comments {
						fmt.Printf("  [%s] %s: %s\n", c.Timestamp, c.Author, c.Body)
					}
				}
			})
		},
	}
}

func newTaskUpdateCmd() *cobra.Command {
	var flags taskFlags
	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update task fields",
		Long: `Update applies the changed flags as a field patch. Updating never
records history; use move, rehome, and archive for tracked transitions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.UpdateTask(args[0], flags.patch(cmd)); err != nil {
				return fmt.Errorf("update task: %w", err)
			}
			fmt.Printf("Updated task %s\n", args[0])
			return nil
		},
	}
	flags.register(cmd, true)
	return cmd
}

func newTaskMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <task-id> <column-id>",
		Short: "Move a task to another column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.MoveTask(args[0], args[1]); err != nil {
				return fmt.Errorf("move task: %w", err)
			}
			fmt.Printf("Moved task %s to column %s\n", args[0], args[1])
			return nil
		},
	}
}

func newTaskRehomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rehome <task-id> <story-id>",
		Short: "Move a task to a different story",
		Long: `Rehome mints a new sequential ID under the target story's code and
carries the full history over. The old ID stops resolving; the printed
ID is the task's new identity.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			t, err := s.RehomeTask(args[0], args[1])
			if err != nil {
				return fmt.Errorf("rehome task: %w", err)
			}
			return printResult(t, func() {
				fmt.Printf("Rehomed task %s -> %s\n", args[0], t.ID)
			})
		},
	}
}

func newTaskArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <task-id>",
		Short: "Archive a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.ArchiveTask(args[0], true); err != nil {
				return fmt.Errorf("archive task: %w", err)
			}
			fmt.Printf("Archived task %s\n", args[0])
			return nil
		},
	}
}

func newTaskUnarchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive <task-id>",
		Short: "Unarchive a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.ArchiveTask(args[0], false); err != nil {
				return fmt.Errorf("unarchive task: %w", err)
			}
			fmt.Printf("Unarchived task %s\n", args[0])
			return nil
		},
	}
}

func newTaskDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task and its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.DeleteTask(args[0]); err != nil {
				return fmt.Errorf("delete task: %w", err)
			}
			fmt.Printf("Deleted task %s\n", args[0])
			return nil
		},
	}
}
