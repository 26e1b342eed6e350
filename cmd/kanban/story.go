// Story commands: create, list, show, update, archive, delete.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// storyFlags holds the optional story fields shared by create and
// update. Only flags the caller changed end up in the field patch.
type storyFlags struct {
	code        string
	title       string
	description string
	color       string
	status      string
	tags        []string
}

func (f *storyFlags) register(cmd *cobra.Command, withIdentity bool) {
	if withIdentity {
		cmd.Flags().StringVar(&f.code, "code", "", "story code (sequential task ID namespace)")
		cmd.Flags().StringVar(&f.title, "title", "", "story title")
	}
	cmd.Flags().StringVar(&f.description, "description", "", "story description")
	cmd.Flags().StringVar(&f.color, "color", "", "display color, e.g. #007ACC")
	cmd.Flags().StringVar(&f.status, "status", "", "status (Planned, Active, Blocked, Done, or free text)")
	cmd.Flags().StringSliceVar(&f.tags, "tags", nil, "tags")
}

func (f *storyFlags) patch(cmd *cobra.Command) map[string]any {
	patch := map[string]any{}
	patchString(patch, cmd.Flags().Changed("code"), "code", f.code)
	patchString(patch, cmd.Flags().Changed("title"), "title", f.title)
	patchString(patch, cmd.Flags().Changed("description"), "description", f.description)
	patchString(patch, cmd.Flags().Changed("color"), "color", f.color)
	patchString(patch, cmd.Flags().Changed("status"), "status", f.status)
	patchStrings(patch, cmd.Flags().Changed("tags"), "tags", f.tags)
	return patch
}

func newStoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "story",
		Short: "Manage stories",
	}
	cmd.AddCommand(newStoryCreateCmd())
	cmd.AddCommand(newStoryListCmd())
	cmd.AddCommand(newStoryShowCmd())
	cmd.AddCommand(newStoryUpdateCmd())
	cmd.AddCommand(newStoryArchiveCmd())
	cmd.AddCommand(newStoryUnarchiveCmd())
	cmd.AddCommand(newStoryDeleteCmd())
	return cmd
}

func newStoryCreateCmd() *cobra.Command {
	var flags storyFlags
	cmd := &cobra.Command{
		Use:   "create <code> <title>",
		Short: "Create a new story",
		Long: `Create a story under a code. Tasks created for the story are numbered
sequentially per code (CODE-001, CODE-002, ...).

Example:
  kanban story create PROJ "Checkout revamp" --status Active --tags payments,web`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			st, err := s.CreateStory(args[0], args[1], flags.patch(cmd))
			if err != nil {
				return fmt.Errorf("create story: %w", err)
			}
			return printResult(st, func() {
				fmt.Printf("Created story %s %q (%s)\n", st.Code, st.Title, st.ID)
			})
		},
	}
	flags.register(cmd, false)
	return cmd
}

func newStoryListCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stories",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			stories := s.Stories(all)
			return printResult(stories, func() {
				for _, st := range stories {
					marker := ""
					if st.Archived {
						marker = " [archived]"
					}
					fmt.Printf("%s  %-8s %-8s %s%s\n", st.ID, st.Code, st.Status, st.Title, marker)
				}
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include archived stories")
	return cmd
}

func newStoryShowCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "show <story-id-or-code>",
		Short: "Show a story and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			st, err := s.Story(args[0])
			if err != nil {
				// Fall back to code lookup for convenience.
				st, err = s.StoryByCode(args[0])
				if err != nil {
					return err
				}
			}
			tasks := s.TasksForStory(st.ID, all)
			out := struct {
				Story any `json:"story"`
				Tasks any `json:"tasks"`
			}{st, tasks}
			return printResult(out, func() {
				fmt.Printf("%s  %s  %s\n", st.Code, st.Title, st.Status)
				if st.Description != "" {
					fmt.Println(st.Description)
				}
				if len(st.Tags) > 0 {
					fmt.Printf("Tags: %s\n", strings.Join(st.Tags, ", "))
				}
				for _, t := range tasks {
					fmt.Printf("  %s  %s\n", t.ID, t.Title)
				}
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include archived tasks")
	return cmd
}

func newStoryUpdateCmd() *cobra.Command {
	var flags storyFlags
	cmd := &cobra.Command{
		Use:   "update <story-id>",
		Short: "Update story fields",
		Long: `Update applies the changed flags as a field patch. Changing --code
starts a fresh sequence for the new code; the old code's counter is
kept so task IDs are never reissued.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.UpdateStory(args[0], flags.patch(cmd)); err != nil {
				return fmt.Errorf("update story: %w", err)
			}
			fmt.Printf("Updated story %s\n", args[0])
			return nil
		},
	}
	flags.register(cmd, true)
	return cmd
}

func newStoryArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <story-id>",
		Short: "Archive a story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.ArchiveStory(args[0], true); err != nil {
				return fmt.Errorf("archive story: %w", err)
			}
			fmt.Printf("Archived story %s\n", args[0])
			return nil
		},
	}
}

func newStoryUnarchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive <story-id>",
		Short: "Unarchive a story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.ArchiveStory(args[0], false); err != nil {
				return fmt.Errorf("unarchive story: %w", err)
			}
			fmt.Printf("Unarchived story %s\n", args[0])
			return nil
		},
	}
}

func newStoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <story-id>",
		Short: "Delete a story and every task under it (comments included)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.DeleteStory(args[0]); err != nil {
				return fmt.Errorf("delete story: %w", err)
			}
			fmt.Printf("Deleted story %s\n", args[0])
			return nil
		},
	}
}
