// Board commands: create, list, rename, archive, delete, and column
// management.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards",
	}
	cmd.AddCommand(newBoardCreateCmd())
	cmd.AddCommand(newBoardListCmd())
	cmd.AddCommand(newBoardRenameCmd())
	cmd.AddCommand(newBoardArchiveCmd())
	cmd.AddCommand(newBoardUnarchiveCmd())
	cmd.AddCommand(newBoardDeleteCmd())
	cmd.AddCommand(newColumnCmd())
	return cmd
}

func newBoardCreateCmd() *cobra.Command {
	var columns []string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new board",
		Long: `Create a board with the given name.

Example:
  kanban board create "Team Alpha"
  kanban board create "Ops" --columns "Inbox,Doing,Done"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			var names []string
			if cmd.Flags().Changed("columns") {
				names = columns
			}
			b, err := s.CreateBoard(args[0], names)
			if err != nil {
				return fmt.Errorf("create board: %w", err)
			}
			return printResult(b, func() {
				fmt.Printf("Created board %s (%s)\n", b.Name, b.ID)
			})
		},
	}
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "column names (default: Backlog, In Progress, Done)")
	return cmd
}

func newBoardListCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List boards",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			boards := s.Boards(all)
			return printResult(boards, func() {
				for _, b := range boards {
					names := make([]string, 0, len(b.Columns))
					for _, c := range b.Columns {
						names = append(names, c.Name)
					}
					marker := ""
					if b.Archived {
						marker = " [archived]"
					}
					fmt.Printf("%s  %s%s  (%s)\n", b.ID, b.Name, marker, strings.Join(names, " | "))
				}
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include archived boards")
	return cmd
}

func newBoardRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <board-id> <new-name>",
		Short: "Rename a board",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.RenameBoard(args[0], args[1]); err != nil {
				return fmt.Errorf("rename board: %w", err)
			}
			fmt.Printf("Renamed board %s\n", args[0])
			return nil
		},
	}
}

func newBoardArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <board-id>",
		Short: "Archive a board (soft; excluded from active listings)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.ArchiveBoard(args[0], true); err != nil {
				return fmt.Errorf("archive board: %w", err)
			}
			fmt.Printf("Archived board %s\n", args[0])
			return nil
		},
	}
}

func newBoardUnarchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive <board-id>",
		Short: "Unarchive a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.ArchiveBoard(args[0], false); err != nil {
				return fmt.Errorf("unarchive board: %w", err)
			}
			fmt.Printf("Unarchived board %s\n", args[0])
			return nil
		},
	}
}

func newBoardDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <board-id>",
		Short: "Delete a board and every task on it (comments included)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.DeleteBoard(args[0]); err != nil {
				return fmt.Errorf("delete board: %w", err)
			}
			fmt.Printf("Deleted board %s\n", args[0])
			return nil
		},
	}
}

func newColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage a board's columns",
	}
	cmd.AddCommand(newColumnAddCmd())
	cmd.AddCommand(newColumnRemoveCmd())
	cmd.AddCommand(newColumnReorderCmd())
	return cmd
}

func newColumnAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <board-id> <name>",
		Short: "Append a column to a board",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			column, err := s.AddColumn(args[0], args[1])
			if err != nil {
				return fmt.Errorf("add column: %w", err)
			}
			return printResult(column, func() {
				fmt.Printf("Added column %s (%s)\n", column.Name, column.ID)
			})
		},
	}
}

func newColumnRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <board-id> <column-id>",
		Short: "Remove a column, reassigning its tasks",
		Long: `Remove a column from a board. Tasks in the removed column move to
the board's first remaining column (or are left without a column if
none remain) and each receives a column-removed history entry.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.RemoveColumn(args[0], args[1]); err != nil {
				return fmt.Errorf("remove column: %w", err)
			}
			fmt.Printf("Removed column %s\n", args[1])
			return nil
		},
	}
}

func newColumnReorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <board-id> <column-id>...",
		Short: "Replace a board's column order",
		Long: `Reorder replaces the board's column sequence with the supplied IDs.
IDs that do not name an existing column are silently dropped; columns
left out of the list are removed.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.ReorderColumns(args[0], args[1:]); err != nil {
				return fmt.Errorf("reorder columns: %w", err)
			}
			b, err := s.Board(args[0])
			if err != nil {
				return err
			}
			return printResult(b.Columns, func() {
				names := make([]string, 0, len(b.Columns))
				for _, c := range b.Columns {
					names = append(names, c.Name)
				}
				fmt.Printf("Columns: %s\n", strings.Join(names, " | "))
			})
		},
	}
}
