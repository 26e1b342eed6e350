// Export and import commands for the snapshot document.
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <dest-file>",
		Short: "Export the full snapshot to a file",
		Long: `Export forces a persist and copies the backing snapshot's bytes to
the destination, so the export is always consistent and up to date.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.ExportTo(args[0]); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			slog.Info("exported snapshot", "dest", args[0])
			fmt.Printf("Exported snapshot to %s\n", args[0])
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	var merge bool
	cmd := &cobra.Command{
		Use:   "import <source-file>",
		Short: "Import a snapshot, replacing or merging the current data",
		Long: `Import reads an exported snapshot. Without --merge the current data
is replaced. With --merge entities whose IDs already exist locally are
skipped and story sequence counters take the per-code maximum. The
schema version must match exactly; on mismatch nothing changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.ImportFrom(args[0], merge); err != nil {
				return fmt.Errorf("import: %w", err)
			}
			slog.Info("imported snapshot", "source", args[0], "merge", merge)
			fmt.Printf("Imported snapshot from %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&merge, "merge", false, "merge into existing data instead of replacing it")
	return cmd
}
