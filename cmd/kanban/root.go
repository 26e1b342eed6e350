package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// version is the CLI version reported by the version command.
const version = "v0.1.0"

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// Values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir string
	configAuthor  string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kanban",
		Short: "Kanban is a single-user project tracker",
		Long: `Kanban tracks work as boards of ordered columns, stories with
code-based sequential task numbering, tasks with immutable history,
and per-task comment threads, persisted to a single JSON snapshot.`,
		Version: version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()

			configDir, err := resolveConfigDir()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(configDir)
			if err != nil {
				return err
			}
			configDataDir = cfg.GetString(cfgKeyDataDir)
			configAuthor = cfg.GetString(cfgKeyAuthor)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.kanban-db)")
	root.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newBoardCmd())
	root.AddCommand(newStoryCmd())
	root.AddCommand(newTaskCmd())
	root.AddCommand(newCommentCmd())
	root.AddCommand(newReviewCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newImportCmd())

	return root
}

// setupLogging installs the process logger: text records on stderr,
// warnings by default, debug with --verbose. Command results go to
// stdout; the log never does.
func setupLogging() {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
