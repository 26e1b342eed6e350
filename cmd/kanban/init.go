package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the configuration and data directories",
		Long: `Init creates the configuration directory with a default config.yaml
and bootstraps an empty snapshot in the data directory. Running init on
an existing setup is harmless; nothing is overwritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := resolveConfigDir()
			if err != nil {
				return err
			}
			// PersistentPreRunE already ensured the config dir and file.
			s, err := openStore()
			if err != nil {
				return err
			}
			slog.Info("initialized", "config_dir", configDir, "snapshot", s.Path())
			fmt.Printf("Config directory: %s\n", configDir)
			fmt.Printf("Snapshot file:    %s\n", s.Path())
			return nil
		},
	}
}
