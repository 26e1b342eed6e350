// Shared helpers for kanban CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/kanban/internal/paths"
	"github.com/mesh-intelligence/kanban/internal/store"
)

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > KANBAN_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > KANBAN_DATA_DIR env >
// $(CWD)/.kanban-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// openStore resolves the data directory and opens the snapshot store,
// bootstrapping an empty snapshot on first use.
func openStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	s, err := store.Open(paths.SnapshotPath(dataDir))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	slog.Debug("store opened", "path", s.Path())
	return s, nil
}

// printResult renders v as indented JSON when --json is set, otherwise
// runs the plain-text printer.
func printResult(v any, text func()) error {
	if !flagJSON {
		text()
		return nil
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// patchString records a flag value in a field patch when the flag was
// actually set, so update commands only touch what the caller named.
func patchString(patch map[string]any, changed bool, key, value string) {
	if changed {
		patch[key] = value
	}
}

func patchStrings(patch map[string]any, changed bool, key string, value []string) {
	if changed {
		patch[key] = value
	}
}
