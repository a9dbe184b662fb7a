package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kiosk/internal/config"
	"github.com/vovakirdan/tui-kiosk/internal/core"
	"github.com/vovakirdan/tui-kiosk/internal/homedir"
)

var launchCmd = &cobra.Command{
	Use:   "launch <name>",
	Short: "Start an application by name",
	Long: `Starts a configured application the same way the grid does, without
showing the grid. The name is matched case-insensitively, then fuzzily.

Examples:
  kiosk launch Kodi
  kiosk launch stm          # matches "Steam"
  kiosk launch kodi --runner dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runLaunch,
}

func runLaunch(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	entries, err := config.LoadApps(cfg.AppsFile)
	if err != nil {
		return err
	}

	idx, err := resolveEntry(entries, args[0])
	if err != nil {
		return err
	}
	entry := entries[idx]

	command, err := homedir.Expand(entry.Command)
	if err != nil {
		return err
	}

	launcher, err := newRunner(cfg, logger)
	if err != nil {
		return err
	}
	if err := launcher.SpawnDetached(command); err != nil {
		return &core.SpawnError{Index: idx, Entry: entry, Err: err}
	}

	logger.Info("Launched", "index", idx, "name", entry.ID, "command", command)
	return nil
}

// resolveEntry finds the entry called name: an exact case-insensitive match
// wins, otherwise the best fuzzy match.
func resolveEntry(entries []core.AppEntry, name string) (int, error) {
	query := strings.TrimSpace(name)
	if query == "" {
		return 0, fmt.Errorf("empty application name")
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		if strings.EqualFold(e.ID, query) {
			return i, nil
		}
		names[i] = e.ID
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) == 0 {
		return 0, fmt.Errorf("no application matches %q; run 'kiosk list' to see them", name)
	}
	sort.Sort(ranks)
	return ranks[0].OriginalIndex, nil
}
