package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ai-builder/ai-builder/internal/audit"
	"github.com/ai-builder/ai-builder/internal/ui"

	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logOperation string
	logJSON      bool
)

func init() {
	configLogCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	configLogCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	configLogCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation type (comma-separated)")
	configLogCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
	ConfigCmd.AddCommand(configLogCmd)
}

// resetLogState resets the log command's global state for testing.
func resetLogState() {
	logLimit = 0
	logReverse = false
	logOperation = ""
	logJSON = false
}

var configLogCmd = &cobra.Command{
	Use:   "log",
	Short: "View the configuration audit log",
	Long: `Displays the audit log of configuration operations.

Every mutating operation (set, delete, import, export, init, reset) is
recorded with its scope and key. Values are never recorded.

Examples:
  ai-builder config log                   # View full log
  ai-builder config log -n 10             # Last 10 entries
  ai-builder config log --reverse         # Most recent first
  ai-builder config log --operation set   # Filter by operation
  ai-builder config log --json            # JSON output`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config log command")

		store, err := newStore()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to initialize configuration store: %v", err)
		}

		entries, err := audit.ReadEntries(store.ConfigRoot())
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to read audit log: %v", err)
		}
		ConfigLogger.Debugf("Parsed %d entries from audit log", len(entries))

		entries = filterLogEntries(entries)

		if logReverse {
			for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
				entries[i], entries[j] = entries[j], entries[i]
			}
		}
		if logLimit > 0 && len(entries) > logLimit {
			entries = entries[:logLimit]
		}

		if len(entries) == 0 {
			fmt.Println("No audit log entries found.")
			return nil
		}

		if logJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(entries)
		}

		for _, entry := range entries {
			printLogEntry(entry)
		}
		return nil
	},
}

// filterLogEntries applies the --operation filter.
func filterLogEntries(entries []audit.Entry) []audit.Entry {
	if logOperation == "" {
		return entries
	}

	wanted := make(map[string]bool)
	for _, op := range strings.Split(logOperation, ",") {
		wanted[strings.TrimSpace(op)] = true
	}

	filtered := entries[:0]
	for _, entry := range entries {
		if wanted[entry.Operation] {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// printLogEntry prints a single audit entry in a compact one-line format.
func printLogEntry(entry audit.Entry) {
	parts := []string{ui.Muted.Sprint(entry.Timestamp), ui.Highlight.Sprint(entry.Operation)}
	if entry.Scope != "" {
		parts = append(parts, entry.Scope)
	}
	if entry.Key != "" {
		parts = append(parts, ui.Code.Sprint(entry.Key))
	}
	if entry.Encrypted {
		parts = append(parts, ui.Muted.Sprint("encrypted"))
	}
	if entry.Operation == "import" {
		parts = append(parts, fmt.Sprintf("applied=%d skipped=%d", entry.KeysApplied, entry.KeysSkipped))
	}
	if entry.Operation == "init" {
		parts = append(parts, fmt.Sprintf("seeded=%d", entry.KeysSeeded))
	}
	if entry.OutputPath != "" {
		parts = append(parts, ui.Path.Sprint(entry.OutputPath))
	}
	fmt.Println(strings.Join(parts, " "))
}
