package cmd

import (
	"context"
	"fmt"

	"github.com/ai-builder/ai-builder/internal/ui"
	"github.com/ai-builder/ai-builder/internal/workflows"

	"github.com/spf13/cobra"
)

var importFormat string

func init() {
	configImportCmd.Flags().StringVar(&importFormat, "format", "", "input format: json, toml, or yaml (default: from file extension)")
	ConfigCmd.AddCommand(configImportCmd)
}

// resetImportState resets the import command's global state for testing.
func resetImportState() {
	importFormat = ""
}

var configImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import configuration from a file",
	Long: `Reads a flat key-to-value mapping from a file and stores every value
in the chosen scope. Whether a value is encrypted is decided from its key
name, the same as for 'config set'. Placeholder values left by a previous
export are skipped.

Examples:
  # Import settings into the global scope
  ai-builder config import settings.json

  # Import a TOML file into the project scope
  ai-builder config import backup.toml --project`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config import command")

		store, err := newStore()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to initialize configuration store: %v", err)
		}

		opts := workflows.ImportOptions{
			Scope:     currentScope(),
			InputPath: args[0],
		}
		if importFormat != "" {
			format, err := workflows.ParseFormat(importFormat)
			if err != nil {
				return ConfigLogger.ErrorfAndReturn("%v", err)
			}
			opts.Format = format
		}

		spinner, cleanup := startSpinner("Importing configuration...", configVerbose)
		defer cleanup()

		result, err := workflows.Import(context.Background(), store, opts)
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Import failed: " + err.Error()
			return err
		}

		note := ""
		if result.KeysSkipped > 0 {
			note = "\n" + ui.Warning.Sprint("!") + fmt.Sprintf(" Skipped %d placeholder value(s)", result.KeysSkipped)
		}
		spinner.FinalMSG = ui.Success.Sprint("✓") +
			fmt.Sprintf(" Imported %d of %d key(s) from %s", result.KeysApplied, result.TotalKeys, ui.Path.Sprint(args[0])) + note
		return nil
	},
}
