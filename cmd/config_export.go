package cmd

import (
	"context"
	"fmt"

	"github.com/ai-builder/ai-builder/internal/ui"
	"github.com/ai-builder/ai-builder/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	exportFormat           string
	exportIncludeEncrypted bool
)

func init() {
	configExportCmd.Flags().StringVar(&exportFormat, "format", "", "output format: json, toml, or yaml (default: from file extension)")
	configExportCmd.Flags().BoolVar(&exportIncludeEncrypted, "include-encrypted", false, "export ciphertext envelopes instead of placeholders")
	ConfigCmd.AddCommand(configExportCmd)
}

// resetExportState resets the export command's global state for testing.
func resetExportState() {
	exportFormat = ""
	exportIncludeEncrypted = false
}

var configExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export a scope's configuration to a file",
	Long: `Writes a scope's settings to a file as a flat key-to-value mapping.

Encrypted entries are replaced with a placeholder. With --include-encrypted
the stored ciphertext envelope is written instead; the export never contains
decrypted secrets either way.

If no file is given, ai-builder-config-YYYY-MM-DD.json is created.

Examples:
  # Export global configuration to JSON
  ai-builder config export settings.json

  # Export project configuration to TOML with ciphertext
  ai-builder config export backup.toml --project --include-encrypted`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config export command")

		store, err := newStore()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to initialize configuration store: %v", err)
		}

		opts := workflows.ExportOptions{
			Scope:            currentScope(),
			IncludeEncrypted: exportIncludeEncrypted,
		}
		if len(args) == 1 {
			opts.OutputPath = args[0]
		}
		if exportFormat != "" {
			format, err := workflows.ParseFormat(exportFormat)
			if err != nil {
				return ConfigLogger.ErrorfAndReturn("%v", err)
			}
			opts.Format = format
		}

		spinner, cleanup := startSpinner("Exporting configuration...", configVerbose)
		defer cleanup()

		result, err := workflows.Export(context.Background(), store, opts)
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Export failed: " + err.Error()
			return err
		}

		note := ""
		if result.EncryptedCount > 0 && !exportIncludeEncrypted {
			note = "\n" + ui.Info.Sprint("→") + fmt.Sprintf(" %d encrypted entr(ies) exported as placeholders", result.EncryptedCount)
		}
		spinner.FinalMSG = ui.Success.Sprint("✓") +
			fmt.Sprintf(" Exported %d key(s) to %s", result.KeyCount, ui.Path.Sprint(result.OutputPath)) + note
		return nil
	},
}
