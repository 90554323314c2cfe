package cmd

import (
	"fmt"

	"github.com/ai-builder/ai-builder/internal/audit"
	"github.com/ai-builder/ai-builder/internal/ui"

	"github.com/spf13/cobra"
)

func init() {
	ConfigCmd.AddCommand(configInitCmd)
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Seed the default global configuration",
	Long: `Creates the configuration directory and seeds the default settings
into the global scope. Keys that already have a value are left untouched,
so running init repeatedly is safe.

Examples:
  # Seed the defaults
  ai-builder config init`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config init command")

		store, err := newStore()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to initialize configuration store: %v", err)
		}

		spinner, cleanup := startSpinner("Seeding default configuration...", configVerbose)
		defer cleanup()

		seeded, err := store.ApplyDefaults()
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Init failed: " + err.Error()
			return err
		}

		entry := audit.New("init")
		entry.Scope = "global"
		entry.KeysSeeded = seeded
		audit.Log(store.ConfigRoot(), entry)

		if seeded == 0 {
			spinner.FinalMSG = ui.Info.Sprint("→") + " All default keys already set, nothing to do"
			return nil
		}
		spinner.FinalMSG = ui.Success.Sprint("✓") +
			fmt.Sprintf(" Seeded %d default key(s) into global configuration", seeded) +
			"\n" + ui.Info.Sprint("→") + " Config root: " + ui.Path.Sprint(store.ConfigRoot()) +
			"\n" + ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("ai-builder config list") + " to see them"
		return nil
	},
}
