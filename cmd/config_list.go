package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ai-builder/ai-builder/internal/configs"
	"github.com/ai-builder/ai-builder/internal/ui"

	"github.com/spf13/cobra"
)

var configListJSON bool

func init() {
	configListCmd.Flags().BoolVar(&configListJSON, "json", false, "output in JSON format")
	ConfigCmd.AddCommand(configListCmd)
}

// resetListState resets the list command's global state for testing.
func resetListState() {
	configListJSON = false
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configuration entries in a scope",
	Long: `Lists every entry in the scope's document, sorted by key.

Encrypted entries are shown masked; use 'ai-builder config get' to read
their decrypted values.

Examples:
  # List global configuration
  ai-builder config list

  # List project configuration as JSON
  ai-builder config list --project --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config list command")

		scope := currentScope()

		store, err := newStore()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to initialize configuration store: %v", err)
		}

		entries, err := store.List(scope)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to list %s scope: %v", scope, err)
		}

		if configListJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(entries)
		}

		if len(entries) == 0 {
			fmt.Println(ui.Warning.Sprint("⚠") + " No configuration set in " + string(scope) + " scope")
			fmt.Println()
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("ai-builder config set <key> <value>") + " to add one")
			return nil
		}

		for _, entry := range entries {
			if entry.Encrypted {
				fmt.Printf("%s = %s\n", entry.Key, ui.Muted.Sprint(configs.EncryptedPlaceholder))
				continue
			}
			fmt.Printf("%s = %s\n", entry.Key, formatValue(entry.Value))
		}
		fmt.Println()
		fmt.Printf("%d entr(ies) in %s scope\n", len(entries), scope)
		return nil
	},
}
