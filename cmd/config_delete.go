package cmd

import (
	"fmt"

	"github.com/ai-builder/ai-builder/internal/audit"
	"github.com/ai-builder/ai-builder/internal/ui"

	"github.com/spf13/cobra"
)

func init() {
	ConfigCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:   "delete [key]",
	Short: "Delete a configuration entry",
	Long: `Removes the entry stored under the given key.

Deleting a key that is not set is a no-op, not an error.

Examples:
  # Delete a global entry
  ai-builder config delete api_key

  # Delete a project entry
  ai-builder config delete output.format --project`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config delete command")

		key := args[0]
		scope := currentScope()

		store, err := newStore()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to initialize configuration store: %v", err)
		}

		removed, err := store.Delete(key, scope)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to delete %s: %v", key, err)
		}

		if !removed {
			fmt.Println(ui.Warning.Sprint("⚠") + " Key " + ui.Highlight.Sprint(key) + " is not set in " + string(scope) + " scope")
			return nil
		}

		entry := audit.New("delete")
		entry.Scope = string(scope)
		entry.Key = key
		audit.Log(store.ConfigRoot(), entry)

		fmt.Println(ui.Success.Sprint("✓") + " Deleted " + ui.Highlight.Sprint(key) + " from " + string(scope) + " scope")
		return nil
	},
}
