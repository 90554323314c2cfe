package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ai-builder/ai-builder/internal/ui"

	"github.com/spf13/cobra"
)

var configGetJSON bool

func init() {
	configGetCmd.Flags().BoolVar(&configGetJSON, "json", false, "output in JSON format")
	ConfigCmd.AddCommand(configGetCmd)
}

// resetGetState resets the get command's global state for testing.
func resetGetState() {
	configGetJSON = false
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get a configuration value",
	Long: `Prints the value stored under the given key.

Encrypted values are decrypted before printing. A key that is not set is
reported, not treated as an error.

Examples:
  # Read a global value
  ai-builder config get api_key

  # Read a project value as JSON
  ai-builder config get builder.model --project --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config get command")

		key := args[0]
		scope := currentScope()

		store, err := newStore()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to initialize configuration store: %v", err)
		}

		value, ok, err := store.Get(key, scope)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to get %s: %v", key, err)
		}
		if !ok {
			ConfigLogger.Infof("Key %s is not set in %s scope", key, scope)
			if configGetJSON {
				fmt.Println("null")
				return nil
			}
			fmt.Println(ui.Warning.Sprint("⚠") + " Key " + ui.Highlight.Sprint(key) + " is not set in " + string(scope) + " scope")
			return nil
		}

		if configGetJSON {
			encoder := json.NewEncoder(os.Stdout)
			return encoder.Encode(value)
		}

		fmt.Println(formatValue(value))
		return nil
	},
}
