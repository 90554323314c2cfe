package cmd

import (
	"fmt"

	"github.com/ai-builder/ai-builder/internal/audit"
	"github.com/ai-builder/ai-builder/internal/configs"
	"github.com/ai-builder/ai-builder/internal/ui"

	"github.com/spf13/cobra"
)

func init() {
	ConfigCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Stores a value under the given key.

Keys that look sensitive (containing password, token, secret, key,
credential, ...) are encrypted at rest automatically. Values are parsed as
JSON when possible, so booleans and numbers keep their type:

  ai-builder config set cli.verbose true      # stored as a boolean
  ai-builder config set builder.max_tokens 80 # stored as a number
  ai-builder config set builder.model gpt-4o  # stored as a string

Examples:
  # Store an API key globally (encrypted)
  ai-builder config set api_key abc123

  # Store a setting for the current project
  ai-builder config set output.format json --project`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config set command")

		key := args[0]
		value := parseValue(args[1])
		scope := currentScope()
		ConfigLogger.Debugf("Setting %s in %s scope", key, scope)

		store, err := newStore()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to initialize configuration store: %v", err)
		}

		if err := store.Set(key, value, scope); err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to set %s: %v", key, err)
		}

		encrypted := configs.IsSensitiveKey(key)
		entry := audit.New("set")
		entry.Scope = string(scope)
		entry.Key = key
		entry.Encrypted = encrypted
		audit.Log(store.ConfigRoot(), entry)

		suffix := ""
		if encrypted {
			suffix = " " + ui.Muted.Sprint("encrypted")
		}
		fmt.Println(ui.Success.Sprint("✓") + " Set " + ui.Highlight.Sprint(key) + " in " + string(scope) + " scope" + suffix)
		return nil
	},
}
