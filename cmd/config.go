package cmd

import (
	logger "github.com/ai-builder/ai-builder/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configVerbose bool
	configDebug   bool
	configProject bool
	ConfigLogger  logger.Logger

	// ConfigCmd is the top-level config command.
	ConfigCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage ai-builder configuration",
		Long: `Provides commands for managing global and project configuration settings.

Settings are stored per scope: global settings live under your user config
directory, project settings under the project's .ai-builder directory.
Values whose keys look sensitive (api_key, password, token, ...) are
encrypted at rest automatically.

Examples:
  # Seed the default configuration
  ai-builder config init

  # Store a value globally (encrypted, since the key looks sensitive)
  ai-builder config set api_key abc123

  # Store a value for the current project
  ai-builder config set builder.model gpt-4o --project

  # List everything in a scope
  ai-builder config list

  # Check the store's health
  ai-builder config validate`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ConfigLogger = logger.Logger{
				Verbose: configVerbose,
				Debug:   configDebug,
			}
			ConfigLogger.Debugf("Initializing config command with verbose=%t, debug=%t, project=%t", configVerbose, configDebug, configProject)
		},
	}
)

func init() {
	ConfigCmd.PersistentFlags().BoolVarP(&configVerbose, "verbose", "v", false, "enable verbose output")
	ConfigCmd.PersistentFlags().BoolVarP(&configDebug, "debug", "d", false, "enable debug output")
	ConfigCmd.PersistentFlags().BoolVarP(&configProject, "project", "p", false, "operate on the project scope instead of global")
}

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}

// ResetConfigState resets all config command global variables to their default values for testing.
func ResetConfigState() {
	configVerbose = false
	configDebug = false
	configProject = false
	resetGetState()
	resetListState()
	resetExportState()
	resetImportState()
	resetResetState()
	resetValidateState()
	resetLogState()
	resetConfigCobraFlagState()
}

// resetConfigCobraFlagState resets the flag state for all config commands to prevent test pollution.
func resetConfigCobraFlagState() {
	if ConfigCmd == nil {
		return
	}
	ConfigCmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, sub := range ConfigCmd.Commands() {
		sub.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}
