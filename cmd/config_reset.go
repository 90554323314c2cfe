package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ai-builder/ai-builder/internal/audit"
	"github.com/ai-builder/ai-builder/internal/ui"

	"github.com/spf13/cobra"
)

var resetForce bool

func init() {
	configResetCmd.Flags().BoolVar(&resetForce, "force", false, "skip confirmation prompt")
	ConfigCmd.AddCommand(configResetCmd)
}

// resetResetState resets the reset command's global state for testing.
func resetResetState() {
	resetForce = false
}

// confirmReset prompts the user to confirm removing a scope's configuration.
// Returns true if the user confirms, false otherwise.
func confirmReset(scope string) bool {
	fmt.Printf("\n%s This will remove every %s configuration key, including encrypted values.\n",
		ui.Warning.Sprint("Warning:"), scope)
	fmt.Println("  There is no way to recover them afterwards.")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Do you want to continue? [y/N]: ")
	response, err := reader.ReadString('\n')
	if err != nil {
		ConfigLogger.Errorf("Failed to read response: %v", err)
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))

	return response == "y" || response == "yes"
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove all configuration for a scope",
	Long: `Deletes a scope's configuration document, removing every key in it.

Encrypted values are removed along with everything else and cannot be
recovered. The encryption key file is left in place so values in the
other scope keep working.

Examples:
  # Reset the global configuration (with confirmation prompt)
  ai-builder config reset

  # Reset the project configuration without a prompt
  ai-builder config reset --project --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config reset command")

		store, err := newStore()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to initialize configuration store: %v", err)
		}
		scope := currentScope()

		if !resetForce && !confirmReset(string(scope)) {
			fmt.Println(ui.Muted.Sprint("Reset cancelled."))
			return nil
		}

		if err := store.Reset(scope); err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to reset %s configuration: %v", scope, err)
		}

		entry := audit.New("reset")
		entry.Scope = string(scope)
		audit.Log(store.ConfigRoot(), entry)

		fmt.Println(ui.Success.Sprint("✓") + fmt.Sprintf(" Removed all %s configuration", scope))
		return nil
	},
}
