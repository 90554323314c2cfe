package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ai-builder/ai-builder/internal/configs"
	"github.com/ai-builder/ai-builder/internal/ui"

	"github.com/spf13/cobra"
)

var (
	validateJSONOutput bool
	// validateExitFunc is the function called to exit with a specific code.
	// Can be overridden for testing.
	validateExitFunc = os.Exit
)

func init() {
	configValidateCmd.Flags().BoolVar(&validateJSONOutput, "json", false, "output in JSON format")
	ConfigCmd.AddCommand(configValidateCmd)
}

// resetValidateState resets the validate command's global state for testing.
func resetValidateState() {
	validateJSONOutput = false
	validateExitFunc = os.Exit
}

// SetValidateExitFunc sets the exit function for testing purposes.
func SetValidateExitFunc(f func(int)) {
	validateExitFunc = f
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the health of the configuration store",
	Long: `Runs health checks on the configuration store and reports issues.

The validate command checks:
  - Configuration root existence and writability
  - Encryption key file presence
  - Global document parseability

Exit codes:
  0 - All checks passed
  1 - Warnings found (non-critical issues)
  2 - Errors found (critical issues)

Use --json for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config validate command")

		store, err := newStore()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to initialize configuration store: %v", err)
		}

		result := store.Validate()

		if validateJSONOutput {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(result); err != nil {
				return err
			}
		} else {
			printValidationResult(result)
		}

		if len(result.Errors) > 0 {
			validateExitFunc(2)
		}
		if len(result.Warnings) > 0 {
			validateExitFunc(1)
		}
		return nil
	},
}

// printValidationResult prints the validation findings in a human-readable format.
func printValidationResult(result configs.ValidationResult) {
	for _, msg := range result.Errors {
		fmt.Printf("%s %s\n", ui.Error.Sprint("✗"), msg)
	}
	for _, msg := range result.Warnings {
		fmt.Printf("%s %s\n", ui.Warning.Sprint("⚠"), msg)
	}

	if len(result.Errors) > 0 {
		fmt.Println(ui.Error.Sprint("✗") + " Configuration store has errors")
	} else if len(result.Warnings) > 0 {
		fmt.Println(ui.Warning.Sprint("⚠") + " Configuration store is healthy with warnings")
	} else {
		fmt.Println(ui.Success.Sprint("✓") + " Configuration store is healthy")
	}
}
