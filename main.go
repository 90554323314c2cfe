package main

import (
	"fmt"
	"os"

	"github.com/ai-builder/ai-builder/cmd"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ai-builder",
	Short: "ai-builder - A CLI for building and operating AI-assisted projects.",
	Long: `ai-builder is a command-line tool for scaffolding and operating
AI-assisted projects, with layered configuration and encrypted settings.

Features:
  - Global and per-project configuration scopes
  - Automatic encryption at rest for sensitive settings
  - Export, import, and audit of configuration changes

Usage:
  ai-builder <command> [flags]

Available Commands:
  config    Manage ai-builder configuration

Run 'ai-builder help <command>' for more details on a specific command.
`,
	Run: func(c *cobra.Command, args []string) {
		fmt.Println()
		banner := figure.NewColorFigure("ai-builder", "alligator2", "green", true)
		banner.Print()
		fmt.Println()
		fmt.Println("Welcome to ai-builder! Run 'ai-builder --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.ConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
