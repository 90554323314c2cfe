// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments,
// capturing output, and building CLI instances wired to temp directories.
package shared

import (
	"bytes"
	"io"
	"log"
	"os"
	"testing"

	"github.com/ai-builder/ai-builder/cmd"

	"github.com/spf13/cobra"
)

// SetupTestEnvironment points the CLI at temporary directories and changes
// into the temp working directory. State is restored on test cleanup.
func SetupTestEnvironment(t *testing.T, tempDir, tempConfigRoot string) {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get original working directory: %v", err)
	}

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Setenv("AI_BUILDER_CONFIG_ROOT", tempConfigRoot)
	// Keep colored control sequences out of assertions.
	t.Setenv("NO_COLOR", "1")

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		cmd.ResetConfigState()
	})
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output
	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// CreateConfigTestCLI creates a CLI instance running `ai-builder config <args>`.
// Command state is reset first so flag values don't leak between tests.
func CreateConfigTestCLI(args ...string) *cobra.Command {
	cmd.ResetConfigState()

	rootCmd := &cobra.Command{
		Use:   "ai-builder",
		Short: "ai-builder - A CLI for building and operating AI-assisted projects.",
	}
	rootCmd.AddCommand(cmd.GetConfigCmd())

	rootCmd.SetArgs(append([]string{"config"}, args...))
	return rootCmd
}

// RunConfig executes `ai-builder config <args>` and returns its combined output.
func RunConfig(args ...string) (string, error) {
	return CaptureOutput(func() error {
		return CreateConfigTestCLI(args...).Execute()
	})
}
