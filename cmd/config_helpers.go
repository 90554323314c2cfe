package cmd

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"

	"github.com/ai-builder/ai-builder/internal/configs"
	"github.com/ai-builder/ai-builder/internal/ui"
	"github.com/ai-builder/ai-builder/internal/utils"

	"github.com/briandowns/spinner"
)

// newStore builds the configuration store for a command invocation. When
// --project is set, the nearest project root is located and configured so
// project-scope operations can resolve their document.
func newStore() (*configs.Store, error) {
	store, err := configs.NewStore(configs.Options{Logger: ConfigLogger})
	if err != nil {
		return nil, err
	}

	if configProject {
		projectRoot, err := utils.FindProjectRoot()
		if err != nil {
			return nil, err
		}
		if projectRoot != "" {
			store.SetProjectRoot(projectRoot)
		}
		// When no project root exists the scope stays unconfigured and the
		// store rejects project-scope operations.
	}

	return store, nil
}

// currentScope maps the --project flag to a scope.
func currentScope() configs.Scope {
	if configProject {
		return configs.ScopeProject
	}
	return configs.ScopeGlobal
}

// parseValue interprets a command-line value argument. JSON literals become
// typed values ("true" → bool, "42" → number, objects and arrays too);
// anything else is stored as a plain string.
func parseValue(raw string) any {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err == nil {
		return value
	}
	return raw
}

// formatValue renders a stored value for display.
func formatValue(value any) string {
	if text, ok := value.(string); ok {
		return text
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "<unprintable>"
	}
	return string(data)
}

// startSpinner starts a spinner and returns it with a cleanup function.
// In verbose or debug mode no spinner is shown so log lines stay readable.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	ConfigLogger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		ConfigLogger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !configDebug {
		ConfigLogger.Debugf("Starting spinner in non-verbose mode")
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		ConfigLogger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !configDebug {
			ConfigLogger.Debugf("Restoring log output")
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !configDebug {
			s.Stop()
		}

		if finalMsg != "" {
			os.Stdout.WriteString(finalMsg)
		}
	}

	return s, cleanup
}
