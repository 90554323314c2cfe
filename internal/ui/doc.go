// Package ui provides semantic text formatting for CLI output.
//
// Formatters render appropriately based on terminal capabilities: colorized
// when supported, falling back to text decorations (backticks, quotes) when
// NO_COLOR is set or the terminal cannot display colors.
//
// Use the formatter matching the content type:
//
//	ui.Code.Sprint("ai-builder config init")  // Commands and code
//	ui.Path.Sprint("config.json")             // File paths
//	ui.Success.Sprint("✓")                    // Success indicators
//	ui.Error.Sprint("✗")                      // Error indicators
//	ui.Warning.Sprint("⚠")                    // Warnings
//	ui.Info.Sprint("→")                       // Informational hints
//	ui.Highlight.Sprint("api_key")            // User values
//	ui.Muted.Sprint("encrypted")              // De-emphasized text
package ui
