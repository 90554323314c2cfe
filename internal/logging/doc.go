// Package logger provides leveled logging for ai-builder CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags:
//
//   - --verbose: shows info messages
//   - --debug: shows debug messages
//
// Warnings and errors are always shown on stderr. Commands create a logger
// in their PersistentPreRun and pass it down; the configuration store takes
// the logger as a collaborator so that corruption and key-regeneration
// events surface without the store depending on command state.
package logger
