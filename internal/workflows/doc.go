// Package workflows implements the multi-step operations behind CLI
// commands: exporting a configuration scope to a file and importing one
// back, in JSON, TOML, or YAML.
//
// Each workflow takes a context and an Options struct and returns a Result
// struct describing what happened, leaving presentation to the command
// layer. Export never decrypts stored secrets: encrypted entries leave as a
// placeholder, or as their raw ciphertext envelope when explicitly
// requested.
package workflows
