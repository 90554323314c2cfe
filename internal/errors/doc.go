// Package errors defines sentinel errors for ai-builder.
//
// Errors are grouped by concern: scope state, cryptographic failures,
// persistence faults, and file handling. Callers wrap these with %w and
// match with errors.Is, so command code can branch on the failure class
// without string comparison.
package errors
