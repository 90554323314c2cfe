// Package audit records configuration operations to a local JSONL trail.
//
// Entries are appended to <configRoot>/audit.jsonl, one JSON object per
// line. Logging is best-effort: a configuration operation never fails
// because its audit entry could not be written. Config keys and scopes are
// recorded; values never are.
package audit
