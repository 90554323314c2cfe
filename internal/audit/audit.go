package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`   // Unique entry id.
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	Operation string `json:"op"`   // Operation name (set, delete, import, ...).
	Scope     string `json:"scope,omitempty"`

	// Optional fields depending on operation. Values are never recorded.
	Key         string `json:"key,omitempty"`          // For set/delete.
	Encrypted   bool   `json:"encrypted,omitempty"`    // For set.
	KeysApplied int    `json:"keys_applied,omitempty"` // For import.
	KeysSkipped int    `json:"keys_skipped,omitempty"` // For import.
	KeysSeeded  int    `json:"keys_seeded,omitempty"`  // For init.
	OutputPath  string `json:"output_path,omitempty"`  // For export.
	InputPath   string `json:"input_path,omitempty"`   // For import.
	Format      string `json:"format,omitempty"`       // For export/import.
}

// New returns an Entry for the given operation with id and timestamp set.
func New(op string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000000Z"),
		Operation: op,
	}
}

// LogPath returns the path of the audit log under configRoot.
func LogPath(configRoot string) string {
	return filepath.Join(configRoot, "audit.jsonl")
}

// Log appends an entry to the audit log under configRoot.
// If logging fails, the failure is swallowed: operations should not fail
// just because audit logging did.
func Log(configRoot string, entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	f, err := os.OpenFile(LogPath(configRoot), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the audit log under configRoot.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(configRoot string) ([]Entry, error) {
	data, err := os.ReadFile(LogPath(configRoot))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
