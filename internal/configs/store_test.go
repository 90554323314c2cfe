package configs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	kerrors "github.com/ai-builder/ai-builder/internal/errors"
)

// rawEntry reads an entry straight from the document on disk, bypassing the
// store, to assert on the persisted form.
func rawEntry(t *testing.T, path, key string) Entry {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read document: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Failed to parse document: %v", err)
	}

	entry, ok := doc[key]
	if !ok {
		t.Fatalf("Expected entry %q in document", key)
	}
	return entry
}

func TestSetAndGetPlainValue(t *testing.T) {
	root := t.TempDir()
	store := newStoreAt(t, root)

	if err := store.Set("cli.verbose", true, ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := store.Get("cli.verbose", ScopeGlobal)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected key to be present")
	}
	if value != true {
		t.Errorf("Expected true, got %v", value)
	}

	entry := rawEntry(t, filepath.Join(root, "config.json"), "cli.verbose")
	if entry.Encrypted {
		t.Error("Expected plain value to not be marked encrypted")
	}
	if entry.Value != true {
		t.Errorf("Expected literal stored value true, got %v", entry.Value)
	}
	if entry.Scope != ScopeGlobal {
		t.Errorf("Expected scope %q, got %q", ScopeGlobal, entry.Scope)
	}
}

func TestSetAndGetSensitiveValue(t *testing.T) {
	root := t.TempDir()
	store := newStoreAt(t, root)

	if err := store.Set("api_key", "abc123", ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := store.Get("api_key", ScopeGlobal)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected key to be present")
	}
	if value != "abc123" {
		t.Errorf("Expected %q, got %v", "abc123", value)
	}

	entry := rawEntry(t, filepath.Join(root, "config.json"), "api_key")
	if !entry.Encrypted {
		t.Fatal("Expected sensitive value to be marked encrypted")
	}

	envelope, ok := entry.Value.(string)
	if !ok {
		t.Fatalf("Expected stored value to be an envelope string, got %T", entry.Value)
	}
	if envelope == `"abc123"` || envelope == "abc123" {
		t.Error("Expected stored value to be ciphertext, not the plaintext")
	}
	if parts := strings.Split(envelope, ":"); len(parts) != 3 {
		t.Errorf("Expected 3 envelope fields, got %d", len(parts))
	}
}

func TestSensitiveStructuredValueRoundTrips(t *testing.T) {
	store := newStoreAt(t, t.TempDir())

	original := map[string]any{"user": "svc", "token": "t-1"}
	if err := store.Set("service.credentials", original, ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := store.Get("service.credentials", ScopeGlobal)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected key to be present")
	}

	decrypted, ok := value.(map[string]any)
	if !ok {
		t.Fatalf("Expected map value, got %T", value)
	}
	if decrypted["user"] != "svc" || decrypted["token"] != "t-1" {
		t.Errorf("Expected structured value to round-trip, got %v", decrypted)
	}
}

func TestReEncryptionProducesDistinctEnvelopes(t *testing.T) {
	root := t.TempDir()
	store := newStoreAt(t, root)
	docPath := filepath.Join(root, "config.json")

	if err := store.Set("api_key", "abc123", ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	first := rawEntry(t, docPath, "api_key").Value.(string)

	if err := store.Set("api_key", "abc123", ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	second := rawEntry(t, docPath, "api_key").Value.(string)

	if first == second {
		t.Error("Expected a fresh nonce to produce a different envelope")
	}

	value, ok, err := store.Get("api_key", ScopeGlobal)
	if err != nil || !ok || value != "abc123" {
		t.Errorf("Expected (abc123, true, nil), got (%v, %v, %v)", value, ok, err)
	}
}

func TestGetTamperedEnvelopeFails(t *testing.T) {
	root := t.TempDir()
	store := newStoreAt(t, root)
	docPath := filepath.Join(root, "config.json")

	if err := store.Set("api_key", "abc123", ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Flip one hex character in the envelope's tag field.
	data, err := os.ReadFile(docPath)
	if err != nil {
		t.Fatalf("Failed to read document: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Failed to parse document: %v", err)
	}
	entry := doc["api_key"]
	parts := strings.Split(entry.Value.(string), ":")
	parts[1] = flipHexChar(parts[1])
	entry.Value = strings.Join(parts, ":")
	doc["api_key"] = entry

	tampered, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal tampered document: %v", err)
	}
	if err := os.WriteFile(docPath, tampered, 0600); err != nil {
		t.Fatalf("Failed to write tampered document: %v", err)
	}

	_, _, err = store.Get("api_key", ScopeGlobal)
	if !errors.Is(err, kerrors.ErrDecryptFailed) {
		t.Errorf("Expected ErrDecryptFailed, got %v", err)
	}
}

func TestCreatedAtPreservedAcrossUpdates(t *testing.T) {
	store := newStoreAt(t, t.TempDir())

	if err := store.Set("builder.model", "gpt-4o", ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	entries, err := store.List(ScopeGlobal)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	created := entries[0].CreatedAt

	time.Sleep(20 * time.Millisecond)

	if err := store.Set("builder.model", "gpt-4o-mini", ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	entries, err = store.List(ScopeGlobal)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	entry := entries[0]

	if !entry.CreatedAt.Equal(created) {
		t.Errorf("Expected CreatedAt %v to be preserved, got %v", created, entry.CreatedAt)
	}
	if !entry.UpdatedAt.After(entry.CreatedAt) {
		t.Errorf("Expected UpdatedAt %v to advance past CreatedAt %v", entry.UpdatedAt, entry.CreatedAt)
	}
}

func TestScopeIsolation(t *testing.T) {
	store := newStoreAt(t, t.TempDir())
	store.SetProjectRoot(t.TempDir())

	if err := store.Set("x", 1, ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	_, ok, err := store.Get("x", ScopeProject)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Expected global entry to not leak into project scope")
	}

	if err := store.Set("x", 2, ScopeProject); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := store.Get("x", ScopeGlobal)
	if err != nil || !ok {
		t.Fatalf("Get failed: (%v, %v)", ok, err)
	}
	if value != float64(1) {
		t.Errorf("Expected global value 1, got %v", value)
	}
}

func TestProjectScopeGuard(t *testing.T) {
	store := newStoreAt(t, t.TempDir())

	if err := store.Set("x", 1, ScopeProject); !errors.Is(err, kerrors.ErrScopeNotConfigured) {
		t.Errorf("Set: expected ErrScopeNotConfigured, got %v", err)
	}
	if _, _, err := store.Get("x", ScopeProject); !errors.Is(err, kerrors.ErrScopeNotConfigured) {
		t.Errorf("Get: expected ErrScopeNotConfigured, got %v", err)
	}
	if _, err := store.List(ScopeProject); !errors.Is(err, kerrors.ErrScopeNotConfigured) {
		t.Errorf("List: expected ErrScopeNotConfigured, got %v", err)
	}
	if _, err := store.Delete("x", ScopeProject); !errors.Is(err, kerrors.ErrScopeNotConfigured) {
		t.Errorf("Delete: expected ErrScopeNotConfigured, got %v", err)
	}
	if err := store.Reset(ScopeProject); !errors.Is(err, kerrors.ErrScopeNotConfigured) {
		t.Errorf("Reset: expected ErrScopeNotConfigured, got %v", err)
	}
	if _, err := store.Export(ScopeProject, false); !errors.Is(err, kerrors.ErrScopeNotConfigured) {
		t.Errorf("Export: expected ErrScopeNotConfigured, got %v", err)
	}
}

func TestProjectDocumentPath(t *testing.T) {
	store := newStoreAt(t, t.TempDir())
	projectRoot := t.TempDir()
	store.SetProjectRoot(projectRoot)

	if err := store.Set("x", 1, ScopeProject); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	docPath := filepath.Join(projectRoot, ".ai-builder", "config.json")
	if _, err := os.Stat(docPath); err != nil {
		t.Errorf("Expected project document at %s: %v", docPath, err)
	}
}

func TestCorruptedDocumentResilience(t *testing.T) {
	root := t.TempDir()
	store := newStoreAt(t, root)
	docPath := filepath.Join(root, "config.json")

	if err := os.WriteFile(docPath, []byte("{not json"), 0600); err != nil {
		t.Fatalf("Failed to write corrupted document: %v", err)
	}

	// Reads degrade to absent/empty rather than failing.
	if _, ok, err := store.Get("anything", ScopeGlobal); err != nil || ok {
		t.Errorf("Expected (absent, nil) on corrupted document, got (%v, %v)", ok, err)
	}
	entries, err := store.List(ScopeGlobal)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty list, got %d entries", len(entries))
	}

	// A subsequent write replaces the corruption with a fresh valid document.
	if err := store.Set("cli.verbose", false, ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, err := os.ReadFile(docPath)
	if err != nil {
		t.Fatalf("Failed to read document: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Errorf("Expected a valid document after Set, got parse error: %v", err)
	}
	if len(doc) != 1 {
		t.Errorf("Expected 1 entry in fresh document, got %d", len(doc))
	}
}

func TestDeleteRemovesKey(t *testing.T) {
	store := newStoreAt(t, t.TempDir())

	if err := store.Set("cli.verbose", true, ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	removed, err := store.Delete("cli.verbose", ScopeGlobal)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !removed {
		t.Error("Expected Delete to report removal")
	}

	if _, ok, _ := store.Get("cli.verbose", ScopeGlobal); ok {
		t.Error("Expected key to be gone after delete")
	}
}

func TestDeleteAbsentKeyIsNoOp(t *testing.T) {
	store := newStoreAt(t, t.TempDir())

	removed, err := store.Delete("missing", ScopeGlobal)
	if err != nil {
		t.Errorf("Expected no error deleting absent key, got %v", err)
	}
	if removed {
		t.Error("Expected Delete to report no removal")
	}
}

func TestExportReplacesEncryptedWithPlaceholder(t *testing.T) {
	store := newStoreAt(t, t.TempDir())

	if err := store.Set("api_key", "abc123", ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("cli.verbose", true, ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	exported, err := store.Export(ScopeGlobal, false)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if exported["api_key"] != EncryptedPlaceholder {
		t.Errorf("Expected placeholder for encrypted entry, got %v", exported["api_key"])
	}
	if exported["cli.verbose"] != true {
		t.Errorf("Expected plain value, got %v", exported["cli.verbose"])
	}
}

func TestExportWithEncryptedYieldsEnvelopeNotPlaintext(t *testing.T) {
	store := newStoreAt(t, t.TempDir())

	if err := store.Set("api_key", "abc123", ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	exported, err := store.Export(ScopeGlobal, true)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	envelope, ok := exported["api_key"].(string)
	if !ok {
		t.Fatalf("Expected envelope string, got %T", exported["api_key"])
	}
	if envelope == "abc123" || envelope == EncryptedPlaceholder {
		t.Errorf("Expected the raw envelope, got %q", envelope)
	}
	if parts := strings.Split(envelope, ":"); len(parts) != 3 {
		t.Errorf("Expected 3 envelope fields, got %d", len(parts))
	}
}

func TestImportSkipsPlaceholders(t *testing.T) {
	store := newStoreAt(t, t.TempDir())

	if err := store.Set("api_key", "abc123", ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	exported, err := store.Export(ScopeGlobal, false)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	exported["cli.verbose"] = true

	applied, skipped, err := store.Import(exported, ScopeGlobal)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if applied != 1 {
		t.Errorf("Expected 1 applied key, got %d", applied)
	}
	if skipped != 1 {
		t.Errorf("Expected 1 skipped key, got %d", skipped)
	}

	// The placeholder must not have clobbered the stored secret.
	value, ok, err := store.Get("api_key", ScopeGlobal)
	if err != nil || !ok || value != "abc123" {
		t.Errorf("Expected (abc123, true, nil), got (%v, %v, %v)", value, ok, err)
	}
}

func TestImportAppliesEncryptionHeuristic(t *testing.T) {
	root := t.TempDir()
	store := newStoreAt(t, root)

	applied, skipped, err := store.Import(map[string]any{
		"db.password": "hunter2",
		"cli.color":   false,
	}, ScopeGlobal)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if applied != 2 || skipped != 0 {
		t.Errorf("Expected (2, 0), got (%d, %d)", applied, skipped)
	}

	docPath := filepath.Join(root, "config.json")
	if entry := rawEntry(t, docPath, "db.password"); !entry.Encrypted {
		t.Error("Expected imported sensitive key to be encrypted")
	}
	if entry := rawEntry(t, docPath, "cli.color"); entry.Encrypted {
		t.Error("Expected imported plain key to not be encrypted")
	}
}

func TestResetDeletesDocument(t *testing.T) {
	root := t.TempDir()
	store := newStoreAt(t, root)

	if err := store.Set("cli.verbose", true, ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Reset(ScopeGlobal); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "config.json")); !os.IsNotExist(err) {
		t.Error("Expected document to be removed")
	}

	// Resetting again is a no-op.
	if err := store.Reset(ScopeGlobal); err != nil {
		t.Errorf("Expected reset of absent document to be a no-op, got %v", err)
	}
}

func TestApplyDefaultsSeedsOnlyAbsentKeys(t *testing.T) {
	store := newStoreAt(t, t.TempDir())

	seeded, err := store.ApplyDefaults()
	if err != nil {
		t.Fatalf("ApplyDefaults failed: %v", err)
	}
	if seeded != len(defaultConfig) {
		t.Errorf("Expected %d seeded keys, got %d", len(defaultConfig), seeded)
	}

	value, ok, err := store.Get("builder.model", ScopeGlobal)
	if err != nil || !ok || value != "gpt-4o" {
		t.Errorf("Expected (gpt-4o, true, nil), got (%v, %v, %v)", value, ok, err)
	}

	// Override one default, reapply, and verify it is untouched.
	if err := store.Set("output.format", "json", ScopeGlobal); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	seeded, err = store.ApplyDefaults()
	if err != nil {
		t.Fatalf("ApplyDefaults failed: %v", err)
	}
	if seeded != 0 {
		t.Errorf("Expected 0 seeded keys on reapply, got %d", seeded)
	}

	value, _, err = store.Get("output.format", ScopeGlobal)
	if err != nil || value != "json" {
		t.Errorf("Expected existing value to be preserved, got (%v, %v)", value, err)
	}
}

func TestListReturnsEntriesSortedByKey(t *testing.T) {
	store := newStoreAt(t, t.TempDir())

	for _, key := range []string{"zeta", "alpha", "mid"} {
		if err := store.Set(key, key, ScopeGlobal); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	entries, err := store.List(ScopeGlobal)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"alpha", "mid", "zeta"} {
		if entries[i].Key != want {
			t.Errorf("Expected entries[%d].Key = %q, got %q", i, want, entries[i].Key)
		}
	}
}
