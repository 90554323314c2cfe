package configs

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	kerrors "github.com/ai-builder/ai-builder/internal/errors"
)

// EncryptedPlaceholder replaces encrypted values in exports that do not
// request ciphertext. Import recognizes and skips it.
const EncryptedPlaceholder = "[ENCRYPTED]"

// Set stores value under key in the given scope. Values for sensitive keys
// are JSON-serialized and encrypted before storage; everything else is
// stored as-is. CreatedAt of an existing entry is preserved.
func (s *Store) Set(key string, value any, scope Scope) error {
	doc, err := s.readDocument(scope)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	entry := Entry{
		Key:       key,
		Scope:     scope,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if prior, ok := doc[key]; ok {
		entry.CreatedAt = prior.CreatedAt
	}

	if IsSensitiveKey(key) {
		plaintext, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("%w: value is not serializable: %v", kerrors.ErrEncryptFailed, err)
		}

		encKey, err := s.encryptionKey()
		if err != nil {
			return err
		}

		envelope, err := encryptValue(encKey, string(plaintext))
		if err != nil {
			return err
		}

		entry.Value = envelope
		entry.Encrypted = true
		s.log.Debugf("encrypted value for sensitive key %s", key)
	} else {
		entry.Value = value
	}

	doc[key] = entry
	return s.writeDocument(scope, doc)
}

// Get returns the value stored under key in the given scope. An absent key
// is (nil, false, nil), not an error. A decryption failure is logged and
// returned: an undecryptable secret must not look like "no secret set".
func (s *Store) Get(key string, scope Scope) (any, bool, error) {
	doc, err := s.readDocument(scope)
	if err != nil {
		return nil, false, err
	}

	entry, ok := doc[key]
	if !ok {
		return nil, false, nil
	}

	if !entry.Encrypted {
		return entry.Value, true, nil
	}

	envelope, ok := entry.Value.(string)
	if !ok {
		err := fmt.Errorf("%w: stored value for %s is not an envelope", kerrors.ErrDecryptFailed, key)
		s.log.Errorf("%v", err)
		return nil, false, err
	}

	encKey, err := s.encryptionKey()
	if err != nil {
		s.log.Errorf("failed to load encryption key for %s: %v", key, err)
		return nil, false, err
	}

	plaintext, err := decryptValue(encKey, envelope)
	if err != nil {
		s.log.Errorf("failed to decrypt value for %s: %v", key, err)
		return nil, false, err
	}

	var value any
	if err := json.Unmarshal([]byte(plaintext), &value); err != nil {
		err = fmt.Errorf("%w: decrypted value for %s is not valid JSON: %v", kerrors.ErrDecryptFailed, key, err)
		s.log.Errorf("%v", err)
		return nil, false, err
	}

	return value, true, nil
}

// List returns every entry in the scope's document, sorted by key. An
// absent or unreadable document yields an empty slice.
func (s *Store) List(scope Scope) ([]Entry, error) {
	doc, err := s.readDocument(scope)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(doc))
	for _, entry := range doc {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	return entries, nil
}

// Delete removes key from the scope's document and reports whether an entry
// was removed. Deleting an absent key is a no-op.
func (s *Store) Delete(key string, scope Scope) (bool, error) {
	doc, err := s.readDocument(scope)
	if err != nil {
		return false, err
	}

	if _, ok := doc[key]; !ok {
		return false, nil
	}

	delete(doc, key)
	if err := s.writeDocument(scope, doc); err != nil {
		return false, err
	}
	return true, nil
}

// Export returns the scope's settings as a key-to-value mapping. Encrypted
// entries are replaced with EncryptedPlaceholder unless includeEncrypted is
// set, in which case the raw envelope is exported. Export never decrypts.
func (s *Store) Export(scope Scope, includeEncrypted bool) (map[string]any, error) {
	doc, err := s.readDocument(scope)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(doc))
	for key, entry := range doc {
		if entry.Encrypted && !includeEncrypted {
			out[key] = EncryptedPlaceholder
			continue
		}
		out[key] = entry.Value
	}

	return out, nil
}

// Import stores every value in the mapping via Set, re-deriving whether to
// encrypt from each key name. Values equal to EncryptedPlaceholder come
// from an export that withheld ciphertext; they are skipped, not errors.
// Returns the counts of applied and skipped keys.
func (s *Store) Import(values map[string]any, scope Scope) (applied, skipped int, err error) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if text, ok := values[key].(string); ok && text == EncryptedPlaceholder {
			s.log.Debugf("skipping placeholder value for %s", key)
			skipped++
			continue
		}
		if err := s.Set(key, values[key], scope); err != nil {
			return applied, skipped, err
		}
		applied++
	}

	return applied, skipped, nil
}

// Reset deletes the scope's document entirely.
func (s *Store) Reset(scope Scope) error {
	return s.deleteDocument(scope)
}
