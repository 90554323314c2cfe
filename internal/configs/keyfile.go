package configs

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	kerrors "github.com/ai-builder/ai-builder/internal/errors"
)

// keyBytes is the encryption key size: 32 bytes for AES-256.
const keyBytes = 32

// encryptionKey returns the store's symmetric key, loading or creating it
// on first use and caching it for the lifetime of the store.
func (s *Store) encryptionKey() ([]byte, error) {
	s.keyOnce.Do(func() {
		s.key, s.keyErr = s.loadOrCreateKey()
	})
	return s.key, s.keyErr
}

// loadOrCreateKey reads the hex-encoded key file, or generates and persists
// a new key when the file is absent or unusable.
//
// An existing key file that cannot be read or decoded is treated as absent:
// the event is logged and a fresh key is generated. Every value encrypted
// under the old key becomes undecryptable. This fail-open behavior keeps
// the store usable at the cost of the lost secrets.
func (s *Store) loadOrCreateKey() ([]byte, error) {
	path := s.keyPath()

	if s.blob.Exists(path) {
		data, err := s.blob.Read(path)
		if err != nil {
			s.log.Warnf("Failed to read encryption key file at %s: %v. Generating a new key; previously encrypted values can no longer be decrypted.", path, err)
		} else {
			key, err := hex.DecodeString(strings.TrimSpace(string(data)))
			if err == nil && len(key) == keyBytes {
				s.log.Debugf("loaded encryption key from %s", path)
				return key, nil
			}
			s.log.Warnf("Encryption key file at %s is not a valid %d-byte hex key. Generating a new key; previously encrypted values can no longer be decrypted.", path, keyBytes)
		}
	}

	key := make([]byte, keyBytes)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrKeyMaterial, err)
	}

	encoded := hex.EncodeToString(key)
	if err := s.blob.Write(path, []byte(encoded), 0600); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrKeyMaterial, err)
	}

	s.log.Infof("generated new encryption key at %s", path)
	return key, nil
}
