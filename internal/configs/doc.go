// Package configs implements the ai-builder configuration store.
//
// Settings are key/value pairs persisted per scope in JSON documents:
//
//   - Global scope: <configRoot>/config.json (per-user settings)
//   - Project scope: <projectRoot>/.ai-builder/config.json
//
// Values whose keys look sensitive (containing password, token, secret,
// key, credential, and similar words) are encrypted at rest with
// AES-256-GCM. The encryption key is 32 random bytes, hex-encoded in
// <configRoot>/.key with owner-only permissions, generated on first use.
//
// # Envelope Format
//
// An encrypted value is stored as three colon-separated hex fields:
//
//	hex(nonce):hex(tag):hex(ciphertext)
//
// Each encryption draws a fresh 12-byte random nonce, so re-encrypting the
// same value produces a different envelope. Decryption is authenticated;
// a tampered envelope fails with ErrDecryptFailed instead of returning
// garbage plaintext.
//
// # Durability Model
//
// Reads are lenient: an absent or corrupted document behaves as empty so
// that configuration access never blocks the CLI. Writes are strict and
// atomic (temporary file plus rename); a write failure propagates because
// silently dropping it would lose data. Concurrent writers from separate
// processes are not coordinated; the last full-document write wins.
//
// # Known Limitation
//
// If the key file exists but cannot be read or decoded, a new key is
// generated and the old one is lost, which permanently invalidates every
// previously encrypted value. The event is logged as a warning.
//
// # Usage
//
// Construct a Store, then optionally configure the project scope:
//
//	store, err := configs.NewStore(configs.Options{Logger: log})
//	store.SetProjectRoot("/path/to/project")
//	err = store.Set("api_key", "abc123", configs.ScopeProject)
//
// Project-scope operations before SetProjectRoot fail with
// ErrScopeNotConfigured.
package configs
