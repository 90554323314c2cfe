package configs

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	kerrors "github.com/ai-builder/ai-builder/internal/errors"
)

// envelopeFields is the number of colon-separated fields in a ciphertext
// envelope: nonce, authentication tag, ciphertext.
const envelopeFields = 3

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

// encryptValue encrypts plaintext with AES-256-GCM under key and returns
// the envelope hex(nonce):hex(tag):hex(ciphertext). A fresh random nonce is
// drawn per call; GCM nonces must never repeat under the same key, so two
// encryptions of the same plaintext yield different envelopes.
func encryptValue(key []byte, plaintext string) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrEncryptFailed, err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%w: failed to generate nonce: %v", kerrors.ErrEncryptFailed, err)
	}

	// Seal returns ciphertext || tag; split them for the envelope.
	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	tagStart := len(sealed) - gcm.Overhead()
	ciphertext, tag := sealed[:tagStart], sealed[tagStart:]

	return fmt.Sprintf("%s:%s:%s",
		hex.EncodeToString(nonce),
		hex.EncodeToString(tag),
		hex.EncodeToString(ciphertext),
	), nil
}

// decryptValue opens an envelope produced by encryptValue. A malformed
// envelope or an authentication failure returns an error wrapping
// ErrDecryptFailed; garbage plaintext is never returned.
func decryptValue(key []byte, envelope string) (string, error) {
	parts := strings.Split(envelope, ":")
	if len(parts) != envelopeFields {
		return "", fmt.Errorf("%w: envelope has %d fields, expected %d", kerrors.ErrDecryptFailed, len(parts), envelopeFields)
	}

	nonce, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: invalid nonce encoding: %v", kerrors.ErrDecryptFailed, err)
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: invalid tag encoding: %v", kerrors.ErrDecryptFailed, err)
	}
	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", fmt.Errorf("%w: invalid ciphertext encoding: %v", kerrors.ErrDecryptFailed, err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrDecryptFailed, err)
	}

	if len(nonce) != gcm.NonceSize() {
		return "", fmt.Errorf("%w: nonce is %d bytes, expected %d", kerrors.ErrDecryptFailed, len(nonce), gcm.NonceSize())
	}

	plaintext, err := gcm.Open(nil, nonce, append(ciphertext, tag...), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrDecryptFailed, err)
	}

	return string(plaintext), nil
}
