package errors

import "errors"

// Scope errors indicate configuration-scope state problems.
var (
	// ErrScopeNotConfigured indicates a project-scope operation was attempted
	// before the project root was set.
	ErrScopeNotConfigured = errors.New("project scope has not been configured")

	// ErrUnknownScope indicates a scope name that is neither global nor project.
	ErrUnknownScope = errors.New("unknown configuration scope")
)

// Cryptographic errors indicate failures during encryption or decryption.
var (
	// ErrDecryptFailed indicates a stored value could not be decrypted,
	// either because the envelope is malformed or authentication failed.
	ErrDecryptFailed = errors.New("failed to decrypt value")

	// ErrEncryptFailed indicates a value could not be encrypted.
	ErrEncryptFailed = errors.New("failed to encrypt value")

	// ErrKeyMaterial indicates the encryption key could not be loaded or created.
	ErrKeyMaterial = errors.New("failed to obtain encryption key")
)

// Persistence errors indicate issues with the backing document store.
var (
	// ErrPersistence indicates a configuration document could not be written.
	ErrPersistence = errors.New("failed to persist configuration document")
)

// File errors indicate issues with export and import files.
var (
	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedFormat indicates an export or import format that is not
	// one of json, toml, or yaml.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
