package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// BlobStore is the durable store for whole-document blobs.
type BlobStore interface {
	// Exists reports whether a blob is present at path.
	Exists(path string) bool

	// Read returns the full content of the blob at path.
	Read(path string) ([]byte, error)

	// Write fully replaces the blob at path with data, creating it with
	// the given permissions. The replacement is atomic from the reader's
	// perspective.
	Write(path string, data []byte, perm os.FileMode) error

	// Delete removes the blob at path. Deleting an absent blob is a no-op.
	Delete(path string) error

	// EnsureDir creates the directory at path (and parents) if needed.
	EnsureDir(path string) error

	// Writable reports whether the directory at path can be written to.
	Writable(path string) error
}

// DiskStore is the on-disk BlobStore used outside of tests.
type DiskStore struct{}

// NewDiskStore returns a BlobStore backed by the local filesystem.
func NewDiskStore() DiskStore {
	return DiskStore{}
}

func (DiskStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (DiskStore) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Write persists data via a uniquely named temporary file in the target
// directory, then renames it over path. Rename is atomic on POSIX
// filesystems, so readers never observe a half-written blob.
func (DiskStore) Write(path string, data []byte, perm os.FileMode) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())

	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		// Best effort: don't leave the temporary file behind.
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

func (DiskStore) Delete(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (DiskStore) EnsureDir(path string) error {
	return os.MkdirAll(path, 0700)
}

// Writable probes the directory by creating and removing a marker file,
// which catches read-only mounts that a permission-bit check would miss.
func (DiskStore) Writable(path string) error {
	probe := filepath.Join(path, fmt.Sprintf(".probe-%s", uuid.NewString()))

	f, err := os.OpenFile(probe, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("directory is not writable: %w", err)
	}
	_ = f.Close()

	return os.Remove(probe)
}
