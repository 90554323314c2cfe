package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	kerrors "github.com/ai-builder/ai-builder/internal/errors"
	logger "github.com/ai-builder/ai-builder/internal/logging"
	"github.com/ai-builder/ai-builder/internal/storage"
)

const (
	// documentName is the file name of a scope's configuration document.
	documentName = "config.json"

	// projectDirName is the directory holding project-scope state.
	projectDirName = ".ai-builder"

	// keyFileName is the encryption key file under the config root.
	keyFileName = ".key"
)

// Options configures a Store.
type Options struct {
	// ConfigRoot is the directory holding global state (config.json, .key).
	// Empty means DefaultConfigRoot().
	ConfigRoot string

	// Logger receives debug/warn/error events from the store.
	Logger logger.Logger

	// Blob is the durable blob store. Nil means the local filesystem.
	Blob storage.BlobStore
}

// Store is the scoped, encrypting configuration store.
//
// A Store carries no ambient global state: the config root, the configured
// project root, and the cached encryption key are all instance fields, so
// independent stores can coexist in one process.
type Store struct {
	configRoot  string
	projectRoot string
	log         logger.Logger
	blob        storage.BlobStore

	keyOnce sync.Once
	key     []byte
	keyErr  error
}

// DefaultConfigRoot returns the directory for global state:
// $AI_BUILDER_CONFIG_ROOT when set, otherwise <user config dir>/ai-builder.
func DefaultConfigRoot() (string, error) {
	if root := os.Getenv("AI_BUILDER_CONFIG_ROOT"); root != "" {
		return root, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}

	return filepath.Join(configDir, "ai-builder"), nil
}

// NewStore creates a Store and ensures its config root directory exists.
// The encryption key is not touched until the first encrypted operation.
func NewStore(opts Options) (*Store, error) {
	root := opts.ConfigRoot
	if root == "" {
		defaultRoot, err := DefaultConfigRoot()
		if err != nil {
			return nil, err
		}
		root = defaultRoot
	}

	blob := opts.Blob
	if blob == nil {
		blob = storage.NewDiskStore()
	}

	if err := blob.EnsureDir(root); err != nil {
		return nil, fmt.Errorf("failed to create config root %s: %w", root, err)
	}

	return &Store{
		configRoot: root,
		log:        opts.Logger,
		blob:       blob,
	}, nil
}

// ConfigRoot returns the directory holding global state.
func (s *Store) ConfigRoot() string {
	return s.configRoot
}

// SetProjectRoot configures the project scope. Project-scope operations
// fail with ErrScopeNotConfigured until this has been called.
func (s *Store) SetProjectRoot(path string) {
	s.projectRoot = path
	s.log.Debugf("project scope configured at %s", path)
}

// ProjectConfigured reports whether the project scope is usable.
func (s *Store) ProjectConfigured() bool {
	return s.projectRoot != ""
}

// documentPath resolves a scope to its document path.
func (s *Store) documentPath(scope Scope) (string, error) {
	switch scope {
	case ScopeGlobal:
		return filepath.Join(s.configRoot, documentName), nil
	case ScopeProject:
		if s.projectRoot == "" {
			return "", kerrors.ErrScopeNotConfigured
		}
		return filepath.Join(s.projectRoot, projectDirName, documentName), nil
	default:
		return "", fmt.Errorf("%w: %q", kerrors.ErrUnknownScope, scope)
	}
}

// keyPath returns the path of the encryption key file.
func (s *Store) keyPath() string {
	return filepath.Join(s.configRoot, keyFileName)
}
