package workflows

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ai-builder/ai-builder/internal/audit"
	"github.com/ai-builder/ai-builder/internal/configs"
	kerrors "github.com/ai-builder/ai-builder/internal/errors"
)

// ImportOptions configures the import workflow.
type ImportOptions struct {
	// Scope is the configuration scope to import into.
	Scope configs.Scope

	// InputPath is the file to import.
	InputPath string

	// Format is the file format. If empty, it is inferred from the
	// InputPath extension, defaulting to JSON.
	Format Format
}

// ImportResult contains the outcome of an import operation.
type ImportResult struct {
	// KeysApplied is the number of keys written to the store.
	KeysApplied int

	// KeysSkipped is the number of placeholder values skipped.
	KeysSkipped int

	// TotalKeys is the number of keys in the input file.
	TotalKeys int

	// Format is the format that was read.
	Format Format
}

// Import reads a flat key-to-value mapping from a file and stores every
// value via the configuration store, re-deriving whether to encrypt from
// each key name. Placeholder values from a previous export are skipped.
//
// Returns ErrFileNotFound if the input file doesn't exist and
// ErrUnsupportedFormat for an unknown format.
func Import(ctx context.Context, store *configs.Store, opts ImportOptions) (*ImportResult, error) {
	if _, err := os.Stat(opts.InputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, opts.InputPath)
	}

	format := opts.Format
	if format == "" {
		format = detectFormat(opts.InputPath)
	}

	data, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	values, err := unmarshalValues(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}

	applied, skipped, err := store.Import(values, opts.Scope)
	if err != nil {
		return nil, fmt.Errorf("importing into scope %s: %w", opts.Scope, err)
	}

	entry := audit.New("import")
	entry.Scope = string(opts.Scope)
	entry.InputPath = opts.InputPath
	entry.Format = string(format)
	entry.KeysApplied = applied
	entry.KeysSkipped = skipped
	audit.Log(store.ConfigRoot(), entry)

	return &ImportResult{
		KeysApplied: applied,
		KeysSkipped: skipped,
		TotalKeys:   len(values),
		Format:      format,
	}, nil
}

// unmarshalValues parses a key-to-value mapping in the given format.
func unmarshalValues(data []byte, format Format) (map[string]any, error) {
	values := make(map[string]any)

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &values); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &values); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", kerrors.ErrUnsupportedFormat, format)
	}

	return values, nil
}
