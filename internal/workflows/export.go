package workflows

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ai-builder/ai-builder/internal/audit"
	"github.com/ai-builder/ai-builder/internal/configs"
	kerrors "github.com/ai-builder/ai-builder/internal/errors"
	"github.com/ai-builder/ai-builder/internal/storage"
)

// ExportOptions configures the export workflow.
type ExportOptions struct {
	// Scope is the configuration scope to export.
	Scope configs.Scope

	// OutputPath is the path for the output file.
	// If empty, defaults to ai-builder-config-YYYY-MM-DD.<format>.
	OutputPath string

	// Format is the file format. If empty, it is inferred from the
	// OutputPath extension, defaulting to JSON.
	Format Format

	// IncludeEncrypted exports the raw ciphertext envelopes of encrypted
	// entries instead of the placeholder. Export never decrypts.
	IncludeEncrypted bool
}

// ExportResult contains the outcome of an export operation.
type ExportResult struct {
	// KeyCount is the number of keys exported.
	KeyCount int

	// EncryptedCount is the number of encrypted entries among them.
	EncryptedCount int

	// OutputPath is the path of the created file.
	OutputPath string

	// Format is the format that was written.
	Format Format
}

// Export writes a scope's settings to a file as a flat key-to-value mapping.
//
// Encrypted entries leave as the placeholder string unless
// opts.IncludeEncrypted is set, in which case the stored ciphertext envelope
// is written instead. Plaintext secrets never reach the file either way.
//
// Returns ErrScopeNotConfigured if the scope is project and no project root
// is set, and ErrUnsupportedFormat for an unknown format.
func Export(ctx context.Context, store *configs.Store, opts ExportOptions) (*ExportResult, error) {
	outputPath := opts.OutputPath
	format := opts.Format

	if outputPath == "" {
		if format == "" {
			format = FormatJSON
		}
		outputPath = fmt.Sprintf("ai-builder-config-%s.%s", time.Now().Format("2006-01-02"), format)
	}
	if format == "" {
		format = detectFormat(outputPath)
	}

	values, err := store.Export(opts.Scope, opts.IncludeEncrypted)
	if err != nil {
		return nil, fmt.Errorf("exporting scope %s: %w", opts.Scope, err)
	}

	entries, err := store.List(opts.Scope)
	if err != nil {
		return nil, fmt.Errorf("listing scope %s: %w", opts.Scope, err)
	}
	encrypted := 0
	for _, entry := range entries {
		if entry.Encrypted {
			encrypted++
		}
	}

	data, err := marshalValues(values, format)
	if err != nil {
		return nil, fmt.Errorf("serializing export: %w", err)
	}

	// Exports may carry ciphertext; keep them owner-only like the documents.
	if err := storage.NewDiskStore().Write(outputPath, data, 0600); err != nil {
		return nil, fmt.Errorf("writing export file: %w", err)
	}

	entry := audit.New("export")
	entry.Scope = string(opts.Scope)
	entry.OutputPath = outputPath
	entry.Format = string(format)
	audit.Log(store.ConfigRoot(), entry)

	return &ExportResult{
		KeyCount:       len(values),
		EncryptedCount: encrypted,
		OutputPath:     outputPath,
		Format:         format,
	}, nil
}

// marshalValues serializes a key-to-value mapping in the given format.
func marshalValues(values map[string]any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(values); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(values)
	default:
		return nil, fmt.Errorf("%w: %q", kerrors.ErrUnsupportedFormat, format)
	}
}
