package workflows

import (
	"fmt"
	"path/filepath"
	"strings"

	kerrors "github.com/ai-builder/ai-builder/internal/errors"
)

// Format is a file serialization format for export and import.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a format name from a flag value.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (expected json, toml, or yaml)", kerrors.ErrUnsupportedFormat, name)
	}
}

// detectFormat infers a format from a file extension, defaulting to JSON
// for unknown or missing extensions.
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
