package configs

import "sort"

// defaultConfig is the table seeded into global scope by ApplyDefaults.
var defaultConfig = map[string]any{
	"cli.verbose":        false,
	"cli.color":          true,
	"output.format":      "text",
	"builder.provider":   "openai",
	"builder.model":      "gpt-4o",
	"builder.max_tokens": 4096,
	"telemetry.enabled":  false,
}

// ApplyDefaults seeds the default configuration into global scope, writing
// only keys that are currently absent. Existing values are never
// overwritten. Returns the number of keys seeded.
func (s *Store) ApplyDefaults() (int, error) {
	doc, err := s.readDocument(ScopeGlobal)
	if err != nil {
		return 0, err
	}

	keys := make([]string, 0, len(defaultConfig))
	for key := range defaultConfig {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	seeded := 0
	for _, key := range keys {
		if _, ok := doc[key]; ok {
			continue
		}
		if err := s.Set(key, defaultConfig[key], ScopeGlobal); err != nil {
			return seeded, err
		}
		seeded++
	}

	return seeded, nil
}
