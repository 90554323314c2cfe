package configs

import (
	"encoding/json"
	"fmt"
)

// ValidationResult aggregates the findings of Validate. Valid is true iff
// Errors is empty; warnings never affect validity.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate checks the health of the store's backing state. It never returns
// a Go error: every finding, including unexpected faults during the checks
// themselves, is stringified into Errors or Warnings.
//
// Checks:
//   - config root exists and is writable (errors)
//   - key file presence (warning when absent; it is created on first use)
//   - global document, when present, parses as a JSON object (error)
func (s *Store) Validate() ValidationResult {
	result := ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}

	if !s.blob.Exists(s.configRoot) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("config root %s does not exist", s.configRoot))
	} else if err := s.blob.Writable(s.configRoot); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("config root %s is not writable: %v", s.configRoot, err))
	}

	if !s.blob.Exists(s.keyPath()) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("encryption key file %s does not exist; it will be created on the first encrypted write", s.keyPath()))
	}

	if path, err := s.documentPath(ScopeGlobal); err == nil && s.blob.Exists(path) {
		data, err := s.blob.Read(path)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("global document %s is unreadable: %v", path, err))
		} else {
			var doc map[string]json.RawMessage
			if err := json.Unmarshal(data, &doc); err != nil {
				result.Errors = append(result.Errors,
					fmt.Sprintf("global document %s is not a valid JSON object: %v", path, err))
			}
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}
