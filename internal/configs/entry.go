package configs

import "time"

// Scope is the namespace a configuration entry lives in.
type Scope string

const (
	// ScopeGlobal holds per-user settings under the config root.
	ScopeGlobal Scope = "global"

	// ScopeProject holds per-project settings under <projectRoot>/.ai-builder.
	ScopeProject Scope = "project"
)

// Entry is a single stored configuration setting.
//
// Value holds either the plain JSON value or, when Encrypted is true, the
// ciphertext envelope string. CreatedAt is set on first write of a key and
// preserved across updates; UpdatedAt advances on every write.
type Entry struct {
	Key       string    `json:"key"`
	Value     any       `json:"value"`
	Scope     Scope     `json:"scope"`
	Encrypted bool      `json:"encrypted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Document maps configuration keys to their entries. One document is
// persisted per scope, always read and written whole.
type Document map[string]Entry
