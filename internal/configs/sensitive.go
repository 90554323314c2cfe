package configs

import "strings"

// sensitiveWords are the substrings that mark a key as holding secret
// content. Matching is case-insensitive on the full key name.
var sensitiveWords = []string{
	"password",
	"token",
	"secret",
	"key",
	"credential",
	"api_key",
	"api_secret",
	"private_key",
	"auth_token",
}

// IsSensitiveKey reports whether values stored under key should be
// encrypted at rest. It is a heuristic on the key name, not a type system:
// "api_key" and "db.password" match, "cli.verbose" does not.
func IsSensitiveKey(key string) bool {
	lowered := strings.ToLower(key)
	for _, word := range sensitiveWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}
