// internal/app/system/normalize/normalize.go
//
// Normalization applied before persisting or querying user-supplied
// identity fields, so lookups behave the same regardless of input casing
// and stray whitespace.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Username trims a username. Case is preserved; usernames are displayed
// as entered and uniqueness is enforced on the exact string.
func Username(s string) string {
	return strings.TrimSpace(s)
}

// Name trims a display name, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}
