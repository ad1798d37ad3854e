// internal/app/system/inputval/inputval.go
//
// Request-edge validation for identity fields. These checks gate what gets
// as far as the stores; the stores still enforce uniqueness.
package inputval

import (
	"net/mail"
	"strings"
)

const (
	MinPasswordLength = 6
	MaxUsernameLength = 32
)

// IsValidEmail reports whether s parses as a bare RFC 5322 address.
// Display-name forms ("Name <user@host>") are rejected.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}

// IsValidUsername reports whether s is a usable username: non-empty after
// trimming, within length, no interior whitespace.
func IsValidUsername(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxUsernameLength {
		return false
	}
	return !strings.ContainsAny(s, " \t\n")
}

// IsValidPassword reports whether the password meets the minimum length.
func IsValidPassword(s string) bool {
	return len(s) >= MinPasswordLength
}
