// internal/app/system/sanitize/sanitize.go
package sanitize

import "github.com/microcosm-cc/bluemonday"

// Free-text fields (team descriptions, scrim descriptions, application
// messages) are stored and echoed back as plain text, so markup is
// stripped entirely rather than filtered.
var strict = bluemonday.StrictPolicy()

// Text strips all HTML from user-supplied free text.
func Text(s string) string {
	return strict.Sanitize(s)
}
