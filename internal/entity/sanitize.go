package entity

import "strings"

// SanitizeToken reduces an opaque remote token to ASCII letters and digits,
// preserving character order. Tokens end up inside generated shell commands
// and URL path segments, so anything outside [0-9A-Za-z] is dropped.
func SanitizeToken(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for _, r := range token {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
