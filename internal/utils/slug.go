package utils

import (
	"strings"
	"unicode"
)

// Slugify derives a URL slug from a product name. Non-alphanumeric runs
// collapse to a single dash; anything outside ASCII letters and digits is
// dropped rather than transliterated.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
