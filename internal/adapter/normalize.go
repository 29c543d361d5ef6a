// Package adapter selects between the hosted model providers.
package adapter

import (
	"strings"
	"unicode/utf8"
)

// dashReplacer substitutes the typographic dashes models like to emit with
// their portable ASCII forms.
var dashReplacer = strings.NewReplacer(
	"–", "-",  // EN DASH
	"—", "--", // EM DASH
)

// NormalizeResponse re-encodes response text into valid UTF-8, substituting
// the replacement marker for any byte sequence that cannot be represented,
// then rewrites EN DASH to "-" and EM DASH to "--". It never fails and is
// idempotent: malformed input is repaired, not rejected.
func NormalizeResponse(text string) string {
	text = strings.ToValidUTF8(text, string(utf8.RuneError))
	return dashReplacer.Replace(text)
}
