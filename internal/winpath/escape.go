package winpath

import "strings"

// Escape doubles every backslash so the path can be embedded verbatim
// inside a double-quoted C string literal. No other characters change.
func Escape(s string) string {
	return strings.ReplaceAll(s, `\`, `\\`)
}

// Unescape reverses Escape, collapsing each backslash pair to one.
func Unescape(s string) string {
	return strings.ReplaceAll(s, `\\`, `\`)
}
