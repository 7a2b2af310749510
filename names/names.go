// Package names derives algorithmic character names and loads the
// per-block name files emitted by ucd-builder.
package names

import (
	"fmt"
	"strconv"
	"strings"
)

// Key returns the lookup key for a code point in a name file:
// uppercase hex, zero-padded to at least four digits.
func Key(cp rune) string {
	return fmt.Sprintf("%04X", cp)
}

// Hex returns the unpadded uppercase hex digits of a code point. The
// UCD embeds these in algorithmic name templates and derived names,
// without the padding used for lookup keys.
func Hex(cp rune) string {
	return strings.ToUpper(strconv.FormatInt(int64(cp), 16))
}

// ExpandTemplate substitutes every '#' placeholder in a UCD name
// template with the code point's unpadded uppercase hex digits.
func ExpandTemplate(name string, cp rune) string {
	return strings.ReplaceAll(name, "#", Hex(cp))
}

// Derive computes the algorithmic name of a code point, for the ranges
// whose names the UCD defines by rule rather than by listing: Hangul
// syllables and CJK unified ideographs. Returns false outside those
// ranges.
func Derive(cp rune) (string, bool) {
	if name, ok := HangulSyllableName(cp); ok {
		return name, ok
	}
	return CJKIdeographName(cp)
}
