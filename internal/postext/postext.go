// Package postext renders source-line/caret error displays that account
// for East-Asian wide and fullwidth runes, so a caret still lines up
// visually under the offending column even when the line mixes narrow
// and wide characters.
package postext

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// RuneWidth returns the terminal column width of r: 0 for non-graphic
// runes, 2 for East-Asian wide or fullwidth runes, 1 for everything else
// (ambiguous-width runes are treated as narrow, since that's the common case
// outside CJK locales).
func RuneWidth(r rune) int {
	if !unicode.IsGraphic(r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	default:
		return 1
	}
}

// Width computes the rendered column width of a line (or line prefix).
func Width(s []byte) int {
	w := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRune(s[i:])
		i += size
		w += RuneWidth(r)
	}
	return w
}

// Caret renders line followed by a second line with a caret ('^') under
// the byte offset col, matching the appearance db47h/lex's
// ExampleFile_GetLineBytes produces for error reporting.
func Caret(line []byte, col int) string {
	if col > len(line) {
		col = len(line)
	}
	var b strings.Builder
	b.Write(line)
	b.WriteByte('\n')
	for i := 0; i < Width(line[:col]); i++ {
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	return b.String()
}
