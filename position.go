// Copyright 2017-2018 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package jlex

import (
	"fmt"
	"unicode/utf8"
)

// Position describes a human-readable line:column location, recovered from
// one of jlex.Error's absolute byte offsets.
//
// Unlike the File this was adapted from, which tracks line boundaries
// incrementally as a dedicated token.Pos type while scanning a persistent
// io.Reader, jlex never retains the input once a parse finishes: a
// BufferSource's caller keeps its own slice, and a StreamSource discards
// bytes as they're consumed. PositionIn therefore recomputes line/column on
// demand from whatever input the caller still has on hand (typically the
// same buffer it fed to NewBuffer, or a line saved for error display). This
// is a linear scan rather than the original's binary search over
// incrementally recorded line starts, which is the right trade here: it
// only runs on the cold error-reporting path, never in the scanning loop.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number, counted in runes
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionIn computes the 1-based line and column of byte offset pos
// within src. pos is clamped to len(src) so that EOF errors (whose
// position is one past the last valid byte) still resolve to a sensible
// location.
func PositionIn(src []byte, pos int) Position {
	if pos > len(src) {
		pos = len(src)
	}
	if pos < 0 {
		pos = 0
	}
	line, col := 1, 1
	for i := 0; i < pos; {
		r, size := utf8.DecodeRune(src[i:])
		if size == 0 {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		i += size
	}
	return Position{Line: line, Column: col}
}
