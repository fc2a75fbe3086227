package jlex

import "unicode/utf8"

// strState is the state of the shared string scanner used by StrIgnore and
// StrRaw. The decoded tier (StrDecoded) has a different shape (it needs to
// know where unescaped runs start and end, to validate and copy them in one
// piece) and is implemented separately below, sharing only the escape
// recognizer.
type strState int

const (
	strNormal strState = iota
	strEscapeLeader
	strUnicode
)

type strMachine struct {
	state  strState
	hexPos int
}

// step advances the machine by one byte. done reports that the closing
// quote was just consumed. kind is zero when b was accepted with no error.
func (m *strMachine) step(b byte) (done bool, kind Kind, bad byte) {
	switch m.state {
	case strNormal:
		switch {
		case b == '"':
			return true, 0, 0
		case b == '\\':
			m.state = strEscapeLeader
		case b <= 0x1F:
			return false, KindStrControl, b
		}
	case strEscapeLeader:
		if b == 'u' {
			m.state = strUnicode
			m.hexPos = 0
		} else if isLiteralEscapeLeader(b) {
			m.state = strNormal
		} else {
			return false, KindStrEscapeInvalidKind, b
		}
	case strUnicode:
		if !isHexDigit(b) {
			return false, KindStrEscapeInvalidHex, b
		}
		m.hexPos++
		if m.hexPos == 4 {
			m.state = strNormal
		}
	}
	return false, 0, 0
}

// StrIgnore lexes a string and discards it entirely, without allocating.
// The opening '"' must already have been consumed.
func (lx *Lexer[S]) StrIgnore() error {
	var m strMachine
	for {
		b, ok := lx.src.takeNext()
		if !ok {
			return Error{Kind: KindStrEOF, Pos: lx.Pos()}
		}
		done, kind, bad := m.step(b)
		if kind != 0 {
			return Error{Kind: kind, Pos: lx.Pos(), Byte: bad}
		}
		if done {
			return nil
		}
	}
}

// StrRaw lexes a string and returns its content bytes exactly as written,
// including any escape sequences verbatim (they are validated for
// structure but not decoded). The opening '"' must already have been
// consumed. In buffer mode the result is a subslice of the original input.
func (lx *Lexer[S]) StrRaw() ([]byte, error) {
	lx.src.startCapture(nil)
	var m strMachine
	for {
		b, ok := lx.src.takeNext()
		if !ok {
			lx.src.finishCapture()
			return nil, Error{Kind: KindStrEOF, Pos: lx.Pos()}
		}
		done, kind, bad := m.step(b)
		if kind != 0 {
			lx.src.finishCapture()
			return nil, Error{Kind: kind, Pos: lx.Pos(), Byte: bad}
		}
		if done {
			raw := lx.src.finishCapture()
			return raw[:len(raw)-1], nil
		}
	}
}

// stringEnd reports whether b terminates an unescaped run: the closing
// quote, the start of an escape, or a bare control byte.
func stringEnd(b byte) bool {
	return b == '"' || b == '\\' || b <= 0x1F
}

// StrDecoded lexes a string and returns its fully decoded content as a Go
// string. The opening '"' must already have been consumed. Each contiguous
// run of unescaped bytes is UTF-8 validated and copied as-is; each escape
// is decoded by the escape recognizer and appended as a rune. Unlike the
// buffer-mode fast path available in the original this was ported from
// (which can hand back a borrowed &str when a string contains no escapes
// at all), Go's string type always requires a copy from a byte slice
// unless produced via unsafe, which production code here does not use; so
// this tier always allocates, even for an escape-free string. The raw tier
// above is the one that stays allocation-free in buffer mode.
func (lx *Lexer[S]) StrDecoded() (string, error) {
	var out []byte
	for {
		lx.src.startCapture(nil)
		for {
			pb, ok := lx.src.peekNext()
			if !ok {
				lx.src.finishCapture()
				return "", Error{Kind: KindStrEOF, Pos: lx.Pos()}
			}
			if stringEnd(pb) {
				break
			}
			lx.src.takeNext()
		}
		run := lx.src.finishCapture()
		if len(run) > 0 {
			if !utf8.Valid(run) {
				return "", Error{Kind: KindStrUTF8, Pos: lx.Pos()}
			}
			out = append(out, run...)
		}
		term, ok := lx.src.takeNext()
		if !ok {
			return "", Error{Kind: KindStrEOF, Pos: lx.Pos()}
		}
		switch {
		case term == '"':
			return string(out), nil
		case term == '\\':
			r, err := lx.decodeEscapeSeq()
			if err != nil {
				return "", err
			}
			var rb [utf8.UTFMax]byte
			n := utf8.EncodeRune(rb[:], r)
			out = append(out, rb[:n]...)
		default:
			return "", Error{Kind: KindStrControl, Pos: lx.Pos(), Byte: term}
		}
	}
}
