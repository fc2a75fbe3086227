package jlex

// NextByteIsDigit reports whether the byte immediately following the
// lexer's current position is an ASCII digit, without consuming it.
//
// The number lexer stops consuming digits as soon as a leading zero is
// taken, rather than enforcing strict JSON's (0|[1-9]\d*) rule that a
// multi-digit number may not start with '0': "007" lexes as three
// separate number tokens "0", "0" and "7" rather than failing or being
// read as one token. A caller that requires strict conformance can call
// NextByteIsDigit right after a NumCapture/NumIgnore whose Parts.Zero is
// non-nil and at offset 0 (i.e. the number began with a bare "0") and
// treat a true result as a conformance violation.
func (lx *Lexer[S]) NextByteIsDigit() bool {
	b, ok := lx.src.peekNext()
	return ok && b >= '0' && b <= '9'
}
