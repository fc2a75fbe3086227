package jlex

// Parts records where, within a number's captured textual representation,
// the interesting boundaries fall: where a lone leading zero was seen
// (Zero), where the decimal point is (Dot), and where the exponent marker
// is (Exp). Offsets are relative to the start of that textual
// representation, which includes any leading '-' the caller passed to
// NumCapture/NumIgnore.
//
// The lexer never interprets a number as a float or integer; Parts exists
// so a caller can do that itself (via strconv or math/big) without
// re-scanning the bytes.
type Parts struct {
	Zero *int
	Dot  *int
	Exp  *int
}

// IsInt reports whether the number has neither a fractional part nor an
// exponent.
func (p Parts) IsInt() bool { return p.Dot == nil && p.Exp == nil }

var negPrefix = []byte{'-'}

// numberBody runs the number state machine starting at the lexer's current
// position. prefixLen is the length of whatever prefix (a leading '-', or
// none) the caller already consumed and is folding into the offsets
// recorded in Parts.
//
// Accepted grammar: (0|\d+)(\.\d+)?([eE][+-]?\d+)?, not \d+(\.\d+)?(...)?:
// a leading zero consumes only that one digit and never loops for further
// digits, so a run of digits starting with '0' is lexed one digit at a
// time. "007" therefore lexes as three separate number tokens, "0", "0"
// and "7" — each call to numberBody stops as soon as its leading zero is
// taken, leaving the next digit for whatever calls numberBody again (the
// token layer's subsequent ValueOrEnd/CommaOrEnd check, Many, or a caller
// issuing repeated NumCapture/NumIgnore calls). Callers that need strict
// JSON conformance, which requires a lone "0" or "007" to be a single
// token and rejects the latter outright, can call NextByteIsDigit right
// after a Zero-tagged NumCapture/NumIgnore to detect and reject a digit
// immediately following a bare "0".
func (lx *Lexer[S]) numberBody(prefixLen int) (Parts, error) {
	var parts Parts
	n := prefixLen

	b, ok := lx.src.takeNext()
	if !ok || b < '0' || b > '9' {
		return Parts{}, Error{Kind: KindNumExpectedDigit, Pos: lx.Pos()}
	}
	if b == '0' {
		z := n
		parts.Zero = &z
		n++
	} else {
		n++
		for {
			pb, ok := lx.src.peekNext()
			if !ok || pb < '0' || pb > '9' {
				break
			}
			lx.src.takeNext()
			n++
		}
	}

	if pb, ok := lx.src.peekNext(); ok && pb == '.' {
		lx.src.takeNext()
		d := n
		parts.Dot = &d
		n++
		fb, ok := lx.src.peekNext()
		if !ok || fb < '0' || fb > '9' {
			return Parts{}, Error{Kind: KindNumExpectedDigit, Pos: lx.Pos()}
		}
		for {
			fb, ok := lx.src.peekNext()
			if !ok || fb < '0' || fb > '9' {
				break
			}
			lx.src.takeNext()
			n++
		}
	}

	if pb, ok := lx.src.peekNext(); ok && (pb == 'e' || pb == 'E') {
		lx.src.takeNext()
		e := n
		parts.Exp = &e
		n++
		if sb, ok := lx.src.peekNext(); ok && (sb == '+' || sb == '-') {
			lx.src.takeNext()
			n++
		}
		eb, ok := lx.src.peekNext()
		if !ok || eb < '0' || eb > '9' {
			return Parts{}, Error{Kind: KindNumExpectedDigit, Pos: lx.Pos()}
		}
		for {
			eb, ok := lx.src.peekNext()
			if !ok || eb < '0' || eb > '9' {
				break
			}
			lx.src.takeNext()
			n++
		}
	}

	return parts, nil
}

// NumIgnore lexes a number and discards its text, returning only Parts. If
// neg is true, a '-' sign has already been peeked by the caller (via
// Classify) and is consumed here as part of the number.
func (lx *Lexer[S]) NumIgnore(neg bool) (Parts, error) {
	n := 0
	if neg {
		lx.src.takeNext()
		n = 1
	}
	return lx.numberBody(n)
}

// NumCapture lexes a number and returns its captured textual
// representation together with Parts. In buffer mode the returned slice is
// a subslice of the original input (no allocation); in stream mode it is
// freshly allocated.
func (lx *Lexer[S]) NumCapture(neg bool) ([]byte, Parts, error) {
	var prefix []byte
	if neg {
		lx.src.takeNext()
		prefix = negPrefix
	}
	lx.src.startCapture(prefix)
	parts, err := lx.numberBody(len(prefix))
	if err != nil {
		lx.src.finishCapture()
		return nil, Parts{}, err
	}
	return lx.src.finishCapture(), parts, nil
}
