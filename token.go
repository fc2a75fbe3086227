package jlex

// Class is the coarse first-byte classification the value constructor (and
// the discarding traversal in ignore.go) dispatch on. It deliberately
// carries no payload: the byte itself is still sitting unconsumed at the
// front of the source, ready for whichever branch handles it to consume.
type Class int

const (
	ClassInvalid Class = iota
	ClassLetter        // 'n', 't' or 'f': null/true/false
	ClassDigit
	ClassMinus
	ClassQuote
	ClassArrayStart
	ClassObjectStart
	ClassArrayEnd
	ClassObjectEnd
	ClassComma
	ClassColon
)

// Classify categorizes a single unconsumed lookahead byte.
func Classify(b byte) Class {
	switch {
	case b == 'n' || b == 't' || b == 'f':
		return ClassLetter
	case b >= '0' && b <= '9':
		return ClassDigit
	case b == '-':
		return ClassMinus
	case b == '"':
		return ClassQuote
	case b == '[':
		return ClassArrayStart
	case b == '{':
		return ClassObjectStart
	case b == ']':
		return ClassArrayEnd
	case b == '}':
		return ClassObjectEnd
	case b == ',':
		return ClassComma
	case b == ':':
		return ClassColon
	default:
		return ClassInvalid
	}
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// SkipWhitespace discards input up to the first non-whitespace byte.
func (lx *Lexer[S]) SkipWhitespace() {
	lx.src.skipUntil(func(b byte) bool { return !isWhitespace(b) })
}

// PeekNonSpace skips whitespace and peeks at the following byte.
func (lx *Lexer[S]) PeekNonSpace() (byte, bool) {
	lx.SkipWhitespace()
	return lx.src.peekNext()
}

// Literal is the result of NullOrBool.
type Literal int

const (
	LiteralNull Literal = iota
	LiteralTrue
	LiteralFalse
)

// NullOrBool consumes a JSON token that starts with a letter ('n', 't' or
// 'f') and matches it against "null", "true" or "false". The leading byte
// has not been consumed yet; NullOrBool consumes it itself along with the
// rest of the literal.
func (lx *Lexer[S]) NullOrBool() (Literal, error) {
	pos := lx.Pos()
	b, ok := lx.src.takeNext()
	if !ok {
		return 0, Error{Kind: KindTokenValue, Pos: pos}
	}
	switch b {
	case 'n':
		if lx.src.stripPrefix("ull") {
			return LiteralNull, nil
		}
	case 't':
		if lx.src.stripPrefix("rue") {
			return LiteralTrue, nil
		}
	case 'f':
		if lx.src.stripPrefix("alse") {
			return LiteralFalse, nil
		}
	}
	return 0, Error{Kind: KindTokenValue, Pos: pos}
}

// Sequence drives a comma-separated, whitespace-tolerant sequence that ends
// at end (']' for arrays, '}' for objects). item is invoked once per
// element with the element's unconsumed first byte; it must fully consume
// exactly that one element.
func (lx *Lexer[S]) Sequence(end byte, item func(first byte) error) error {
	b, ok := lx.PeekNonSpace()
	if !ok {
		return Error{Kind: KindTokenValueOrEnd, Pos: lx.Pos()}
	}
	if b == end {
		lx.src.takeNext()
		return nil
	}
	for {
		if err := item(b); err != nil {
			return err
		}
		nb, ok := lx.PeekNonSpace()
		if !ok {
			return Error{Kind: KindTokenCommaOrEnd, Pos: lx.Pos()}
		}
		switch nb {
		case end:
			lx.src.takeNext()
			return nil
		case ',':
			lx.src.takeNext()
			vb, ok := lx.PeekNonSpace()
			if !ok {
				return Error{Kind: KindTokenValue, Pos: lx.Pos()}
			}
			b = vb
		default:
			return Error{Kind: KindTokenCommaOrEnd, Pos: lx.Pos()}
		}
	}
}

// StringColon parses an object key via key, then requires and consumes a
// following colon (whitespace-tolerant on both sides). first is the
// unconsumed lookahead byte that should be the opening quote.
func StringColon[S Source, T any](lx *Lexer[S], first byte, key func() (T, error)) (T, error) {
	var zero T
	if first != '"' {
		return zero, Error{Kind: KindTokenString, Pos: lx.Pos()}
	}
	lx.src.takeNext()
	k, err := key()
	if err != nil {
		return zero, err
	}
	b, ok := lx.PeekNonSpace()
	if !ok || b != ':' {
		return zero, Error{Kind: KindTokenColon, Pos: lx.Pos()}
	}
	lx.src.takeNext()
	return k, nil
}

// ExactlyOne runs fn on the single value found at the lexer's current
// position and then requires that input is exhausted (save for trailing
// whitespace). It is the primitive both IgnoreOne and value.ExactlyOne are
// built on.
func ExactlyOne[S Source, T any](lx *Lexer[S], fn func(first byte) (T, error)) (T, error) {
	var zero T
	b, ok := lx.PeekNonSpace()
	if !ok {
		return zero, Error{Kind: KindTokenValue, Pos: lx.Pos()}
	}
	v, err := fn(b)
	if err != nil {
		return zero, err
	}
	lx.SkipWhitespace()
	if _, ok := lx.src.peekNext(); ok {
		return zero, Error{Kind: KindTokenEOF, Pos: lx.Pos()}
	}
	return v, nil
}
