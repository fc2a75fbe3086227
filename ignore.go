package jlex

// IgnoreOne parses exactly one JSON value starting at the lexer's current
// position and discards it, requiring no allocation beyond the string
// escape scratch space strMachine itself needs none of. It requires that
// input is exhausted (save for trailing whitespace) afterwards, same as
// value.ExactlyOne.
func (lx *Lexer[S]) IgnoreOne() error {
	_, err := ExactlyOne(lx, func(b byte) (struct{}, error) {
		return struct{}{}, lx.ignoreValue(b)
	})
	return err
}

// ignoreValue discards the value whose unconsumed first byte is first. It
// recurses without a depth bound, mirroring the ignore traversal this was
// grounded on, which likewise has no caller-facing nesting limit: the
// no-allocation use case is typically "skip a value I don't care about",
// where bounding depth buys little over just letting the call stack be the
// bound.
func (lx *Lexer[S]) ignoreValue(first byte) error {
	switch Classify(first) {
	case ClassLetter:
		_, err := lx.NullOrBool()
		return err
	case ClassDigit:
		_, err := lx.NumIgnore(false)
		return err
	case ClassMinus:
		_, err := lx.NumIgnore(true)
		return err
	case ClassQuote:
		lx.src.takeNext()
		return lx.StrIgnore()
	case ClassArrayStart:
		lx.src.takeNext()
		return lx.Sequence(']', lx.ignoreValue)
	case ClassObjectStart:
		lx.src.takeNext()
		return lx.Sequence('}', func(b byte) error {
			_, err := StringColon(lx, b, func() (struct{}, error) {
				return struct{}{}, lx.StrIgnore()
			})
			if err != nil {
				return err
			}
			vb, ok := lx.PeekNonSpace()
			if !ok {
				return Error{Kind: KindTokenValue, Pos: lx.Pos()}
			}
			return lx.ignoreValue(vb)
		})
	default:
		return Error{Kind: KindTokenValue, Pos: lx.Pos()}
	}
}
