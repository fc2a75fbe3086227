package value

import (
	"iter"

	"github.com/streamjson/jlex"
)

// Unbounded disables the nesting-depth check in Parse/ExactlyOne/Many.
const Unbounded = -1

// Parse parses one JSON value starting at the lexer's current position,
// without requiring that input be exhausted afterwards (so it can be
// called recursively, or repeatedly for a stream of concatenated values).
// depth is the number of further nesting levels allowed; pass Unbounded
// for no limit.
func Parse[S jlex.Source](lx *jlex.Lexer[S], depth int) (Value, error) {
	b, ok := lx.PeekNonSpace()
	if !ok {
		return Value{}, jlex.Error{Kind: jlex.KindTokenValue, Pos: lx.Pos()}
	}
	return parseFrom(lx, b, depth)
}

// ExactlyOne parses one JSON value and requires that input is exhausted
// (save for trailing whitespace) afterwards. This is the usual entry point
// for "parse this buffer/stream as a single JSON document".
func ExactlyOne[S jlex.Source](lx *jlex.Lexer[S], depth int) (Value, error) {
	return jlex.ExactlyOne(lx, func(b byte) (Value, error) {
		return parseFrom(lx, b, depth)
	})
}

// Many returns an iterator over a sequence of whitespace-separated JSON
// values with no overall wrapper (as in concatenated-JSON / JSON Lines
// input). Iteration stops, yielding a final error, at the first malformed
// value; it stops cleanly with no further yields once input is exhausted.
func Many[S jlex.Source](lx *jlex.Lexer[S]) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		for {
			b, ok := lx.PeekNonSpace()
			if !ok {
				return
			}
			v, err := parseFrom(lx, b, Unbounded)
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

func parseFrom[S jlex.Source](lx *jlex.Lexer[S], first byte, depth int) (Value, error) {
	switch jlex.Classify(first) {
	case jlex.ClassLetter:
		lit, err := lx.NullOrBool()
		if err != nil {
			return Value{}, err
		}
		switch lit {
		case jlex.LiteralNull:
			return Value{Kind: KindNull}, nil
		case jlex.LiteralTrue:
			return Value{Kind: KindBool, Bool: true}, nil
		default:
			return Value{Kind: KindBool, Bool: false}, nil
		}

	case jlex.ClassDigit, jlex.ClassMinus:
		neg := jlex.Classify(first) == jlex.ClassMinus
		num, parts, err := lx.NumCapture(neg)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindNumber, Num: num, Parts: parts}, nil

	case jlex.ClassQuote:
		lx.Take()
		s, err := lx.StrDecoded()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindString, Str: s}, nil

	case jlex.ClassArrayStart:
		lx.Take()
		d, err := stepDepth(depth, lx.Pos())
		if err != nil {
			return Value{}, err
		}
		var arr []Value
		err = lx.Sequence(']', func(b byte) error {
			v, err := parseFrom(lx, b, d)
			if err != nil {
				return err
			}
			arr = append(arr, v)
			return nil
		})
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindArray, Array: arr}, nil

	case jlex.ClassObjectStart:
		lx.Take()
		d, err := stepDepth(depth, lx.Pos())
		if err != nil {
			return Value{}, err
		}
		var obj []Member
		err = lx.Sequence('}', func(b byte) error {
			key, err := jlex.StringColon(lx, b, lx.StrDecoded)
			if err != nil {
				return err
			}
			vb, ok := lx.PeekNonSpace()
			if !ok {
				return jlex.Error{Kind: jlex.KindTokenValue, Pos: lx.Pos()}
			}
			v, err := parseFrom(lx, vb, d)
			if err != nil {
				return err
			}
			obj = append(obj, Member{Key: key, Value: v})
			return nil
		})
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindObject, Object: obj}, nil

	default:
		return Value{}, jlex.Error{Kind: jlex.KindTokenValue, Pos: lx.Pos()}
	}
}

func stepDepth(depth, pos int) (int, error) {
	if depth == Unbounded {
		return Unbounded, nil
	}
	if depth <= 0 {
		return 0, jlex.Error{Kind: jlex.KindDepth, Pos: pos}
	}
	return depth - 1, nil
}
