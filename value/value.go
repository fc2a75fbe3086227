// Package value builds a generic JSON document tree (Value) on top of the
// jlex lexing layers, for callers who want a parsed document rather than
// their own hand-rolled traversal.
package value

import "github.com/streamjson/jlex"

// Kind tags the variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is a JSON value. It is a concrete tagged-union struct rather than
// an interface-based sum type: a single Kind field plus one field per
// variant, which keeps equality, zero values and switch-based traversal
// straightforward for callers.
type Value struct {
	Kind Kind

	Bool bool

	// Num is the number's captured textual representation (never
	// interpreted as int or float by this package); Parts locates its
	// decimal point and exponent, if any.
	Num   []byte
	Parts jlex.Parts

	Str string

	Array  []Value
	Object []Member
}

// Member is one key/value pair of an object, kept in source order:
// duplicate keys are preserved rather than merged, matching how the
// surrounding JSON text actually reads.
type Member struct {
	Key   string
	Value Value
}

// Null, Bool, String, Array and Object are convenience constructors, mostly
// useful for tests and for hand-building documents to serialize with
// WriteTo.

func Null() Value            { return Value{Kind: KindNull} }
func Bool(b bool) Value      { return Value{Kind: KindBool, Bool: b} }
func String(s string) Value  { return Value{Kind: KindString, Str: s} }
func Array(vs ...Value) Value { return Value{Kind: KindArray, Array: vs} }
func Object(ms ...Member) Value {
	return Value{Kind: KindObject, Object: ms}
}
