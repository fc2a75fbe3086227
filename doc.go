// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
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

/*
Package jlex provides a layered, allocation-conscious JSON lexer.

It is split into five layers, from the bottom up: a byte source (Source,
BufferSource, StreamSource), an escape recognizer, a token layer (whitespace
skipping, literal and sequence driving), a number lexer and a string lexer.
None of these layers builds a tree of values; they exist so that a caller
can drive its own traversal over JSON input with as few allocations as it
can get away with. The jlex/value subpackage builds a generic tree (Value)
on top of them for callers who just want a parsed document.

Buffer mode vs. stream mode

Lexer is generic over its Source so that the hot scanning loops are
monomorphized per concrete source type rather than dispatched through an
interface on every byte:

	lx := jlex.NewBuffer(data)  // *Lexer[*BufferSource]
	lx := jlex.NewStream(r)     // *Lexer[*StreamSource]

Buffer mode lexes directly over a caller-owned []byte: captured numbers and
raw strings are plain subslices of that buffer, with no allocation at all.
Stream mode lexes one byte at a time from an io.Reader (wrapping it in a
bufio.Reader if it isn't already an io.ByteReader) and owns freshly
allocated scratch space for each capture, since there is no backing buffer
to slice into. Both modes agree on every successful parse and on every
error's kind and position. Independently of the mode, the string-ignore and
raw tiers skip the UTF-8 validation that the string-decode tier always
performs; the agreement tests document this divergence between tiers.

Numbers and strings are not interpreted

NumCapture and NumIgnore never parse a number into an int or a float: they
return its captured text (or nothing, for NumIgnore) and a Parts record
describing where the decimal point and exponent marker fall, if any. This
leaves the choice of numeric representation (int64, big.Float, a
arbitrary-precision decimal, ...) entirely up to the caller. Likewise,
StrDecoded fully resolves escapes into a Go string but performs no
further interpretation of the result.

Errors

Every operation in this package and in jlex/value returns an Error, a
small comparable struct carrying a Kind and the absolute byte offset at
which the problem was detected. Two failures at the same position with the
same Kind compare equal with ==, which the differential buffer/stream
fuzzing relies on.
*/
package jlex
