package jlex_test

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/streamjson/jlex"
)

// TestZeroCopyCapturesInBufferMode asserts that NumCapture and StrRaw
// return subslices of the original input buffer in buffer mode, not
// copies. unsafe.SliceData is used here, in test code only, purely to
// compare backing-array identity; production code never uses unsafe.
func TestZeroCopyCapturesInBufferMode(t *testing.T) {
	buf := []byte(`-123.5 "hello\nworld" rest`)
	base := unsafe.SliceData(buf)

	lx := jlex.NewBuffer(buf)
	num, _, err := lx.NumCapture(true)
	if err != nil {
		t.Fatal(err)
	}
	if unsafe.SliceData(num) != base {
		t.Fatalf("NumCapture result is not backed by the original buffer")
	}

	lx.SkipWhitespace()
	lx.Take() // opening quote
	raw, err := lx.StrRaw()
	if err != nil {
		t.Fatal(err)
	}
	// The raw capture starts just past the opening quote, not at buf[0].
	start := strings.IndexByte(string(buf), '"') + 1
	if unsafe.SliceData(raw) != &buf[start] {
		t.Fatalf("StrRaw result is not backed by the original buffer")
	}
}

// TestStreamCapturesAreOwnedCopies is the stream-mode counterpart: there is
// no backing buffer to slice into, so every capture must be its own
// allocation, safe to retain past the next lexer call.
func TestStreamCapturesAreOwnedCopies(t *testing.T) {
	lx := jlex.NewStream(strings.NewReader(`-123.5 rest`))
	num, _, err := lx.NumCapture(true)
	if err != nil {
		t.Fatal(err)
	}
	if string(num) != "-123.5" {
		t.Fatalf("got %q", num)
	}
	// Consuming more input must not retroactively change num's contents.
	snapshot := append([]byte(nil), num...)
	lx.SkipWhitespace()
	lx.Take()
	lx.Take()
	if string(num) != string(snapshot) {
		t.Fatalf("captured slice was mutated by later reads: now %q, was %q", num, snapshot)
	}
}
