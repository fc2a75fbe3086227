package postext_test

import (
	"strings"
	"testing"

	"github.com/streamjson/jlex/internal/postext"
)

func TestRuneWidth(t *testing.T) {
	cases := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'世', 2},
		{'界', 2},
		{'＃', 2}, // fullwidth number sign
	}
	for _, c := range cases {
		if got := postext.RuneWidth(c.r); got != c.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", c.r, got, c.want)
		}
	}
}

func TestCaretAlignsUnderWideRunes(t *testing.T) {
	line := []byte("＃〄 - Hello 世界 1")
	out := postext.Caret(line, len(line))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[1], "^") {
		t.Fatalf("expected caret line to end in ^, got %q", lines[1])
	}
	if postext.Width(line) != len(lines[1])-1 {
		t.Fatalf("caret column %d does not match line width %d", len(lines[1])-1, postext.Width(line))
	}
}
