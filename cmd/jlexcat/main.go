// Command jlexcat reads a single JSON document and writes back its compact
// serialization. It exists to exercise jlex/value end-to-end, not as a
// pretty-printer or a path-filtering tool: there is no indentation option
// and no query language.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/streamjson/jlex"
	"github.com/streamjson/jlex/internal/postext"
	"github.com/streamjson/jlex/value"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jlexcat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	depth := fs.Int("depth", 0, "maximum nesting depth (0 = unbounded)")
	stream := fs.Bool("stream", false, "lex from stdin one byte at a time instead of buffering it first")
	logLevel := fs.String("log-level", "info", "zerolog level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "jlexcat: %v\n", err)
		return 2
	}
	logger := zerolog.New(stderr).Level(level).With().Timestamp().Logger()
	log.Logger = logger

	d := value.Unbounded
	if *depth > 0 {
		d = *depth
	}

	var (
		v    value.Value
		perr error
	)
	if *stream {
		lx := jlex.NewStream(stdin)
		v, perr = value.ExactlyOne(lx, d)
	} else {
		buf, err := io.ReadAll(stdin)
		if err != nil {
			log.Error().Err(err).Msg("reading input")
			return 1
		}
		lx := jlex.NewBuffer(buf)
		v, perr = value.ExactlyOne(lx, d)
		if perr != nil {
			reportError(stderr, buf, perr)
			return 1
		}
	}
	if perr != nil {
		log.Error().Err(perr).Msg("parsing input")
		return 1
	}

	if _, err := v.WriteTo(stdout); err != nil {
		log.Error().Err(err).Msg("writing output")
		return 1
	}
	fmt.Fprintln(stdout)
	return 0
}

// reportError prints a line:col-annotated error, in buffer mode only,
// where the full input is still available to slice a line out of.
func reportError(stderr io.Writer, buf []byte, err error) {
	e, ok := err.(jlex.Error)
	if !ok {
		fmt.Fprintf(stderr, "jlexcat: %v\n", err)
		return
	}
	pos := jlex.PositionIn(buf, e.Pos)
	lineStart, lineEnd := e.Pos, e.Pos
	for lineStart > 0 && buf[lineStart-1] != '\n' {
		lineStart--
	}
	for lineEnd < len(buf) && buf[lineEnd] != '\n' {
		lineEnd++
	}
	fmt.Fprintf(stderr, "jlexcat: %d:%d: %s\n", pos.Line, pos.Column, e.Kind)
	fmt.Fprintln(stderr, postext.Caret(buf[lineStart:lineEnd], e.Pos-lineStart))
}
