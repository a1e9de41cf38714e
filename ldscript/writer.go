package ldscript

import (
	"fmt"
	"io"
	"strings"
)

// scriptWriter is a line sink for linker script text. Write errors stick;
// once one occurs every later call is a no-op and fin returns it.
type scriptWriter struct {
	w     io.Writer
	err   error
	depth int
}

func newScriptWriter(w io.Writer) *scriptWriter {
	return &scriptWriter{w: w}
}

func (s *scriptWriter) line(format string, args ...any) {
	if s.err != nil {
		return
	}
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	_, s.err = io.WriteString(s.w, strings.Repeat("\t", s.depth)+text+"\n")
}

func (s *scriptWriter) blank() {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, "\n")
}

// open writes the header line and opening brace of a braced block and
// increases the indent. close undoes it, appending suffix after the brace.
func (s *scriptWriter) open(format string, args ...any) {
	s.line(format, args...)
	s.line("{")
	s.depth++
}

func (s *scriptWriter) close(suffix string) {
	s.depth--
	if suffix != "" {
		s.line("} %s", suffix)
	} else {
		s.line("}")
	}
}

func (s *scriptWriter) fin() error {
	return s.err
}

// quote wraps a section or symbol name in double quotes so names carrying
// bank-tag punctuation stay parseable.
func quote(name string) string {
	return `"` + name + `"`
}
