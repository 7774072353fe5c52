// Package codegen compiles a schema model into Valibot validator source
// text: one type alias plus one validator declaration per named top-level
// schema.
package codegen

import (
	"fmt"
	"strings"
)

// Emitter accumulates generated source text line by line.
type Emitter struct {
	buf strings.Builder
}

// NewEmitter creates a new source emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Line writes a single line of code.
func (e *Emitter) Line(format string, args ...any) {
	e.buf.WriteString(fmt.Sprintf(format, args...))
	e.buf.WriteByte('\n')
}

// Raw writes a raw string without a trailing newline.
func (e *Emitter) Raw(s string) {
	e.buf.WriteString(s)
}

// Blank writes an empty line.
func (e *Emitter) Blank() {
	e.buf.WriteByte('\n')
}

// String returns the accumulated source code.
func (e *Emitter) String() string {
	return e.buf.String()
}

// Len returns the current byte length.
func (e *Emitter) Len() int {
	return e.buf.Len()
}
