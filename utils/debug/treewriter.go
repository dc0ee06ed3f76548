// Package debug has helpers producing human readable dumps of descriptor
// trees.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

const defaultIndent = "  "

// TreeWriter accumulates indented lines. Zero depth is the left margin.
type TreeWriter struct {
	w      *strings.Builder
	indent string
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w:      &strings.Builder{},
		indent: defaultIndent,
	}
}

// WithIndent changes indentation unit, empty unit resets it to default.
func (tw *TreeWriter) WithIndent(unit string) *TreeWriter {
	if unit == "" {
		unit = defaultIndent
	}
	tw.indent = unit
	return tw
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

func (tw *TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(tw.indent)
	}
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes label with quoted value so that control characters and
// surrounding spaces stay visible.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Field is TextBlock which skips absent values.
func (tw *TreeWriter) Field(depth int, label string, value string, present bool) {
	if !present {
		return
	}
	tw.TextBlock(depth, label, value)
}

func encodeText(raw string) string {
	if raw == "" {
		return `""`
	}
	return strconv.Quote(raw)
}
