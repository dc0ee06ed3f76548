package connector

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ParseError is returned for any failure during parsing. No partial tree is
// ever returned together with it.
type ParseError struct {
	Kind ParseErrorKind
	// Element is the offending tag, empty for end of document.
	Element string
	Line    int
	Err     error
}

// Sentinels to be used with errors.Is.
var (
	ErrUnexpectedElement       = &ParseError{Kind: ParseErrorKindUnexpectedElement}
	ErrUnexpectedEndTag        = &ParseError{Kind: ParseErrorKindUnexpectedEndTag}
	ErrUnexpectedEndOfDocument = &ParseError{Kind: ParseErrorKindUnexpectedEndOfDocument}
	ErrInvalidValue            = &ParseError{Kind: ParseErrorKindInvalidValue}
	ErrStream                  = &ParseError{Kind: ParseErrorKindStream}
)

func (e *ParseError) Error() string {
	var b strings.Builder
	switch e.Kind {
	case ParseErrorKindUnexpectedElement:
		fmt.Fprintf(&b, "unexpected element: %s", e.Element)
	case ParseErrorKindUnexpectedEndTag:
		fmt.Fprintf(&b, "unexpected end tag: %s", e.Element)
	case ParseErrorKindUnexpectedEndOfDocument:
		b.WriteString("unexpected end of document")
	case ParseErrorKindInvalidValue:
		fmt.Fprintf(&b, "invalid value of %s", e.Element)
	default:
		b.WriteString("unable to read descriptor")
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches any ParseError of the same kind, so sentinels work regardless of
// element and line.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// ValidationError reports semantically incomplete tree. It is produced only by
// Validate, never by parsing.
type ValidationError struct {
	Element string
	Err     error
	// Causes explains failed alternatives, may be nil.
	Causes error
}

var (
	ErrNoResourceAdapter      = errors.New("no metadata for resource adapter")
	ErrInvalidResourceAdapter = errors.New("invalid metadata for resource adapter")
	ErrIncompleteDefinition   = errors.New("incomplete connection definition")
	ErrIncompleteInbound      = errors.New("incomplete inbound resource adapter")
)

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Element, e.Err)
	if e.Causes != nil {
		causes := multierr.Errors(e.Causes)
		parts := make([]string, 0, len(causes))
		for _, c := range causes {
			parts = append(parts, c.Error())
		}
		msg += " (" + strings.Join(parts, "; ") + ")"
	}
	return msg
}

func (e *ValidationError) Unwrap() []error {
	return append([]error{e.Err}, multierr.Errors(e.Causes)...)
}
