package connector

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// PropertyResolver looks up value for ${name} placeholders.
type PropertyResolver func(name string) (string, bool)

type ParseOption func(*parser)

// WithPropertyResolver enables placeholder substitution in boolean elements.
func WithPropertyResolver(fn PropertyResolver) ParseOption {
	return func(p *parser) {
		p.resolve = fn
	}
}

type parser struct {
	src     TokenSource
	log     *zap.Logger
	resolve PropertyResolver
	version Version
	// names of currently open elements
	open []string
}

// ParseReader parses descriptor streamed from r.
func ParseReader(r io.Reader, log *zap.Logger, opts ...ParseOption) (*Connector, error) {
	return Parse(NewDecoderSource(r), log, opts...)
}

// ParseDocument parses already loaded descriptor DOM.
func ParseDocument(doc *etree.Document, log *zap.Logger, opts ...ParseOption) (*Connector, error) {
	return Parse(NewDocumentSource(doc), log, opts...)
}

// Parse reads complete descriptor from src. Schema generation is selected by
// the version attribute of the root element, unknown or missing version is
// read as 1.0. The metadata-complete attribute of 1.6 and 1.7 is a strict
// boolean: anything but true or false (case-insensitive) is an invalid_value
// error rather than false.
func Parse(src TokenSource, log *zap.Logger, opts ...ParseOption) (*Connector, error) {
	if log == nil {
		log = zap.NewNop()
	}
	p := &parser{src: src, log: log.Named("parser")}
	for _, opt := range opts {
		opt(p)
	}

	var root Event
	for {
		ev, err := p.next()
		if err != nil {
			return nil, err
		}
		if ev.Kind == EventStartElement {
			root = ev
			break
		}
		if ev.Kind == EventEndElement {
			return nil, &ParseError{Kind: ParseErrorKindUnexpectedEndTag, Element: ev.Name, Line: ev.Line}
		}
	}
	if root.Name != elConnector {
		return nil, p.unexpected(&root)
	}

	declared, _ := root.Attr(attrVersion)
	switch declared {
	case "1.7":
		p.version = Version17
	case "1.6":
		p.version = Version16
	case "1.5":
		p.version = Version15
	default:
		p.version = Version10
	}
	p.log.Debug("Descriptor generation detected", zap.Stringer("version", p.version), zap.String("declared", declared))

	c, err := p.connector(&root)
	if err != nil {
		return nil, err
	}

	if dups := c.IDIndex().Duplicates(); len(dups) > 0 {
		p.log.Warn("Duplicate element ids", zap.Strings("ids", dups))
	}
	return c, nil
}

func (p *parser) connector(root *Event) (*Connector, error) {
	c := &Connector{Version: p.version, MetadataComplete: true}
	c.ID, _ = root.Attr(attrID)

	var rules []rule[*Connector]
	switch p.version {
	case Version10:
		rules = connectorRules10
	case Version15:
		rules = connectorRules15
	default:
		rules = connectorRules16
		c.MetadataComplete = false
		if v, ok := root.Attr(attrMetadataComplete); ok {
			b, err := parseBool(v, false)
			if err != nil {
				return nil, &ParseError{Kind: ParseErrorKindInvalidValue, Element: attrMetadataComplete, Line: root.Line, Err: err}
			}
			c.MetadataComplete = b
		}
	}
	if err := drive(p, elConnector, rules, c); err != nil {
		return nil, err
	}
	return c, nil
}

// rule binds legal child tag to the routine reading it into builder B.
type rule[B any] struct {
	tag   string
	apply func(p *parser, b B, ev *Event) error
}

func lookup[B any](rules []rule[B], tag string) *rule[B] {
	for i := range rules {
		if rules[i].tag == tag {
			return &rules[i]
		}
	}
	return nil
}

// drive consumes events up to and including the end tag of el. Child
// routines consume their own end tags.
func drive[B any](p *parser, el string, rules []rule[B], b B) error {
	for {
		ev, err := p.next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case EventStartElement:
			r := lookup(rules, ev.Name)
			if r == nil {
				return p.unexpected(&ev)
			}
			if err := r.apply(p, b, &ev); err != nil {
				return err
			}
		case EventEndElement:
			if ev.Name == el {
				return nil
			}
			if lookup(rules, ev.Name) != nil {
				continue
			}
			return &ParseError{Kind: ParseErrorKindUnexpectedEndTag, Element: ev.Name, Line: ev.Line}
		}
	}
}

// next returns the following event. End tags must close the innermost open
// element, so documents with stray or crossed end tags are rejected whatever
// the source.
func (p *parser) next() (Event, error) {
	ev, err := p.src.Next()
	if err == nil {
		switch ev.Kind {
		case EventStartElement:
			p.open = append(p.open, ev.Name)
		case EventEndElement:
			n := len(p.open)
			if n == 0 || p.open[n-1] != ev.Name {
				return Event{}, &ParseError{Kind: ParseErrorKindUnexpectedEndTag, Element: ev.Name, Line: ev.Line}
			}
			p.open = p.open[:n-1]
		}
		return ev, nil
	}
	if errors.Is(err, io.EOF) {
		return Event{}, &ParseError{Kind: ParseErrorKindUnexpectedEndOfDocument}
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return Event{}, err
	}
	return Event{}, &ParseError{Kind: ParseErrorKindStream, Err: err}
}

func (p *parser) unexpected(ev *Event) error {
	return &ParseError{Kind: ParseErrorKindUnexpectedElement, Element: ev.Name, Line: ev.Line}
}

// chars reads character data of the text element started by ev and returns
// it trimmed.
func (p *parser) chars(ev *Event) (string, error) {
	var b strings.Builder
	for {
		n, err := p.next()
		if err != nil {
			return "", err
		}
		switch n.Kind {
		case EventCharData:
			b.WriteString(n.Text)
		case EventStartElement:
			return "", p.unexpected(&n)
		case EventEndElement:
			if n.Name != ev.Name {
				return "", &ParseError{Kind: ParseErrorKindUnexpectedEndTag, Element: n.Name, Line: n.Line}
			}
			return strings.TrimSpace(b.String()), nil
		}
	}
}

func (p *parser) text(ev *Event) (*Text, error) {
	s, err := p.chars(ev)
	if err != nil {
		return nil, err
	}
	id, _ := ev.Attr(attrID)
	return &Text{Value: s, ID: id, Tag: ev.Name}, nil
}

func (p *parser) localized(ev *Event) (LocalizedText, error) {
	s, err := p.chars(ev)
	if err != nil {
		return LocalizedText{}, err
	}
	id, _ := ev.Attr(attrID)
	return LocalizedText{Value: s, Lang: p.lang(ev), ID: id, Tag: ev.Name}, nil
}

// lang returns xml:lang of the element. Generation 1.0 does not know it.
func (p *parser) lang(ev *Event) string {
	if p.version == Version10 {
		return ""
	}
	l, _ := ev.Attr(attrLang)
	if l != "" {
		if _, err := language.Parse(l); err != nil {
			p.log.Warn("Malformed language tag", zap.String("element", ev.Name), zap.String("lang", l), zap.Int("line", ev.Line), zap.Error(err))
		}
	}
	return l
}

func (p *parser) flag(ev *Event) (*Flag, error) {
	s, err := p.chars(ev)
	if err != nil {
		return nil, err
	}
	v, err := parseBool(p.substitute(s), true)
	if err != nil {
		return nil, &ParseError{Kind: ParseErrorKindInvalidValue, Element: ev.Name, Line: ev.Line, Err: err}
	}
	id, _ := ev.Attr(attrID)
	return &Flag{Value: v, ID: id}, nil
}

var errNotBoolean = errors.New("expected true or false")

func parseBool(s string, emptyIsTrue bool) (bool, error) {
	switch {
	case s == "" && emptyIsTrue:
		return true, nil
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	}
	return false, errNotBoolean
}

// substitute expands ${name} and ${name:default}. ${/} and ${:} are path and
// list separators. Unresolved placeholders without default are kept as is.
func (p *parser) substitute(s string) string {
	if p.resolve == nil || !strings.Contains(s, "${") {
		return s
	}
	var b strings.Builder
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			break
		}
		end := strings.IndexByte(s[start:], '}')
		if end < 0 {
			break
		}
		end += start
		b.WriteString(s[:start])
		key := s[start+2 : end]
		switch key {
		case "/":
			b.WriteByte(os.PathSeparator)
		case ":":
			b.WriteByte(os.PathListSeparator)
		default:
			name, def, hasDef := strings.Cut(key, ":")
			if v, ok := p.resolve(name); ok {
				b.WriteString(v)
			} else if hasDef {
				b.WriteString(def)
			} else {
				b.WriteString(s[start : end+1])
			}
		}
		s = s[end+1:]
	}
	b.WriteString(s)
	return b.String()
}

func (p *parser) transactionSupport(ev *Event) (TransactionSupport, string, error) {
	s, err := p.chars(ev)
	if err != nil {
		return 0, "", err
	}
	ts, err := ParseTransactionSupport(s)
	if err != nil {
		return 0, "", &ParseError{Kind: ParseErrorKindInvalidValue, Element: ev.Name, Line: ev.Line, Err: err}
	}
	id, _ := ev.Attr(attrID)
	return ts, id, nil
}

func (p *parser) credentialInterface(ev *Event) (CredentialInterface, string, error) {
	s, err := p.chars(ev)
	if err != nil {
		return 0, "", err
	}
	ci, err := ParseCredentialInterface(s)
	if err != nil {
		return 0, "", &ParseError{Kind: ParseErrorKindInvalidValue, Element: ev.Name, Line: ev.Line, Err: err}
	}
	id, _ := ev.Attr(attrID)
	return ci, id, nil
}
