package connector

import (
	"encoding/xml"
	"io"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// Tag event stream consumed by the parser. Sources hide the actual XML
// reader, parser only needs start and end tags, attribute lookup and
// character data.

type EventKind int

const (
	EventStartElement EventKind = iota + 1
	EventEndElement
	EventCharData
)

func (k EventKind) String() string {
	switch k {
	case EventStartElement:
		return "start"
	case EventEndElement:
		return "end"
	case EventCharData:
		return "text"
	default:
		return "unknown"
	}
}

// Attr is an attribute of start element, Name is local (xml:lang is "lang").
type Attr struct {
	Name  string
	Value string
}

type Event struct {
	Kind  EventKind
	Name  string
	Attrs []Attr
	Text  string
	// Line is 1-based source line when known, 0 otherwise.
	Line int
}

// Attr looks attribute up by local name.
func (e *Event) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// TokenSource produces events in document order and returns io.EOF when
// the stream is exhausted.
type TokenSource interface {
	Next() (Event, error)
}

type decoderSource struct {
	dec *xml.Decoder
}

// NewDecoderSource streams events from r. Declared legacy encodings are
// converted to UTF-8, comments, processing instructions and DOCTYPE are
// skipped. Tag matching is left to the parser.
func NewDecoderSource(r io.Reader) TokenSource {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	return &decoderSource{dec: dec}
}

func (s *decoderSource) Next() (Event, error) {
	for {
		tok, err := s.dec.RawToken()
		if err != nil {
			return Event{}, err
		}
		line, _ := s.dec.InputPos()
		switch t := tok.(type) {
		case xml.StartElement:
			ev := Event{Kind: EventStartElement, Name: t.Name.Local, Line: line}
			if len(t.Attr) > 0 {
				ev.Attrs = make([]Attr, 0, len(t.Attr))
				for _, a := range t.Attr {
					if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
						continue
					}
					ev.Attrs = append(ev.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
				}
			}
			return ev, nil
		case xml.EndElement:
			return Event{Kind: EventEndElement, Name: t.Name.Local, Line: line}, nil
		case xml.CharData:
			return Event{Kind: EventCharData, Text: string(t), Line: line}, nil
		}
	}
}

// NewDocumentSource replays already loaded DOM as event stream.
func NewDocumentSource(doc *etree.Document) TokenSource {
	s := &sliceSource{}
	if doc != nil {
		for _, tok := range doc.Child {
			if el, ok := tok.(*etree.Element); ok {
				s.events = flatten(s.events, el)
			}
		}
	}
	return s
}

func flatten(events []Event, el *etree.Element) []Event {
	ev := Event{Kind: EventStartElement, Name: el.Tag}
	for _, a := range el.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		ev.Attrs = append(ev.Attrs, Attr{Name: a.Key, Value: a.Value})
	}
	events = append(events, ev)
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			events = flatten(events, t)
		case *etree.CharData:
			events = append(events, Event{Kind: EventCharData, Text: t.Data})
		}
	}
	return append(events, Event{Kind: EventEndElement, Name: el.Tag})
}

// sliceSource replays prepared events, mostly useful for tests and
// programmatic producers.
type sliceSource struct {
	events []Event
	pos    int
}

// NewEventSource returns source replaying events in order.
func NewEventSource(events ...Event) TokenSource {
	return &sliceSource{events: events}
}

func (s *sliceSource) Next() (Event, error) {
	if s.pos >= len(s.events) {
		return Event{}, io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}
