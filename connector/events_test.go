package connector

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func collect(t *testing.T, src TokenSource) []Event {
	t.Helper()
	var events []Event
	for {
		ev, err := src.Next()
		if errors.Is(err, io.EOF) {
			return events
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		events = append(events, ev)
	}
}

func TestDecoderSourceSkipsMarkup(t *testing.T) {
	xml := `<?xml version="1.0"?>
<!DOCTYPE connector SYSTEM "x.dtd">
<!-- comment -->
<connector xmlns="urn:x" xmlns:xsi="urn:xsi" version="1.5"><?pi data?><vendor-name xml:lang="en">A</vendor-name></connector>`
	events := collect(t, NewDecoderSource(strings.NewReader(xml)))

	var starts []Event
	for _, ev := range events {
		if ev.Kind == EventStartElement {
			starts = append(starts, ev)
		}
	}
	if len(starts) != 2 {
		t.Fatalf("expected 2 start elements, got %d", len(starts))
	}
	root := starts[0]
	if len(root.Attrs) != 1 {
		t.Fatalf("namespace declarations must be dropped, got %+v", root.Attrs)
	}
	if v, ok := root.Attr(attrVersion); !ok || v != "1.5" {
		t.Fatalf("expected version attribute, got %q %t", v, ok)
	}
	if v, _ := starts[1].Attr(attrLang); v != "en" {
		t.Fatalf("xml:lang must be found by local name, got %q", v)
	}
	if root.Line != 4 {
		t.Fatalf("expected root on line 4, got %d", root.Line)
	}
}

func TestDecoderSourceCharset(t *testing.T) {
	xml := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><connector version=\"1.5\"><vendor-name>Soci\xe9t\xe9</vendor-name></connector>"
	c, err := ParseReader(strings.NewReader(xml), testLogger(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.VendorName.String() != "Société" {
		t.Fatalf("expected decoded vendor name, got %q", c.VendorName.String())
	}
}

func TestDocumentSourceMatchesDecoder(t *testing.T) {
	xml := `<connector version="1.6" id="c"><module-name>m</module-name><resourceadapter><resourceadapter-class>X</resourceadapter-class></resourceadapter></connector>`
	fromDecoder := collect(t, NewDecoderSource(strings.NewReader(xml)))
	fromDoc := collect(t, NewDocumentSource(mustDocument(t, xml)))

	if len(fromDecoder) != len(fromDoc) {
		t.Fatalf("event count differs: %d vs %d", len(fromDecoder), len(fromDoc))
	}
	for i := range fromDecoder {
		a, b := fromDecoder[i], fromDoc[i]
		if a.Kind != b.Kind || a.Name != b.Name || a.Text != b.Text || len(a.Attrs) != len(b.Attrs) {
			t.Fatalf("event %d differs: %s %q vs %s %q", i, a.Kind, a.Name, b.Kind, b.Name)
		}
	}
}

func TestDocumentSourceNil(t *testing.T) {
	if events := collect(t, NewDocumentSource(nil)); len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}
