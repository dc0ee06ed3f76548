package connector

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

func TestRenderRoundTrip(t *testing.T) {
	for _, name := range []string{"ra10.xml", "ra15.xml", "ra16.xml", "ra17.xml"} {
		t.Run(name, func(t *testing.T) {
			c := mustParseFixture(t, name)
			out, err := c.XML()
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			again := mustParse(t, out)
			if !again.Equal(c) {
				t.Fatalf("round trip differs\n%s\n--- rendered ---\n%s", again, out)
			}
		})
	}
}

func TestRenderNamespaces(t *testing.T) {
	tests := []struct {
		file     string
		ns       string
		complete bool
	}{
		{"ra15.xml", "http://java.sun.com/xml/ns/j2ee", false},
		{"ra16.xml", "http://java.sun.com/xml/ns/javaee", true},
		{"ra17.xml", "http://xmlns.jcp.org/xml/ns/javaee", true},
	}
	for _, tt := range tests {
		doc := mustParseFixture(t, tt.file).Document(2)
		root := doc.Root()
		if root == nil || root.Tag != elConnector {
			t.Fatalf("%s: missing root", tt.file)
		}
		if got := root.SelectAttrValue("xmlns", ""); got != tt.ns {
			t.Fatalf("%s: expected namespace %q, got %q", tt.file, tt.ns, got)
		}
		if a := root.SelectAttr(attrMetadataComplete); (a != nil) != tt.complete {
			t.Fatalf("%s: metadata-complete presence mismatch", tt.file)
		}
	}
}

func TestRender10Layout(t *testing.T) {
	c := mustParseFixture(t, "ra10.xml")
	c.ResourceAdapter.Outbound.ForceConnectionDefinitions(append(
		c.ResourceAdapter.Outbound.ConnectionDefinitions(),
		NewConnectionDefinition(NewText(elManagedConnectionFactory, "second"), nil)))

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "-//Sun Microsystems, Inc.//DTD Connector 1.0//EN") {
		t.Fatalf("expected DTD declaration:\n%s", out)
	}
	if strings.Contains(out, "second") {
		t.Fatalf("only first connection definition is rendered in 1.0:\n%s", out)
	}
	if strings.Contains(out, elOutboundResourceAdapter) || strings.Contains(out, elResourceAdapterVersion) {
		t.Fatalf("1.0 layout inlines outbound part:\n%s", out)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(out); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	var order []string
	for _, el := range doc.Root().ChildElements() {
		order = append(order, el.Tag)
	}
	want := "display-name description vendor-name spec-version eis-type version license resourceadapter"
	if got := strings.Join(order, " "); got != want {
		t.Fatalf("unexpected connector layout %q", got)
	}
	if v := doc.Root().FindElement(elSpecVersion).Text(); v != "1.0" {
		t.Fatalf("unexpected spec-version %q", v)
	}
}

func TestRender10AlwaysWritesTransactionSupport(t *testing.T) {
	c := mustParse(t, `<connector><resourceadapter><managedconnectionfactory-class>A</managedconnectionfactory-class></resourceadapter></connector>`)
	doc := c.Document(-1)
	ra := doc.Root().FindElement(elResourceAdapter)
	if ts := ra.FindElement(elTransactionSupport); ts == nil || ts.Text() != "NoTransaction" {
		t.Fatalf("expected NoTransaction in 1.0 output")
	}
	if rs := ra.FindElement(elReauthenticationSupport); rs == nil || rs.Text() != "false" {
		t.Fatalf("expected reauthentication-support in 1.0 output")
	}

	c = mustParse(t, descriptor(`<outbound-resourceadapter></outbound-resourceadapter>`))
	doc = c.Document(-1)
	if doc.FindElement("//"+elTransactionSupport) != nil {
		t.Fatalf("undeclared transaction support is not rendered in later generations")
	}
}

func TestRenderKeepsIdsAndLang(t *testing.T) {
	c := mustParse(t, `<connector version="1.6" id="c"><description xml:lang="fr" id="d">x</description></connector>`)
	doc := c.Document(0)
	d := doc.Root().FindElement(elDescription)
	if d.SelectAttrValue("id", "") != "d" || d.SelectAttrValue("xml:lang", "") != "fr" {
		t.Fatalf("description attributes lost: %v", d.Attr)
	}
	if doc.Root().SelectAttrValue("id", "") != "c" {
		t.Fatalf("connector id lost")
	}
}

func TestRenderNode(t *testing.T) {
	parent := etree.NewElement("root")
	cp := &ConfigProperty{Name: NewText(elConfigPropertyName, "a"), Ignore: &Flag{Value: true}}
	el := cp.Render(parent)
	if el.Parent() != parent || el.Tag != elConfigProperty {
		t.Fatalf("Render must attach element to parent")
	}
	if el.FindElement(elConfigPropertyIgnore).Text() != "true" {
		t.Fatalf("flag not rendered")
	}
	if el.FindElement(elConfigPropertyValue) != nil {
		t.Fatalf("absent value must not be rendered")
	}
}
