package connector

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

const testdataDir = "../testdata"

func testLogger(t *testing.T) *zap.Logger {
	t.Helper()
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(testdataDir, name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return string(data)
}

func mustParse(t *testing.T, xml string, opts ...ParseOption) *Connector {
	t.Helper()
	c, err := ParseReader(strings.NewReader(xml), testLogger(t), opts...)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return c
}

func mustParseFixture(t *testing.T, name string) *Connector {
	t.Helper()
	return mustParse(t, readFixture(t, name))
}

func mustDocument(t *testing.T, xml string) *etree.Document {
	t.Helper()

	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("read xml: %v", err)
	}
	if doc.Root() == nil {
		t.Fatalf("xml has no root element")
	}
	return doc
}

// descriptor wraps resourceadapter content into 1.7 connector.
func descriptor(ra string) string {
	return `<connector xmlns="http://xmlns.jcp.org/xml/ns/javaee" version="1.7">
  <vendor-name>Acme</vendor-name>
  <eis-type>Test</eis-type>
  <resourceadapter-version>1.0</resourceadapter-version>
  <resourceadapter>` + ra + `</resourceadapter>
</connector>`
}

func definition(factory string, props ...string) string {
	var b strings.Builder
	b.WriteString("<connection-definition>")
	if factory != "" {
		b.WriteString("<managedconnectionfactory-class>" + factory + "</managedconnectionfactory-class>")
	}
	for _, p := range props {
		b.WriteString("<config-property><config-property-name>" + p + "</config-property-name>" +
			"<config-property-type>java.lang.String</config-property-type></config-property>")
	}
	b.WriteString(`<connectionfactory-interface>javax.resource.cci.ConnectionFactory</connectionfactory-interface>
<connectionfactory-impl-class>com.acme.CFImpl</connectionfactory-impl-class>
<connection-interface>javax.resource.cci.Connection</connection-interface>
<connection-impl-class>com.acme.ConnImpl</connection-impl-class>
</connection-definition>`)
	return b.String()
}

func outbound(defs ...string) string {
	return "<outbound-resourceadapter>" + strings.Join(defs, "") +
		"<transaction-support>NoTransaction</transaction-support><reauthentication-support>false</reauthentication-support>" +
		"</outbound-resourceadapter>"
}
