package connector

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"rardesc/common"
)

func TestMergeConnectionDefinitionsByFactoryClass(t *testing.T) {
	base := mustParse(t, descriptor(outbound(definition("A"))))
	override := mustParse(t, descriptor(outbound(definition("A", "UserName", "Password"))))

	merged := base.Merge(override)
	cds := merged.ResourceAdapter.Outbound.ConnectionDefinitions()
	if len(cds) != 1 {
		t.Fatalf("expected single merged definition, got %d", len(cds))
	}
	props := cds[0].ConfigProperties()
	if len(props) != 2 || props[0].Name.String() != "UserName" || props[1].Name.String() != "Password" {
		t.Fatalf("expected both override properties, got %+v", props)
	}
}

func TestMergeAppendsUnmatchedDefinitions(t *testing.T) {
	base := mustParse(t, descriptor(outbound(definition("A"))))
	override := mustParse(t, descriptor(outbound(definition("B"), definition("A", "X"))))

	cds := base.Merge(override).ResourceAdapter.Outbound.ConnectionDefinitions()
	if len(cds) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(cds))
	}
	if cds[0].ManagedConnectionFactoryClass.String() != "A" || len(cds[0].ConfigProperties()) != 1 {
		t.Fatalf("A must stay in place with merged property, got %+v", cds[0])
	}
	if cds[1].ManagedConnectionFactoryClass.String() != "B" {
		t.Fatalf("B must be appended, got %q", cds[1].ManagedConnectionFactoryClass.String())
	}
}

func TestMergeUntypedDefinition(t *testing.T) {
	base := mustParse(t, descriptor(outbound(definition(""), definition("A"))))
	override := mustParse(t, descriptor(outbound(definition("A", "X"))))

	core, logs := observer.New(zapcore.WarnLevel)
	cds := base.Merge(override, WithMergeLogger(zap.New(core))).ResourceAdapter.Outbound.ConnectionDefinitions()
	if len(cds) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(cds))
	}
	// first receiver definition without class wins the match
	if cds[0].ManagedConnectionFactoryClass.String() != "A" || len(cds[0].ConfigProperties()) != 1 {
		t.Fatalf("expected untyped definition to absorb override, got %+v", cds[0])
	}
	if len(cds[1].ConfigProperties()) != 0 {
		t.Fatalf("typed definition must be untouched")
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one warning about untyped match, got %d", logs.Len())
	}

	cds = base.Merge(override, WithUntypedMatch(common.UntypedMatchStrict)).ResourceAdapter.Outbound.ConnectionDefinitions()
	if len(cds) != 2 || cds[0].ManagedConnectionFactoryClass != nil {
		t.Fatalf("strict match keeps untyped definition untyped, got %+v", cds[0])
	}
	if len(cds[1].ConfigProperties()) != 1 {
		t.Fatalf("strict match merges with equal class")
	}
}

func TestMergeReceiverWins(t *testing.T) {
	a := mustParse(t, `<connector version="1.6" id="a"><module-name>a</module-name><vendor-name>Acme</vendor-name></connector>`)
	b := mustParse(t, `<connector version="1.7" id="b" metadata-complete="true"><module-name>b</module-name><eis-type>EIS</eis-type></connector>`)

	ab := a.Merge(b)
	ba := b.Merge(a)
	if ab.Equal(ba) {
		t.Fatalf("merge must not be commutative for conflicting scalars")
	}
	if ab.ModuleName.String() != "a" || ba.ModuleName.String() != "b" {
		t.Fatalf("receiver value must survive: %q %q", ab.ModuleName.String(), ba.ModuleName.String())
	}
	if ab.VendorName.String() != "Acme" || ab.EISType.String() != "EIS" {
		t.Fatalf("absent scalars must be filled from other")
	}
	if ab.ID != "" {
		t.Fatalf("merged connector has no id, got %q", ab.ID)
	}
	if ab.Version != Version16 || ba.Version != Version17 {
		t.Fatalf("merged version is the receiver's")
	}
	if !ab.MetadataComplete {
		t.Fatalf("metadata complete is ORed")
	}
}

func TestMergeConfigPropertiesByName(t *testing.T) {
	a := mustParse(t, descriptor(`<config-property><config-property-name>Host</config-property-name><config-property-value>a</config-property-value></config-property>`))
	b := mustParse(t, descriptor(`<config-property><config-property-name>Host</config-property-name><config-property-type>java.lang.String</config-property-type><config-property-value>b</config-property-value></config-property>
		<config-property><config-property-name>Port</config-property-name></config-property>`))

	props := a.Merge(b).ResourceAdapter.ConfigProperties()
	if len(props) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(props))
	}
	if props[0].Value.String() != "a" || props[0].Type.String() != "java.lang.String" {
		t.Fatalf("expected receiver value and other's type, got %+v", props[0])
	}
	if props[1].Name.String() != "Port" {
		t.Fatalf("expected appended Port, got %q", props[1].Name.String())
	}
}

func TestMergeKeyedLists(t *testing.T) {
	a := mustParse(t, descriptor(`<inbound-resourceadapter><messageadapter><messagelistener>
			<messagelistener-type>javax.jms.MessageListener</messagelistener-type>
		</messagelistener></messageadapter></inbound-resourceadapter>
		<adminobject><adminobject-interface>javax.jms.Queue</adminobject-interface><adminobject-class>Q</adminobject-class></adminobject>
		<security-permission><security-permission-spec>p1</security-permission-spec></security-permission>`))
	b := mustParse(t, descriptor(`<inbound-resourceadapter><messageadapter>
		<messagelistener>
			<messagelistener-type>javax.jms.MessageListener</messagelistener-type>
			<activationspec><activationspec-class>AS</activationspec-class></activationspec>
		</messagelistener>
		<messagelistener><messagelistener-type>other.Listener</messagelistener-type></messagelistener>
		</messageadapter></inbound-resourceadapter>
		<adminobject><adminobject-interface>javax.jms.Queue</adminobject-interface><adminobject-class>Q</adminobject-class>
			<config-property><config-property-name>Name</config-property-name></config-property></adminobject>
		<adminobject><adminobject-interface>javax.jms.Topic</adminobject-interface><adminobject-class>T</adminobject-class></adminobject>
		<security-permission><security-permission-spec>p1</security-permission-spec></security-permission>
		<security-permission><security-permission-spec>p2</security-permission-spec></security-permission>`))

	ra := a.Merge(b).ResourceAdapter
	ml := ra.Inbound.MessageAdapter.MessageListeners
	if len(ml) != 2 || ml[0].Activationspec == nil || ml[0].Activationspec.Class.String() != "AS" {
		t.Fatalf("listeners must merge by type, got %d", len(ml))
	}
	aos := ra.AdminObjects()
	if len(aos) != 2 || len(aos[0].ConfigProperties()) != 1 {
		t.Fatalf("admin objects must merge by interface and class, got %d", len(aos))
	}
	if len(ra.SecurityPermissions) != 2 {
		t.Fatalf("equal permissions must not repeat, got %d", len(ra.SecurityPermissions))
	}
}

func TestMergeTransactionAndReauthentication(t *testing.T) {
	a := NewOutboundAdapter(nil)
	b := NewOutboundAdapter(nil)
	b.ForceTransactionSupport(TransactionSupportXATransaction)
	b.ReauthenticationSupport = true

	m := a.Merge(b)
	if !m.TransactionSupportSet() || m.TransactionSupport() != TransactionSupportXATransaction {
		t.Fatalf("transaction support must come from other when receiver has none")
	}
	if !m.ReauthenticationSupport {
		t.Fatalf("reauthentication support is ORed")
	}

	a.ForceTransactionSupport(TransactionSupportNoTransaction)
	if m := a.Merge(b); m.TransactionSupport() != TransactionSupportNoTransaction {
		t.Fatalf("receiver transaction support wins, got %s", m.TransactionSupport())
	}
}

func TestMergeNilOperands(t *testing.T) {
	c := mustParseFixture(t, "ra15.xml")
	if m := c.Merge(nil); !m.Equal(c) || m == c {
		t.Fatalf("merge with nil must return copy of receiver")
	}
	var none *Connector
	if m := none.Merge(c); !m.Equal(c) || m == c {
		t.Fatalf("nil receiver must return copy of other")
	}
	var ra *ResourceAdapter
	if m := ra.Merge(c.ResourceAdapter); !m.Equal(c.ResourceAdapter) {
		t.Fatalf("nil adapter receiver must take other")
	}
}

func TestMergeDoesNotShareState(t *testing.T) {
	a := mustParseFixture(t, "ra15.xml")
	b := mustParseFixture(t, "ra17.xml")
	before := a.Copy()

	m := a.Merge(b)
	m.ResourceAdapter.ForceConfigProperties(nil)
	m.ResourceAdapter.Outbound.ForceConnectionDefinitions(nil)
	m.ResourceAdapter.AdminObjects()[0].ForceConfigProperties(nil)

	if !a.Equal(before) {
		t.Fatalf("changing merged tree must not affect input")
	}
	if len(b.ResourceAdapter.Outbound.ConnectionDefinitions()) != 1 {
		t.Fatalf("changing merged tree must not affect other input")
	}
}

func TestMergeSeveralUntypedDefinitions(t *testing.T) {
	base := mustParse(t, descriptor(outbound(definition(""), definition(""))))
	override := mustParse(t, descriptor(outbound(definition("B", "p1"), definition("C", "p2"))))

	core, logs := observer.New(zapcore.WarnLevel)
	cds := base.Merge(override, WithMergeLogger(zap.New(core))).ResourceAdapter.Outbound.ConnectionDefinitions()
	if len(cds) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(cds))
	}
	for i, want := range []struct{ class, prop string }{{"B", "p1"}, {"C", "p2"}} {
		props := cds[i].ConfigProperties()
		if cds[i].ManagedConnectionFactoryClass.String() != want.class || len(props) != 1 || props[0].Name.String() != want.prop {
			t.Fatalf("definition %d: expected %s(%s), got class %q with %d properties", i, want.class, want.prop, cds[i].ManagedConnectionFactoryClass.String(), len(props))
		}
	}
	if logs.Len() != 2 {
		t.Fatalf("expected warning per untyped match, got %d", logs.Len())
	}

	// repeated class lands on the already typed definition
	override = mustParse(t, descriptor(outbound(definition("B", "p1"), definition("B", "p2"))))
	cds = base.Merge(override).ResourceAdapter.Outbound.ConnectionDefinitions()
	if len(cds) != 2 || len(cds[0].ConfigProperties()) != 2 || !cds[1].ManagedConnectionFactoryClass.IsAbsent() {
		t.Fatalf("expected B(p1, p2) and untouched untyped definition, got %d definitions", len(cds))
	}

	cds = base.Merge(override, WithUntypedMatch(common.UntypedMatchStrict)).ResourceAdapter.Outbound.ConnectionDefinitions()
	if len(cds) != 4 {
		t.Fatalf("strict match appends every typed definition, got %d", len(cds))
	}
	for i, cd := range cds[:2] {
		if !cd.ManagedConnectionFactoryClass.IsAbsent() || len(cd.ConfigProperties()) != 0 {
			t.Fatalf("strict match must keep untyped definition %d untouched", i)
		}
	}
}

func TestMergeConfigPropertyDiscoveredFields(t *testing.T) {
	a := &ConfigProperty{Name: NewText(elConfigPropertyName, "Host")}
	b := &ConfigProperty{Name: NewText(elConfigPropertyName, "Host"), Mandatory: true, AttachedClass: "com.acme.RA"}

	for _, tt := range []struct {
		name string
		got  *ConfigProperty
	}{{"receiver lacks", a.Merge(b)}, {"other lacks", b.Merge(a)}} {
		if !tt.got.Mandatory || tt.got.AttachedClass != "com.acme.RA" {
			t.Fatalf("%s: expected mandatory attached property, got %+v", tt.name, tt.got)
		}
	}

	a.AttachedClass = "com.acme.Other"
	if got := a.Merge(b); got.AttachedClass != "com.acme.Other" || !got.Mandatory {
		t.Fatalf("receiver class must win while mandatory is ORed, got %+v", got)
	}
	if got := a.Merge(&ConfigProperty{Name: NewText(elConfigPropertyName, "Host")}); got.Mandatory {
		t.Fatalf("mandatory must stay false when neither side sets it")
	}
	if a.Mandatory || b.AttachedClass != "com.acme.RA" {
		t.Fatalf("merge modified its inputs")
	}
}
