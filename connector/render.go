package connector

import (
	"io"
	"strconv"

	"github.com/beevik/etree"
)

// Canonical serialization. Output follows schema element order, it is not
// byte exact copy of the parsed document.

const (
	xsiNamespace  = "http://www.w3.org/2001/XMLSchema-instance"
	doctype10     = `DOCTYPE connector PUBLIC "-//Sun Microsystems, Inc.//DTD Connector 1.0//EN" "http://java.sun.com/dtd/connector_1_0.dtd"`
	defaultIndent = 2
)

func addText(parent *etree.Element, tag string, t *Text) {
	if t == nil {
		return
	}
	el := parent.CreateElement(tag)
	setID(el, t.ID)
	el.SetText(t.Value)
}

func addLocalized(parent *etree.Element, tag string, list []LocalizedText) {
	for _, l := range list {
		el := parent.CreateElement(tag)
		setID(el, l.ID)
		if l.Lang != "" {
			el.CreateAttr("xml:lang", l.Lang)
		}
		el.SetText(l.Value)
	}
}

func addFlag(parent *etree.Element, tag string, f *Flag) {
	if f == nil {
		return
	}
	addBool(parent, tag, f.Value, f.ID)
}

func addBool(parent *etree.Element, tag string, v bool, id string) {
	el := parent.CreateElement(tag)
	setID(el, id)
	el.SetText(strconv.FormatBool(v))
}

func setID(el *etree.Element, id string) {
	if id != "" {
		el.CreateAttr(attrID, id)
	}
}

// Document builds complete descriptor document. Negative indent disables
// indentation.
func (c *Connector) Document(indent int) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	if c.Version == Version10 {
		doc.CreateDirective(doctype10)
	}
	c.Render(&doc.Element)
	if indent < 0 {
		doc.Indent(etree.NoIndent)
	} else {
		doc.Indent(indent)
	}
	return doc
}

func (c *Connector) WriteTo(w io.Writer) (int64, error) {
	return c.Document(defaultIndent).WriteTo(w)
}

func (c *Connector) XML() (string, error) {
	return c.Document(defaultIndent).WriteToString()
}

func (c *Connector) Render(parent *etree.Element) *etree.Element {
	if c.Version == Version10 {
		return c.render10(parent)
	}
	el := parent.CreateElement(elConnector)
	el.CreateAttr("xmlns", c.Version.Namespace())
	el.CreateAttr("xmlns:xsi", xsiNamespace)
	el.CreateAttr("xsi:schemaLocation", c.Version.SchemaLocation())
	el.CreateAttr(attrVersion, c.Version.String())
	if c.Version.HasMetadataComplete() {
		el.CreateAttr(attrMetadataComplete, strconv.FormatBool(c.MetadataComplete))
	}
	setID(el, c.ID)

	if c.Version.HasModuleName() {
		addText(el, elModuleName, c.ModuleName)
	}
	addLocalized(el, elDescription, c.Descriptions)
	addLocalized(el, elDisplayName, c.DisplayNames)
	for i := range c.Icons {
		c.Icons[i].Render(el)
	}
	addText(el, elVendorName, c.VendorName)
	addText(el, elEISType, c.EISType)
	addText(el, elResourceAdapterVersion, c.ResourceAdapterVersion)
	if c.License != nil {
		c.License.Render(el)
	}
	if c.ResourceAdapter != nil {
		c.ResourceAdapter.Render(el)
	}
	if c.Version.HasModuleName() {
		for i := range c.RequiredWorkContexts {
			addText(el, elRequiredWorkContext, &c.RequiredWorkContexts[i])
		}
	}
	return el
}

// render10 writes DTD based layout where outbound part is inlined into
// resourceadapter and only the first connection definition survives.
func (c *Connector) render10(parent *etree.Element) *etree.Element {
	el := parent.CreateElement(elConnector)
	setID(el, c.ID)
	addLocalized(el, elDisplayName, c.DisplayNames[:min(1, len(c.DisplayNames))])
	addLocalized(el, elDescription, c.Descriptions[:min(1, len(c.Descriptions))])
	for i := range c.Icons {
		c.Icons[i].Render(el)
	}
	addText(el, elVendorName, c.VendorName)
	el.CreateElement(elSpecVersion).SetText(Version10.String())
	addText(el, elEISType, c.EISType)
	addText(el, elVersion, c.ResourceAdapterVersion)
	if c.License != nil {
		c.License.Render(el)
	}

	ra := c.ResourceAdapter
	if ra == nil {
		return el
	}
	rae := el.CreateElement(elResourceAdapter)
	setID(rae, ra.ID)
	oa := ra.Outbound
	if oa == nil {
		oa = NewOutboundAdapter(nil)
	}
	var cd *ConnectionDefinition
	if cds := oa.ConnectionDefinitions(); len(cds) > 0 {
		cd = cds[0]
	} else {
		cd = NewConnectionDefinition(nil, nil)
	}
	addText(rae, elManagedConnectionFactory, cd.ManagedConnectionFactoryClass)
	addText(rae, elConnectionFactoryInterface, cd.ConnectionFactoryInterface)
	addText(rae, elConnectionFactoryImplClass, cd.ConnectionFactoryImplClass)
	addText(rae, elConnectionInterface, cd.ConnectionInterface)
	addText(rae, elConnectionImplClass, cd.ConnectionImplClass)
	ts := rae.CreateElement(elTransactionSupport)
	setID(ts, oa.TransactionSupportID)
	ts.SetText(oa.TransactionSupport().String())
	for _, cp := range cd.ConfigProperties() {
		cp.Render(rae)
	}
	for i := range oa.AuthenticationMechanisms {
		oa.AuthenticationMechanisms[i].Render(rae)
	}
	addBool(rae, elReauthenticationSupport, oa.ReauthenticationSupport, oa.ReauthenticationSupportID)
	for i := range ra.SecurityPermissions {
		ra.SecurityPermissions[i].Render(rae)
	}
	return el
}

func (l *License) Render(parent *etree.Element) *etree.Element {
	el := parent.CreateElement(elLicense)
	setID(el, l.ID)
	addLocalized(el, elDescription, l.Descriptions)
	addBool(el, elLicenseRequired, l.Required, l.RequiredID)
	return el
}

func (i Icon) Render(parent *etree.Element) *etree.Element {
	el := parent.CreateElement(elIcon)
	setID(el, i.ID)
	if i.Lang != "" {
		el.CreateAttr("xml:lang", i.Lang)
	}
	addText(el, elSmallIcon, i.SmallIcon)
	addText(el, elLargeIcon, i.LargeIcon)
	return el
}

func (ra *ResourceAdapter) Render(parent *etree.Element) *etree.Element {
	el := parent.CreateElement(elResourceAdapter)
	setID(el, ra.ID)
	addText(el, elResourceAdapterClass, ra.Class)
	for _, cp := range ra.ConfigProperties() {
		cp.Render(el)
	}
	if ra.Outbound != nil {
		ra.Outbound.Render(el)
	}
	if ra.Inbound != nil {
		ra.Inbound.Render(el)
	}
	for _, ao := range ra.AdminObjects() {
		ao.Render(el)
	}
	for i := range ra.SecurityPermissions {
		ra.SecurityPermissions[i].Render(el)
	}
	return el
}

func (oa *OutboundAdapter) Render(parent *etree.Element) *etree.Element {
	el := parent.CreateElement(elOutboundResourceAdapter)
	setID(el, oa.ID)
	for _, cd := range oa.ConnectionDefinitions() {
		cd.Render(el)
	}
	if tx := oa.transactionSupport.load(); tx.set {
		ts := el.CreateElement(elTransactionSupport)
		setID(ts, oa.TransactionSupportID)
		ts.SetText(tx.value.String())
	}
	for i := range oa.AuthenticationMechanisms {
		oa.AuthenticationMechanisms[i].Render(el)
	}
	addBool(el, elReauthenticationSupport, oa.ReauthenticationSupport, oa.ReauthenticationSupportID)
	return el
}

func (cd *ConnectionDefinition) Render(parent *etree.Element) *etree.Element {
	el := parent.CreateElement(elConnectionDefinition)
	setID(el, cd.ID)
	addText(el, elManagedConnectionFactory, cd.ManagedConnectionFactoryClass)
	for _, cp := range cd.ConfigProperties() {
		cp.Render(el)
	}
	addText(el, elConnectionFactoryInterface, cd.ConnectionFactoryInterface)
	addText(el, elConnectionFactoryImplClass, cd.ConnectionFactoryImplClass)
	addText(el, elConnectionInterface, cd.ConnectionInterface)
	addText(el, elConnectionImplClass, cd.ConnectionImplClass)
	return el
}

func (ia *InboundAdapter) Render(parent *etree.Element) *etree.Element {
	el := parent.CreateElement(elInboundResourceAdapter)
	setID(el, ia.ID)
	if ma := ia.MessageAdapter; ma != nil {
		mae := el.CreateElement(elMessageAdapter)
		setID(mae, ma.ID)
		for _, ml := range ma.MessageListeners {
			ml.Render(mae)
		}
	}
	return el
}

func (ml *MessageListener) Render(parent *etree.Element) *etree.Element {
	el := parent.CreateElement(elMessageListener)
	setID(el, ml.ID)
	addText(el, elMessageListenerType, ml.Type)
	if as := ml.Activationspec; as != nil {
		ase := el.CreateElement(elActivationspec)
		setID(ase, as.ID)
		addText(ase, elActivationspecClass, as.Class)
		for _, r := range as.RequiredConfigProperties {
			re := ase.CreateElement(elRequiredConfigProperty)
			setID(re, r.ID)
			addLocalized(re, elDescription, r.Descriptions)
			addText(re, elConfigPropertyName, r.Name)
		}
		for _, cp := range as.ConfigProperties {
			cp.Render(ase)
		}
	}
	return el
}

func (ao *AdminObject) Render(parent *etree.Element) *etree.Element {
	el := parent.CreateElement(elAdminObject)
	setID(el, ao.ID)
	addText(el, elAdminObjectInterface, ao.Interface)
	addText(el, elAdminObjectClass, ao.Class)
	for _, cp := range ao.ConfigProperties() {
		cp.Render(el)
	}
	return el
}

func (cp *ConfigProperty) Render(parent *etree.Element) *etree.Element {
	el := parent.CreateElement(elConfigProperty)
	setID(el, cp.ID)
	addLocalized(el, elDescription, cp.Descriptions)
	addText(el, elConfigPropertyName, cp.Name)
	addText(el, elConfigPropertyType, cp.Type)
	addText(el, elConfigPropertyValue, cp.Value)
	addFlag(el, elConfigPropertyIgnore, cp.Ignore)
	addFlag(el, elConfigPropertyDynamic, cp.SupportsDynamicUpdates)
	addFlag(el, elConfigPropertyConfidential, cp.Confidential)
	return el
}

func (am AuthenticationMechanism) Render(parent *etree.Element) *etree.Element {
	el := parent.CreateElement(elAuthenticationMechanism)
	setID(el, am.ID)
	addLocalized(el, elDescription, am.Descriptions)
	addText(el, elAuthenticationMechanismType, am.Type)
	if am.CredentialInterface != CredentialInterfaceNone {
		ci := el.CreateElement(elCredentialInterface)
		setID(ci, am.CredentialInterfaceID)
		ci.SetText(am.CredentialInterface.String())
	}
	return el
}

func (sp SecurityPermission) Render(parent *etree.Element) *etree.Element {
	el := parent.CreateElement(elSecurityPermission)
	setID(el, sp.ID)
	addLocalized(el, elDescription, sp.Descriptions)
	addText(el, elSecurityPermissionSpec, sp.Spec)
	return el
}
