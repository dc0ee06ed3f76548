package connector

import (
	"strconv"

	"rardesc/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// String returns readable tree of the descriptor, for inspection during
// debugging only.
func (c *Connector) String() string {
	if c == nil {
		return "<nil Connector>"
	}
	return treeWriter{debug.NewTreeWriter()}.connector(c).String()
}

func (tw treeWriter) text(depth int, label string, t *Text) {
	tw.Field(depth, label, t.String(), !t.IsAbsent())
}

func (tw treeWriter) flag(depth int, label string, f *Flag) {
	if f != nil {
		tw.Line(depth, "%s=%t", label, f.Value)
	}
}

func (tw treeWriter) localized(depth int, label string, list []LocalizedText) {
	for i, l := range list {
		if l.Lang != "" {
			tw.TextBlock(depth, label+"["+strconv.Itoa(i)+"] lang="+l.Lang, l.Value)
		} else {
			tw.TextBlock(depth, label+"["+strconv.Itoa(i)+"]", l.Value)
		}
	}
}

func (tw treeWriter) connector(c *Connector) treeWriter {
	tw.Line(0, "Connector version=%s id=%q metadataComplete=%t", c.Version, c.ID, c.MetadataComplete)
	tw.text(1, "ModuleName", c.ModuleName)
	tw.localized(1, "Description", c.Descriptions)
	tw.localized(1, "DisplayName", c.DisplayNames)
	for i, icon := range c.Icons {
		tw.Line(1, "Icon[%d] lang=%q", i, icon.Lang)
		tw.text(2, "Small", icon.SmallIcon)
		tw.text(2, "Large", icon.LargeIcon)
	}
	tw.text(1, "VendorName", c.VendorName)
	tw.text(1, "EISType", c.EISType)
	tw.text(1, "ResourceAdapterVersion", c.ResourceAdapterVersion)
	if l := c.License; l != nil {
		tw.Line(1, "License required=%t", l.Required)
		tw.localized(2, "Description", l.Descriptions)
	}
	if ra := c.ResourceAdapter; ra != nil {
		tw.resourceAdapter(1, ra)
	}
	for i := range c.RequiredWorkContexts {
		tw.TextBlock(1, "RequiredWorkContext["+strconv.Itoa(i)+"]", c.RequiredWorkContexts[i].Value)
	}
	return tw
}

func (tw treeWriter) resourceAdapter(depth int, ra *ResourceAdapter) {
	tw.Line(depth, "ResourceAdapter id=%q", ra.ID)
	tw.text(depth+1, "Class", ra.Class)
	tw.configProperties(depth+1, ra.ConfigProperties())
	if oa := ra.Outbound; oa != nil {
		if oa.TransactionSupportSet() {
			tw.Line(depth+1, "Outbound id=%q transactionSupport=%s reauthentication=%t", oa.ID, oa.TransactionSupport(), oa.ReauthenticationSupport)
		} else {
			tw.Line(depth+1, "Outbound id=%q reauthentication=%t", oa.ID, oa.ReauthenticationSupport)
		}
		for i, cd := range oa.ConnectionDefinitions() {
			tw.Line(depth+2, "ConnectionDefinition[%d] id=%q", i, cd.ID)
			tw.text(depth+3, "ManagedConnectionFactoryClass", cd.ManagedConnectionFactoryClass)
			tw.text(depth+3, "ConnectionFactoryInterface", cd.ConnectionFactoryInterface)
			tw.text(depth+3, "ConnectionFactoryImplClass", cd.ConnectionFactoryImplClass)
			tw.text(depth+3, "ConnectionInterface", cd.ConnectionInterface)
			tw.text(depth+3, "ConnectionImplClass", cd.ConnectionImplClass)
			tw.configProperties(depth+3, cd.ConfigProperties())
		}
		for i, am := range oa.AuthenticationMechanisms {
			tw.Line(depth+2, "AuthenticationMechanism[%d] credential=%q", i, am.CredentialInterface)
			tw.text(depth+3, "Type", am.Type)
		}
	}
	if ia := ra.Inbound; ia != nil {
		tw.Line(depth+1, "Inbound id=%q", ia.ID)
		if ia.MessageAdapter != nil {
			for i, ml := range ia.MessageAdapter.MessageListeners {
				tw.Line(depth+2, "MessageListener[%d]", i)
				tw.text(depth+3, "Type", ml.Type)
				if as := ml.Activationspec; as != nil {
					tw.Line(depth+3, "Activationspec required=%d", len(as.RequiredConfigProperties))
					tw.text(depth+4, "Class", as.Class)
					tw.configProperties(depth+4, as.ConfigProperties)
				}
			}
		}
	}
	for i, ao := range ra.AdminObjects() {
		tw.Line(depth+1, "AdminObject[%d] id=%q", i, ao.ID)
		tw.text(depth+2, "Interface", ao.Interface)
		tw.text(depth+2, "Class", ao.Class)
		tw.configProperties(depth+2, ao.ConfigProperties())
	}
	for i, sp := range ra.SecurityPermissions {
		tw.Line(depth+1, "SecurityPermission[%d]", i)
		tw.text(depth+2, "Spec", sp.Spec)
	}
}

func (tw treeWriter) configProperties(depth int, props []*ConfigProperty) {
	for i, cp := range props {
		tw.Line(depth, "ConfigProperty[%d] name=%q", i, cp.Name.String())
		tw.text(depth+1, "Type", cp.Type)
		tw.text(depth+1, "Value", cp.Value)
		tw.flag(depth+1, "Ignore", cp.Ignore)
		tw.flag(depth+1, "SupportsDynamicUpdates", cp.SupportsDynamicUpdates)
		tw.flag(depth+1, "Confidential", cp.Confidential)
		if cp.Mandatory {
			tw.Line(depth+1, "Mandatory")
		}
	}
}
