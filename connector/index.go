package connector

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
)

// IDIndex maps element id to paths of all elements carrying it. Ids are
// optional and opaque, well formed descriptors have at most one path per id.
type IDIndex map[string][]string

// IDs returns indexed ids in natural order.
func (idx IDIndex) IDs() []string {
	ids := make([]string, 0, len(idx))
	for id := range idx {
		ids = append(ids, id)
	}
	sort.Sort(natural.StringSlice(ids))
	return ids
}

// Duplicates returns ids used more than once, in natural order.
func (idx IDIndex) Duplicates() []string {
	var ids []string
	for id, paths := range idx {
		if len(paths) > 1 {
			ids = append(ids, id)
		}
	}
	sort.Sort(natural.StringSlice(ids))
	return ids
}

func (idx IDIndex) add(id, path string) {
	if id != "" {
		idx[id] = append(idx[id], path)
	}
}

func (idx IDIndex) text(path, tag string, t *Text) {
	if t != nil {
		idx.add(t.ID, path+"/"+tag)
	}
}

func (idx IDIndex) localized(path, tag string, list []LocalizedText) {
	for i, l := range list {
		idx.add(l.ID, fmt.Sprintf("%s/%s[%d]", path, tag, i))
	}
}

func (idx IDIndex) flag(path, tag string, f *Flag) {
	if f != nil {
		idx.add(f.ID, path+"/"+tag)
	}
}

// IDIndex walks the whole tree.
func (c *Connector) IDIndex() IDIndex {
	idx := make(IDIndex)
	if c == nil {
		return idx
	}
	p := elConnector
	idx.add(c.ID, p)
	idx.text(p, elModuleName, c.ModuleName)
	idx.text(p, elVendorName, c.VendorName)
	idx.text(p, elEISType, c.EISType)
	idx.text(p, elResourceAdapterVersion, c.ResourceAdapterVersion)
	idx.localized(p, elDescription, c.Descriptions)
	idx.localized(p, elDisplayName, c.DisplayNames)
	for i, icon := range c.Icons {
		ip := fmt.Sprintf("%s/%s[%d]", p, elIcon, i)
		idx.add(icon.ID, ip)
		idx.text(ip, elSmallIcon, icon.SmallIcon)
		idx.text(ip, elLargeIcon, icon.LargeIcon)
	}
	for i := range c.RequiredWorkContexts {
		idx.add(c.RequiredWorkContexts[i].ID, fmt.Sprintf("%s/%s[%d]", p, elRequiredWorkContext, i))
	}
	if l := c.License; l != nil {
		lp := p + "/" + elLicense
		idx.add(l.ID, lp)
		idx.localized(lp, elDescription, l.Descriptions)
		idx.add(l.RequiredID, lp+"/"+elLicenseRequired)
	}
	if ra := c.ResourceAdapter; ra != nil {
		idx.resourceAdapter(p+"/"+elResourceAdapter, ra)
	}
	return idx
}

func (idx IDIndex) resourceAdapter(p string, ra *ResourceAdapter) {
	idx.add(ra.ID, p)
	idx.text(p, elResourceAdapterClass, ra.Class)
	idx.configProperties(p, ra.ConfigProperties())
	if oa := ra.Outbound; oa != nil {
		op := p + "/" + elOutboundResourceAdapter
		// 1.0 descriptors share adapter id with inlined outbound parts
		if oa.ID != ra.ID {
			idx.add(oa.ID, op)
		}
		for i, cd := range oa.ConnectionDefinitions() {
			cp := fmt.Sprintf("%s/%s[%d]", op, elConnectionDefinition, i)
			if cd.ID != ra.ID {
				idx.add(cd.ID, cp)
			}
			idx.text(cp, elManagedConnectionFactory, cd.ManagedConnectionFactoryClass)
			idx.text(cp, elConnectionFactoryInterface, cd.ConnectionFactoryInterface)
			idx.text(cp, elConnectionFactoryImplClass, cd.ConnectionFactoryImplClass)
			idx.text(cp, elConnectionInterface, cd.ConnectionInterface)
			idx.text(cp, elConnectionImplClass, cd.ConnectionImplClass)
			idx.configProperties(cp, cd.ConfigProperties())
		}
		idx.add(oa.TransactionSupportID, op+"/"+elTransactionSupport)
		idx.add(oa.ReauthenticationSupportID, op+"/"+elReauthenticationSupport)
		for i, am := range oa.AuthenticationMechanisms {
			ap := fmt.Sprintf("%s/%s[%d]", op, elAuthenticationMechanism, i)
			idx.add(am.ID, ap)
			idx.localized(ap, elDescription, am.Descriptions)
			idx.text(ap, elAuthenticationMechanismType, am.Type)
			idx.add(am.CredentialInterfaceID, ap+"/"+elCredentialInterface)
		}
	}
	if ia := ra.Inbound; ia != nil {
		ip := p + "/" + elInboundResourceAdapter
		idx.add(ia.ID, ip)
		if ma := ia.MessageAdapter; ma != nil {
			mp := ip + "/" + elMessageAdapter
			idx.add(ma.ID, mp)
			for i, ml := range ma.MessageListeners {
				lp := fmt.Sprintf("%s/%s[%d]", mp, elMessageListener, i)
				idx.add(ml.ID, lp)
				idx.text(lp, elMessageListenerType, ml.Type)
				if as := ml.Activationspec; as != nil {
					ap := lp + "/" + elActivationspec
					idx.add(as.ID, ap)
					idx.text(ap, elActivationspecClass, as.Class)
					for j, r := range as.RequiredConfigProperties {
						rp := fmt.Sprintf("%s/%s[%d]", ap, elRequiredConfigProperty, j)
						idx.add(r.ID, rp)
						idx.localized(rp, elDescription, r.Descriptions)
						idx.text(rp, elConfigPropertyName, r.Name)
					}
					idx.configProperties(ap, as.ConfigProperties)
				}
			}
		}
	}
	for i, ao := range ra.AdminObjects() {
		ap := fmt.Sprintf("%s/%s[%d]", p, elAdminObject, i)
		idx.add(ao.ID, ap)
		idx.text(ap, elAdminObjectInterface, ao.Interface)
		idx.text(ap, elAdminObjectClass, ao.Class)
		idx.configProperties(ap, ao.ConfigProperties())
	}
	for i, sp := range ra.SecurityPermissions {
		pp := fmt.Sprintf("%s/%s[%d]", p, elSecurityPermission, i)
		idx.add(sp.ID, pp)
		idx.localized(pp, elDescription, sp.Descriptions)
		idx.text(pp, elSecurityPermissionSpec, sp.Spec)
	}
}

func (idx IDIndex) configProperties(p string, props []*ConfigProperty) {
	for i, cp := range props {
		pp := fmt.Sprintf("%s/%s[%d]", p, elConfigProperty, i)
		idx.add(cp.ID, pp)
		idx.localized(pp, elDescription, cp.Descriptions)
		idx.text(pp, elConfigPropertyName, cp.Name)
		idx.text(pp, elConfigPropertyType, cp.Type)
		idx.text(pp, elConfigPropertyValue, cp.Value)
		idx.flag(pp, elConfigPropertyIgnore, cp.Ignore)
		idx.flag(pp, elConfigPropertyDynamic, cp.SupportsDynamicUpdates)
		idx.flag(pp, elConfigPropertyConfidential, cp.Confidential)
	}
}
