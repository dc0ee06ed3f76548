package connector

import "slices"

// Deep copy of descriptor structures. Copies share nothing mutable with the
// source, force-replace cells of the copy start with the snapshot current at
// the time of the call.

type copier[T any] interface {
	Copy() T
}

func copyAll[T copier[T]](list []T) []T {
	if list == nil {
		return nil
	}
	result := make([]T, len(list))
	for i := range list {
		result[i] = list[i].Copy()
	}
	return result
}

func copyTexts(list []Text) []Text {
	return slices.Clone(list)
}

func copyLocalized(list []LocalizedText) []LocalizedText {
	return slices.Clone(list)
}

func (c *Connector) Copy() *Connector {
	if c == nil {
		return nil
	}
	return &Connector{
		Version:                c.Version,
		ID:                     c.ID,
		ModuleName:             c.ModuleName.Copy(),
		VendorName:             c.VendorName.Copy(),
		EISType:                c.EISType.Copy(),
		ResourceAdapterVersion: c.ResourceAdapterVersion.Copy(),
		License:                c.License.Copy(),
		ResourceAdapter:        c.ResourceAdapter.Copy(),
		RequiredWorkContexts:   copyTexts(c.RequiredWorkContexts),
		MetadataComplete:       c.MetadataComplete,
		Descriptions:           copyLocalized(c.Descriptions),
		DisplayNames:           copyLocalized(c.DisplayNames),
		Icons:                  copyAll(c.Icons),
	}
}

func (l *License) Copy() *License {
	if l == nil {
		return nil
	}
	return &License{
		ID:           l.ID,
		Descriptions: copyLocalized(l.Descriptions),
		Required:     l.Required,
		RequiredID:   l.RequiredID,
	}
}

func (i Icon) Copy() Icon {
	return Icon{
		ID:        i.ID,
		Lang:      i.Lang,
		SmallIcon: i.SmallIcon.Copy(),
		LargeIcon: i.LargeIcon.Copy(),
	}
}

func (ra *ResourceAdapter) Copy() *ResourceAdapter {
	if ra == nil {
		return nil
	}
	n := NewResourceAdapter(ra.Class.Copy(), copyAll(ra.ConfigProperties()), copyAll(ra.AdminObjects()))
	n.ID = ra.ID
	n.Outbound = ra.Outbound.Copy()
	n.Inbound = ra.Inbound.Copy()
	n.SecurityPermissions = copyAll(ra.SecurityPermissions)
	return n
}

func (oa *OutboundAdapter) Copy() *OutboundAdapter {
	if oa == nil {
		return nil
	}
	n := NewOutboundAdapter(copyAll(oa.ConnectionDefinitions()))
	n.ID = oa.ID
	n.AuthenticationMechanisms = copyAll(oa.AuthenticationMechanisms)
	n.ReauthenticationSupport = oa.ReauthenticationSupport
	n.TransactionSupportID = oa.TransactionSupportID
	n.ReauthenticationSupportID = oa.ReauthenticationSupportID
	n.transactionSupport.v = oa.transactionSupport.load()
	return n
}

func (cd *ConnectionDefinition) Copy() *ConnectionDefinition {
	if cd == nil {
		return nil
	}
	n := NewConnectionDefinition(cd.ManagedConnectionFactoryClass.Copy(), copyAll(cd.ConfigProperties()))
	n.ID = cd.ID
	n.ConnectionFactoryInterface = cd.ConnectionFactoryInterface.Copy()
	n.ConnectionFactoryImplClass = cd.ConnectionFactoryImplClass.Copy()
	n.ConnectionInterface = cd.ConnectionInterface.Copy()
	n.ConnectionImplClass = cd.ConnectionImplClass.Copy()
	return n
}

func (ia *InboundAdapter) Copy() *InboundAdapter {
	if ia == nil {
		return nil
	}
	return &InboundAdapter{ID: ia.ID, MessageAdapter: ia.MessageAdapter.Copy()}
}

func (ma *MessageAdapter) Copy() *MessageAdapter {
	if ma == nil {
		return nil
	}
	return &MessageAdapter{ID: ma.ID, MessageListeners: copyAll(ma.MessageListeners)}
}

func (ml *MessageListener) Copy() *MessageListener {
	if ml == nil {
		return nil
	}
	return &MessageListener{ID: ml.ID, Type: ml.Type.Copy(), Activationspec: ml.Activationspec.Copy()}
}

func (as *Activationspec) Copy() *Activationspec {
	if as == nil {
		return nil
	}
	return &Activationspec{
		ID:                       as.ID,
		Class:                    as.Class.Copy(),
		RequiredConfigProperties: copyAll(as.RequiredConfigProperties),
		ConfigProperties:         copyAll(as.ConfigProperties),
	}
}

func (r RequiredConfigProperty) Copy() RequiredConfigProperty {
	return RequiredConfigProperty{
		ID:           r.ID,
		Descriptions: copyLocalized(r.Descriptions),
		Name:         r.Name.Copy(),
	}
}

func (ao *AdminObject) Copy() *AdminObject {
	if ao == nil {
		return nil
	}
	n := NewAdminObject(ao.Interface.Copy(), ao.Class.Copy(), copyAll(ao.ConfigProperties()))
	n.ID = ao.ID
	return n
}

func (cp *ConfigProperty) Copy() *ConfigProperty {
	if cp == nil {
		return nil
	}
	return &ConfigProperty{
		ID:                     cp.ID,
		Descriptions:           copyLocalized(cp.Descriptions),
		Name:                   cp.Name.Copy(),
		Type:                   cp.Type.Copy(),
		Value:                  cp.Value.Copy(),
		Ignore:                 cp.Ignore.Copy(),
		SupportsDynamicUpdates: cp.SupportsDynamicUpdates.Copy(),
		Confidential:           cp.Confidential.Copy(),
		Mandatory:              cp.Mandatory,
		AttachedClass:          cp.AttachedClass,
	}
}

func (am AuthenticationMechanism) Copy() AuthenticationMechanism {
	return AuthenticationMechanism{
		ID:                    am.ID,
		Descriptions:          copyLocalized(am.Descriptions),
		Type:                  am.Type.Copy(),
		CredentialInterface:   am.CredentialInterface,
		CredentialInterfaceID: am.CredentialInterfaceID,
	}
}

func (sp SecurityPermission) Copy() SecurityPermission {
	return SecurityPermission{
		ID:           sp.ID,
		Descriptions: copyLocalized(sp.Descriptions),
		Spec:         sp.Spec.Copy(),
	}
}

