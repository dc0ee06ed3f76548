package connector

// Structural equality. Ids, tags and annotation discovery details do not take
// part, nil and empty lists are equal.

type equaler[T any] interface {
	Equal(T) bool
}

func equalAll[T equaler[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func equalTexts(a, b []Text) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Value != b[i].Value {
			return false
		}
	}
	return true
}

func (c *Connector) Equal(o *Connector) bool {
	if c == nil || o == nil {
		return c == nil && o == nil
	}
	return c.Version == o.Version &&
		c.MetadataComplete == o.MetadataComplete &&
		c.ModuleName.Equal(o.ModuleName) &&
		c.VendorName.Equal(o.VendorName) &&
		c.EISType.Equal(o.EISType) &&
		c.ResourceAdapterVersion.Equal(o.ResourceAdapterVersion) &&
		c.License.Equal(o.License) &&
		c.ResourceAdapter.Equal(o.ResourceAdapter) &&
		equalTexts(c.RequiredWorkContexts, o.RequiredWorkContexts) &&
		equalAll(c.Descriptions, o.Descriptions) &&
		equalAll(c.DisplayNames, o.DisplayNames) &&
		equalAll(c.Icons, o.Icons)
}

func (l *License) Equal(o *License) bool {
	if l == nil || o == nil {
		return l == nil && o == nil
	}
	return l.Required == o.Required && equalAll(l.Descriptions, o.Descriptions)
}

func (i Icon) Equal(o Icon) bool {
	return i.Lang == o.Lang && i.SmallIcon.Equal(o.SmallIcon) && i.LargeIcon.Equal(o.LargeIcon)
}

func (ra *ResourceAdapter) Equal(o *ResourceAdapter) bool {
	if ra == nil || o == nil {
		return ra == nil && o == nil
	}
	return ra.Class.Equal(o.Class) &&
		ra.Outbound.Equal(o.Outbound) &&
		ra.Inbound.Equal(o.Inbound) &&
		equalAll(ra.SecurityPermissions, o.SecurityPermissions) &&
		equalAll(ra.ConfigProperties(), o.ConfigProperties()) &&
		equalAll(ra.AdminObjects(), o.AdminObjects())
}

func (oa *OutboundAdapter) Equal(o *OutboundAdapter) bool {
	if oa == nil || o == nil {
		return oa == nil && o == nil
	}
	return oa.ReauthenticationSupport == o.ReauthenticationSupport &&
		oa.TransactionSupport() == o.TransactionSupport() &&
		equalAll(oa.AuthenticationMechanisms, o.AuthenticationMechanisms) &&
		equalAll(oa.ConnectionDefinitions(), o.ConnectionDefinitions())
}

func (cd *ConnectionDefinition) Equal(o *ConnectionDefinition) bool {
	if cd == nil || o == nil {
		return cd == nil && o == nil
	}
	return cd.ManagedConnectionFactoryClass.Equal(o.ManagedConnectionFactoryClass) &&
		cd.ConnectionFactoryInterface.Equal(o.ConnectionFactoryInterface) &&
		cd.ConnectionFactoryImplClass.Equal(o.ConnectionFactoryImplClass) &&
		cd.ConnectionInterface.Equal(o.ConnectionInterface) &&
		cd.ConnectionImplClass.Equal(o.ConnectionImplClass) &&
		equalAll(cd.ConfigProperties(), o.ConfigProperties())
}

func (ia *InboundAdapter) Equal(o *InboundAdapter) bool {
	if ia == nil || o == nil {
		return ia == nil && o == nil
	}
	return ia.MessageAdapter.Equal(o.MessageAdapter)
}

func (ma *MessageAdapter) Equal(o *MessageAdapter) bool {
	if ma == nil || o == nil {
		return ma == nil && o == nil
	}
	return equalAll(ma.MessageListeners, o.MessageListeners)
}

func (ml *MessageListener) Equal(o *MessageListener) bool {
	if ml == nil || o == nil {
		return ml == nil && o == nil
	}
	return ml.Type.Equal(o.Type) && ml.Activationspec.Equal(o.Activationspec)
}

func (as *Activationspec) Equal(o *Activationspec) bool {
	if as == nil || o == nil {
		return as == nil && o == nil
	}
	return as.Class.Equal(o.Class) &&
		equalAll(as.RequiredConfigProperties, o.RequiredConfigProperties) &&
		equalAll(as.ConfigProperties, o.ConfigProperties)
}

func (r RequiredConfigProperty) Equal(o RequiredConfigProperty) bool {
	return r.Name.Equal(o.Name) && equalAll(r.Descriptions, o.Descriptions)
}

func (ao *AdminObject) Equal(o *AdminObject) bool {
	if ao == nil || o == nil {
		return ao == nil && o == nil
	}
	return ao.Interface.Equal(o.Interface) &&
		ao.Class.Equal(o.Class) &&
		equalAll(ao.ConfigProperties(), o.ConfigProperties())
}

func (cp *ConfigProperty) Equal(o *ConfigProperty) bool {
	if cp == nil || o == nil {
		return cp == nil && o == nil
	}
	return cp.Name.Equal(o.Name) &&
		cp.Type.Equal(o.Type) &&
		cp.Value.Equal(o.Value) &&
		cp.Ignore.Equal(o.Ignore) &&
		cp.SupportsDynamicUpdates.Equal(o.SupportsDynamicUpdates) &&
		cp.Confidential.Equal(o.Confidential) &&
		equalAll(cp.Descriptions, o.Descriptions)
}

func (am AuthenticationMechanism) Equal(o AuthenticationMechanism) bool {
	return am.Type.Equal(o.Type) &&
		am.CredentialInterface == o.CredentialInterface &&
		equalAll(am.Descriptions, o.Descriptions)
}

func (sp SecurityPermission) Equal(o SecurityPermission) bool {
	return sp.Spec.Equal(o.Spec) && equalAll(sp.Descriptions, o.Descriptions)
}
