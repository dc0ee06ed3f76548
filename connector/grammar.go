package connector

import "slices"

// Grammar tables. Each table lists legal children of one element for one or
// more generations. Tables are never modified after initialization.

func textRule[B any](tag string, set func(B, *Text)) rule[B] {
	return rule[B]{tag: tag, apply: func(p *parser, b B, ev *Event) error {
		t, err := p.text(ev)
		if err != nil {
			return err
		}
		set(b, t)
		return nil
	}}
}

func localizedRule[B any](tag string, add func(B, LocalizedText)) rule[B] {
	return rule[B]{tag: tag, apply: func(p *parser, b B, ev *Event) error {
		l, err := p.localized(ev)
		if err != nil {
			return err
		}
		add(b, l)
		return nil
	}}
}

func flagRule[B any](tag string, set func(B, *Flag)) rule[B] {
	return rule[B]{tag: tag, apply: func(p *parser, b B, ev *Event) error {
		f, err := p.flag(ev)
		if err != nil {
			return err
		}
		set(b, f)
		return nil
	}}
}

func nodeRule[B, N any](tag string, read func(*parser, *Event) (N, error), set func(B, N)) rule[B] {
	return rule[B]{tag: tag, apply: func(p *parser, b B, ev *Event) error {
		n, err := read(p, ev)
		if err != nil {
			return err
		}
		set(b, n)
		return nil
	}}
}

// connector

var connectorCommonRules = []rule[*Connector]{
	textRule(elVendorName, func(c *Connector, t *Text) { c.VendorName = t }),
	textRule(elEISType, func(c *Connector, t *Text) { c.EISType = t }),
	nodeRule(elLicense, (*parser).license, func(c *Connector, l *License) { c.License = l }),
	nodeRule(elIcon, (*parser).icon, func(c *Connector, i Icon) { c.Icons = append(c.Icons, i) }),
}

var connectorRules10 = slices.Concat(connectorCommonRules, []rule[*Connector]{
	textRule(elVersion, func(c *Connector, t *Text) { c.ResourceAdapterVersion = t }),
	textRule(elSpecVersion, func(*Connector, *Text) {}),
	nodeRule(elResourceAdapter, (*parser).resourceAdapter10, func(c *Connector, ra *ResourceAdapter) { c.ResourceAdapter = ra }),
	{tag: elDescription, apply: func(p *parser, c *Connector, ev *Event) error {
		if len(c.Descriptions) > 0 {
			return p.unexpected(ev)
		}
		l, err := p.localized(ev)
		if err != nil {
			return err
		}
		c.Descriptions = []LocalizedText{l}
		return nil
	}},
	{tag: elDisplayName, apply: func(p *parser, c *Connector, ev *Event) error {
		if len(c.DisplayNames) > 0 {
			return p.unexpected(ev)
		}
		l, err := p.localized(ev)
		if err != nil {
			return err
		}
		c.DisplayNames = []LocalizedText{l}
		return nil
	}},
})

var connectorRules15 = slices.Concat(connectorCommonRules, []rule[*Connector]{
	textRule(elResourceAdapterVersion, func(c *Connector, t *Text) { c.ResourceAdapterVersion = t }),
	nodeRule(elResourceAdapter, (*parser).resourceAdapter, func(c *Connector, ra *ResourceAdapter) { c.ResourceAdapter = ra }),
	localizedRule(elDescription, func(c *Connector, l LocalizedText) { c.Descriptions = append(c.Descriptions, l) }),
	localizedRule(elDisplayName, func(c *Connector, l LocalizedText) { c.DisplayNames = append(c.DisplayNames, l) }),
})

// 1.6 and 1.7
var connectorRules16 = slices.Concat(connectorRules15, []rule[*Connector]{
	textRule(elModuleName, func(c *Connector, t *Text) { c.ModuleName = t }),
	textRule(elRequiredWorkContext, func(c *Connector, t *Text) { c.RequiredWorkContexts = append(c.RequiredWorkContexts, *t) }),
})

// resourceadapter 1.0, outbound adapter is inlined.

type resourceAdapter10 struct {
	cd     ConnectionDefinition
	props  []*ConfigProperty
	auths  []AuthenticationMechanism
	perms  []SecurityPermission
	reauth *Flag
	tx     txLevel
	txID   string
}

var resourceAdapterRules10 = []rule[*resourceAdapter10]{
	nodeRule(elConfigProperty, (*parser).configProperty, func(b *resourceAdapter10, cp *ConfigProperty) { b.props = append(b.props, cp) }),
	nodeRule(elAuthenticationMechanism, (*parser).authenticationMechanism, func(b *resourceAdapter10, am AuthenticationMechanism) { b.auths = append(b.auths, am) }),
	textRule(elManagedConnectionFactory, func(b *resourceAdapter10, t *Text) { b.cd.ManagedConnectionFactoryClass = t }),
	textRule(elConnectionInterface, func(b *resourceAdapter10, t *Text) { b.cd.ConnectionInterface = t }),
	textRule(elConnectionImplClass, func(b *resourceAdapter10, t *Text) { b.cd.ConnectionImplClass = t }),
	textRule(elConnectionFactoryInterface, func(b *resourceAdapter10, t *Text) { b.cd.ConnectionFactoryInterface = t }),
	textRule(elConnectionFactoryImplClass, func(b *resourceAdapter10, t *Text) { b.cd.ConnectionFactoryImplClass = t }),
	flagRule(elReauthenticationSupport, func(b *resourceAdapter10, f *Flag) { b.reauth = f }),
	nodeRule(elSecurityPermission, (*parser).securityPermission, func(b *resourceAdapter10, sp SecurityPermission) { b.perms = append(b.perms, sp) }),
	{tag: elTransactionSupport, apply: func(p *parser, b *resourceAdapter10, ev *Event) error {
		ts, id, err := p.transactionSupport(ev)
		if err != nil {
			return err
		}
		b.tx, b.txID = txLevel{value: ts, set: true}, id
		return nil
	}},
}

func (p *parser) resourceAdapter10(ev *Event) (*ResourceAdapter, error) {
	b := &resourceAdapter10{}
	if err := drive(p, ev.Name, resourceAdapterRules10, b); err != nil {
		return nil, err
	}
	id, _ := ev.Attr(attrID)

	cd := NewConnectionDefinition(b.cd.ManagedConnectionFactoryClass, b.props)
	cd.ID = id
	cd.ConnectionFactoryInterface = b.cd.ConnectionFactoryInterface
	cd.ConnectionFactoryImplClass = b.cd.ConnectionFactoryImplClass
	cd.ConnectionInterface = b.cd.ConnectionInterface
	cd.ConnectionImplClass = b.cd.ConnectionImplClass

	oa := NewOutboundAdapter([]*ConnectionDefinition{cd})
	oa.ID = id
	oa.AuthenticationMechanisms = b.auths
	oa.ReauthenticationSupport = b.reauth.Bool()
	if b.reauth != nil {
		oa.ReauthenticationSupportID = b.reauth.ID
	}
	oa.transactionSupport.v = b.tx
	oa.TransactionSupportID = b.txID

	ra := NewResourceAdapter(nil, nil, nil)
	ra.ID = id
	ra.Outbound = oa
	ra.SecurityPermissions = b.perms
	return ra, nil
}

// resourceadapter 1.5+

var resourceAdapterRules = []rule[*ResourceAdapter]{
	textRule(elResourceAdapterClass, func(ra *ResourceAdapter, t *Text) { ra.Class = t }),
	nodeRule(elConfigProperty, (*parser).configProperty, func(ra *ResourceAdapter, cp *ConfigProperty) {
		ra.configProperties.v = append(ra.configProperties.v, cp)
	}),
	nodeRule(elOutboundResourceAdapter, (*parser).outbound, func(ra *ResourceAdapter, oa *OutboundAdapter) { ra.Outbound = oa }),
	nodeRule(elInboundResourceAdapter, (*parser).inbound, func(ra *ResourceAdapter, ia *InboundAdapter) { ra.Inbound = ia }),
	nodeRule(elAdminObject, (*parser).adminObject, func(ra *ResourceAdapter, ao *AdminObject) {
		ra.adminObjects.v = append(ra.adminObjects.v, ao)
	}),
	nodeRule(elSecurityPermission, (*parser).securityPermission, func(ra *ResourceAdapter, sp SecurityPermission) {
		ra.SecurityPermissions = append(ra.SecurityPermissions, sp)
	}),
}

func (p *parser) resourceAdapter(ev *Event) (*ResourceAdapter, error) {
	ra := NewResourceAdapter(nil, nil, nil)
	ra.ID, _ = ev.Attr(attrID)
	if err := drive(p, ev.Name, resourceAdapterRules, ra); err != nil {
		return nil, err
	}
	return ra, nil
}

var outboundRules = []rule[*OutboundAdapter]{
	nodeRule(elConnectionDefinition, (*parser).connectionDefinition, func(oa *OutboundAdapter, cd *ConnectionDefinition) {
		oa.connectionDefinitions.v = append(oa.connectionDefinitions.v, cd)
	}),
	{tag: elTransactionSupport, apply: func(p *parser, oa *OutboundAdapter, ev *Event) error {
		ts, id, err := p.transactionSupport(ev)
		if err != nil {
			return err
		}
		oa.transactionSupport.v = txLevel{value: ts, set: true}
		oa.TransactionSupportID = id
		return nil
	}},
	nodeRule(elAuthenticationMechanism, (*parser).authenticationMechanism, func(oa *OutboundAdapter, am AuthenticationMechanism) {
		oa.AuthenticationMechanisms = append(oa.AuthenticationMechanisms, am)
	}),
	flagRule(elReauthenticationSupport, func(oa *OutboundAdapter, f *Flag) {
		oa.ReauthenticationSupport, oa.ReauthenticationSupportID = f.Value, f.ID
	}),
}

func (p *parser) outbound(ev *Event) (*OutboundAdapter, error) {
	oa := NewOutboundAdapter(nil)
	oa.ID, _ = ev.Attr(attrID)
	if err := drive(p, ev.Name, outboundRules, oa); err != nil {
		return nil, err
	}
	return oa, nil
}

var connectionDefinitionRules = []rule[*ConnectionDefinition]{
	textRule(elManagedConnectionFactory, func(cd *ConnectionDefinition, t *Text) { cd.ManagedConnectionFactoryClass = t }),
	nodeRule(elConfigProperty, (*parser).configProperty, func(cd *ConnectionDefinition, cp *ConfigProperty) {
		cd.configProperties.v = append(cd.configProperties.v, cp)
	}),
	textRule(elConnectionFactoryInterface, func(cd *ConnectionDefinition, t *Text) { cd.ConnectionFactoryInterface = t }),
	textRule(elConnectionFactoryImplClass, func(cd *ConnectionDefinition, t *Text) { cd.ConnectionFactoryImplClass = t }),
	textRule(elConnectionInterface, func(cd *ConnectionDefinition, t *Text) { cd.ConnectionInterface = t }),
	textRule(elConnectionImplClass, func(cd *ConnectionDefinition, t *Text) { cd.ConnectionImplClass = t }),
}

func (p *parser) connectionDefinition(ev *Event) (*ConnectionDefinition, error) {
	cd := NewConnectionDefinition(nil, nil)
	cd.ID, _ = ev.Attr(attrID)
	if err := drive(p, ev.Name, connectionDefinitionRules, cd); err != nil {
		return nil, err
	}
	return cd, nil
}

// inbound

var inboundRules = []rule[*InboundAdapter]{
	nodeRule(elMessageAdapter, (*parser).messageAdapter, func(ia *InboundAdapter, ma *MessageAdapter) { ia.MessageAdapter = ma }),
}

func (p *parser) inbound(ev *Event) (*InboundAdapter, error) {
	ia := &InboundAdapter{}
	ia.ID, _ = ev.Attr(attrID)
	if err := drive(p, ev.Name, inboundRules, ia); err != nil {
		return nil, err
	}
	return ia, nil
}

var messageAdapterRules = []rule[*MessageAdapter]{
	nodeRule(elMessageListener, (*parser).messageListener, func(ma *MessageAdapter, ml *MessageListener) {
		ma.MessageListeners = append(ma.MessageListeners, ml)
	}),
}

func (p *parser) messageAdapter(ev *Event) (*MessageAdapter, error) {
	ma := &MessageAdapter{}
	ma.ID, _ = ev.Attr(attrID)
	if err := drive(p, ev.Name, messageAdapterRules, ma); err != nil {
		return nil, err
	}
	return ma, nil
}

var messageListenerRules = []rule[*MessageListener]{
	textRule(elMessageListenerType, func(ml *MessageListener, t *Text) { ml.Type = t }),
	nodeRule(elActivationspec, (*parser).activationspec, func(ml *MessageListener, as *Activationspec) { ml.Activationspec = as }),
}

func (p *parser) messageListener(ev *Event) (*MessageListener, error) {
	ml := &MessageListener{}
	ml.ID, _ = ev.Attr(attrID)
	if err := drive(p, ev.Name, messageListenerRules, ml); err != nil {
		return nil, err
	}
	return ml, nil
}

var activationspecRules = []rule[*Activationspec]{
	textRule(elActivationspecClass, func(as *Activationspec, t *Text) { as.Class = t }),
	nodeRule(elRequiredConfigProperty, (*parser).requiredConfigProperty, func(as *Activationspec, rcp RequiredConfigProperty) {
		as.RequiredConfigProperties = append(as.RequiredConfigProperties, rcp)
	}),
	nodeRule(elConfigProperty, (*parser).configProperty, func(as *Activationspec, cp *ConfigProperty) {
		as.ConfigProperties = append(as.ConfigProperties, cp)
	}),
}

func (p *parser) activationspec(ev *Event) (*Activationspec, error) {
	as := &Activationspec{}
	as.ID, _ = ev.Attr(attrID)
	if err := drive(p, ev.Name, activationspecRules, as); err != nil {
		return nil, err
	}
	return as, nil
}

var requiredConfigPropertyRules = []rule[*RequiredConfigProperty]{
	localizedRule(elDescription, func(r *RequiredConfigProperty, l LocalizedText) { r.Descriptions = append(r.Descriptions, l) }),
	textRule(elConfigPropertyName, func(r *RequiredConfigProperty, t *Text) { r.Name = t }),
}

func (p *parser) requiredConfigProperty(ev *Event) (RequiredConfigProperty, error) {
	var r RequiredConfigProperty
	r.ID, _ = ev.Attr(attrID)
	err := drive(p, ev.Name, requiredConfigPropertyRules, &r)
	return r, err
}

// admin objects

var adminObjectRules = []rule[*AdminObject]{
	textRule(elAdminObjectInterface, func(ao *AdminObject, t *Text) { ao.Interface = t }),
	textRule(elAdminObjectClass, func(ao *AdminObject, t *Text) { ao.Class = t }),
	nodeRule(elConfigProperty, (*parser).configProperty, func(ao *AdminObject, cp *ConfigProperty) {
		ao.configProperties.v = append(ao.configProperties.v, cp)
	}),
}

func (p *parser) adminObject(ev *Event) (*AdminObject, error) {
	ao := NewAdminObject(nil, nil, nil)
	ao.ID, _ = ev.Attr(attrID)
	if err := drive(p, ev.Name, adminObjectRules, ao); err != nil {
		return nil, err
	}
	return ao, nil
}

// Tables below are shared by every generation.

var configPropertyRules = []rule[*ConfigProperty]{
	localizedRule(elDescription, func(cp *ConfigProperty, l LocalizedText) { cp.Descriptions = append(cp.Descriptions, l) }),
	textRule(elConfigPropertyName, func(cp *ConfigProperty, t *Text) { cp.Name = t }),
	textRule(elConfigPropertyType, func(cp *ConfigProperty, t *Text) { cp.Type = t }),
	textRule(elConfigPropertyValue, func(cp *ConfigProperty, t *Text) { cp.Value = t }),
	flagRule(elConfigPropertyIgnore, func(cp *ConfigProperty, f *Flag) { cp.Ignore = f }),
	flagRule(elConfigPropertyDynamic, func(cp *ConfigProperty, f *Flag) { cp.SupportsDynamicUpdates = f }),
	flagRule(elConfigPropertyConfidential, func(cp *ConfigProperty, f *Flag) { cp.Confidential = f }),
}

func (p *parser) configProperty(ev *Event) (*ConfigProperty, error) {
	cp := &ConfigProperty{}
	cp.ID, _ = ev.Attr(attrID)
	if err := drive(p, ev.Name, configPropertyRules, cp); err != nil {
		return nil, err
	}
	return cp, nil
}

var authenticationMechanismRules = []rule[*AuthenticationMechanism]{
	localizedRule(elDescription, func(am *AuthenticationMechanism, l LocalizedText) { am.Descriptions = append(am.Descriptions, l) }),
	textRule(elAuthenticationMechanismType, func(am *AuthenticationMechanism, t *Text) { am.Type = t }),
	{tag: elCredentialInterface, apply: func(p *parser, am *AuthenticationMechanism, ev *Event) error {
		ci, id, err := p.credentialInterface(ev)
		if err != nil {
			return err
		}
		am.CredentialInterface, am.CredentialInterfaceID = ci, id
		return nil
	}},
}

func (p *parser) authenticationMechanism(ev *Event) (AuthenticationMechanism, error) {
	var am AuthenticationMechanism
	am.ID, _ = ev.Attr(attrID)
	err := drive(p, ev.Name, authenticationMechanismRules, &am)
	return am, err
}

var securityPermissionRules = []rule[*SecurityPermission]{
	localizedRule(elDescription, func(sp *SecurityPermission, l LocalizedText) { sp.Descriptions = append(sp.Descriptions, l) }),
	textRule(elSecurityPermissionSpec, func(sp *SecurityPermission, t *Text) { sp.Spec = t }),
}

func (p *parser) securityPermission(ev *Event) (SecurityPermission, error) {
	var sp SecurityPermission
	sp.ID, _ = ev.Attr(attrID)
	err := drive(p, ev.Name, securityPermissionRules, &sp)
	return sp, err
}

var licenseRules = []rule[*License]{
	localizedRule(elDescription, func(l *License, d LocalizedText) { l.Descriptions = append(l.Descriptions, d) }),
	flagRule(elLicenseRequired, func(l *License, f *Flag) { l.Required, l.RequiredID = f.Value, f.ID }),
}

func (p *parser) license(ev *Event) (*License, error) {
	l := &License{}
	l.ID, _ = ev.Attr(attrID)
	if err := drive(p, ev.Name, licenseRules, l); err != nil {
		return nil, err
	}
	return l, nil
}

var iconRules = []rule[*Icon]{
	textRule(elSmallIcon, func(i *Icon, t *Text) { i.SmallIcon = t }),
	textRule(elLargeIcon, func(i *Icon, t *Text) { i.LargeIcon = t }),
}

func (p *parser) icon(ev *Event) (Icon, error) {
	var i Icon
	i.ID, _ = ev.Attr(attrID)
	i.Lang = p.lang(ev)
	err := drive(p, ev.Name, iconRules, &i)
	return i, err
}
