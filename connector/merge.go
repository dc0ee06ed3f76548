package connector

import (
	"slices"

	"go.uber.org/zap"

	"rardesc/common"
)

// Merge combines two descriptors of the same adapter, typically one read
// from ra.xml and one produced from annotations. Receiver always wins, the
// result is a fresh tree sharing nothing with either input.

type MergeOption func(*merger)

// WithUntypedMatch selects how connection definitions without factory class
// are matched.
func WithUntypedMatch(policy common.UntypedMatch) MergeOption {
	return func(m *merger) {
		m.untyped = policy
	}
}

func WithMergeLogger(log *zap.Logger) MergeOption {
	return func(m *merger) {
		if log != nil {
			m.log = log.Named("merge")
		}
	}
}

type merger struct {
	untyped common.UntypedMatch
	log     *zap.Logger
}

func newMerger(opts []MergeOption) *merger {
	m := &merger{untyped: common.UntypedMatchAny, log: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type node[T any] interface {
	copier[T]
	equaler[T]
}

// mergeDistinct appends entries of b not already present in a.
func mergeDistinct[T node[T]](a, b []T) []T {
	result := copyAll(a)
	for _, y := range b {
		if !slices.ContainsFunc(result, y.Equal) {
			result = append(result, y.Copy())
		}
	}
	return result
}

func mergeTexts(a, b []Text) []Text {
	result := slices.Clone(a)
	for _, y := range b {
		if !slices.ContainsFunc(result, func(x Text) bool { return x.Value == y.Value }) {
			result = append(result, y)
		}
	}
	return result
}

// mergeKeyed merges entries of b into the first entry of a they match and
// appends the rest. Replaced entries keep their position.
func mergeKeyed[T node[T]](a, b []T, match func(x, y T) bool, merge func(x, y T) T) []T {
	result := copyAll(a)
	for _, y := range b {
		idx := slices.IndexFunc(a, func(x T) bool { return match(x, y) })
		if idx < 0 {
			result = append(result, y.Copy())
			continue
		}
		result[idx] = merge(result[idx], y)
	}
	return result
}

func (m *merger) configProperties(a, b []*ConfigProperty) []*ConfigProperty {
	return mergeKeyed(a, b,
		func(x, y *ConfigProperty) bool { return x.Name.Equal(y.Name) },
		m.configProperty)
}

// Merge returns merged copy, the result has no id.
func (c *Connector) Merge(o *Connector, opts ...MergeOption) *Connector {
	return newMerger(opts).connector(c, o)
}

func (m *merger) connector(a, b *Connector) *Connector {
	if a == nil {
		return b.Copy()
	}
	if b == nil {
		return a.Copy()
	}
	return &Connector{
		Version:                a.Version,
		ModuleName:             pick(a.ModuleName, b.ModuleName),
		VendorName:             pick(a.VendorName, b.VendorName),
		EISType:                pick(a.EISType, b.EISType),
		ResourceAdapterVersion: pick(a.ResourceAdapterVersion, b.ResourceAdapterVersion),
		License:                m.license(a.License, b.License),
		ResourceAdapter:        m.resourceAdapter(a.ResourceAdapter, b.ResourceAdapter),
		RequiredWorkContexts:   mergeTexts(a.RequiredWorkContexts, b.RequiredWorkContexts),
		MetadataComplete:       a.MetadataComplete || b.MetadataComplete,
		Descriptions:           mergeDistinct(a.Descriptions, b.Descriptions),
		DisplayNames:           mergeDistinct(a.DisplayNames, b.DisplayNames),
		Icons:                  mergeDistinct(a.Icons, b.Icons),
	}
}

func (l *License) Merge(o *License, opts ...MergeOption) *License {
	return newMerger(opts).license(l, o)
}

func (m *merger) license(a, b *License) *License {
	if a == nil {
		return b.Copy()
	}
	if b == nil {
		return a.Copy()
	}
	n := &License{
		ID:           pickID(a.ID, b.ID),
		Descriptions: mergeDistinct(a.Descriptions, b.Descriptions),
		Required:     a.Required || b.Required,
		RequiredID:   pickID(a.RequiredID, b.RequiredID),
	}
	return n
}

func (ra *ResourceAdapter) Merge(o *ResourceAdapter, opts ...MergeOption) *ResourceAdapter {
	return newMerger(opts).resourceAdapter(ra, o)
}

func (m *merger) resourceAdapter(a, b *ResourceAdapter) *ResourceAdapter {
	if a == nil {
		return b.Copy()
	}
	if b == nil {
		return a.Copy()
	}
	n := NewResourceAdapter(
		pick(a.Class, b.Class),
		m.configProperties(a.ConfigProperties(), b.ConfigProperties()),
		mergeKeyed(a.AdminObjects(), b.AdminObjects(),
			func(x, y *AdminObject) bool { return x.Interface.Equal(y.Interface) && x.Class.Equal(y.Class) },
			m.adminObject),
	)
	n.ID = pickID(a.ID, b.ID)
	n.Outbound = m.outbound(a.Outbound, b.Outbound)
	n.Inbound = m.inbound(a.Inbound, b.Inbound)
	n.SecurityPermissions = mergeDistinct(a.SecurityPermissions, b.SecurityPermissions)
	return n
}

func (oa *OutboundAdapter) Merge(o *OutboundAdapter, opts ...MergeOption) *OutboundAdapter {
	return newMerger(opts).outbound(oa, o)
}

func (m *merger) outbound(a, b *OutboundAdapter) *OutboundAdapter {
	if a == nil {
		return b.Copy()
	}
	if b == nil {
		return a.Copy()
	}
	n := NewOutboundAdapter(m.connectionDefinitions(a.ConnectionDefinitions(), b.ConnectionDefinitions()))
	n.ID = pickID(a.ID, b.ID)
	n.AuthenticationMechanisms = mergeDistinct(a.AuthenticationMechanisms, b.AuthenticationMechanisms)
	n.ReauthenticationSupport = a.ReauthenticationSupport || b.ReauthenticationSupport
	n.ReauthenticationSupportID = pickID(a.ReauthenticationSupportID, b.ReauthenticationSupportID)
	if tx := a.transactionSupport.load(); tx.set {
		n.transactionSupport.v = tx
		n.TransactionSupportID = a.TransactionSupportID
	} else {
		n.transactionSupport.v = b.transactionSupport.load()
		n.TransactionSupportID = b.TransactionSupportID
	}
	return n
}

// connectionDefinitions matches each definition of b with the first
// receiver definition having equal factory class. Under UntypedMatchAny a
// receiver definition without factory class matches anything; once merged it
// takes the class of its match, so the next definition of b falls to the next
// untyped one.
func (m *merger) connectionDefinitions(a, b []*ConnectionDefinition) []*ConnectionDefinition {
	result := copyAll(a)
	for _, y := range b {
		idx := slices.IndexFunc(result[:len(a)], func(x *ConnectionDefinition) bool {
			if x.ManagedConnectionFactoryClass.Equal(y.ManagedConnectionFactoryClass) {
				return true
			}
			return m.untyped == common.UntypedMatchAny && x.ManagedConnectionFactoryClass.IsAbsent()
		})
		if idx < 0 {
			result = append(result, y.Copy())
			continue
		}
		if !result[idx].ManagedConnectionFactoryClass.Equal(y.ManagedConnectionFactoryClass) {
			m.log.Warn("Connection definition without factory class merged with typed one",
				zap.Int("index", idx),
				zap.String("class", y.ManagedConnectionFactoryClass.String()))
		}
		result[idx] = m.connectionDefinition(result[idx], y)
	}
	return result
}

func (cd *ConnectionDefinition) Merge(o *ConnectionDefinition, opts ...MergeOption) *ConnectionDefinition {
	return newMerger(opts).connectionDefinition(cd, o)
}

func (m *merger) connectionDefinition(a, b *ConnectionDefinition) *ConnectionDefinition {
	if a == nil {
		return b.Copy()
	}
	if b == nil {
		return a.Copy()
	}
	n := NewConnectionDefinition(
		pick(a.ManagedConnectionFactoryClass, b.ManagedConnectionFactoryClass),
		m.configProperties(a.ConfigProperties(), b.ConfigProperties()),
	)
	n.ID = pickID(a.ID, b.ID)
	n.ConnectionFactoryInterface = pick(a.ConnectionFactoryInterface, b.ConnectionFactoryInterface)
	n.ConnectionFactoryImplClass = pick(a.ConnectionFactoryImplClass, b.ConnectionFactoryImplClass)
	n.ConnectionInterface = pick(a.ConnectionInterface, b.ConnectionInterface)
	n.ConnectionImplClass = pick(a.ConnectionImplClass, b.ConnectionImplClass)
	return n
}

func (ia *InboundAdapter) Merge(o *InboundAdapter, opts ...MergeOption) *InboundAdapter {
	return newMerger(opts).inbound(ia, o)
}

func (m *merger) inbound(a, b *InboundAdapter) *InboundAdapter {
	if a == nil {
		return b.Copy()
	}
	if b == nil {
		return a.Copy()
	}
	return &InboundAdapter{
		ID:             pickID(a.ID, b.ID),
		MessageAdapter: m.messageAdapter(a.MessageAdapter, b.MessageAdapter),
	}
}

func (ma *MessageAdapter) Merge(o *MessageAdapter, opts ...MergeOption) *MessageAdapter {
	return newMerger(opts).messageAdapter(ma, o)
}

func (m *merger) messageAdapter(a, b *MessageAdapter) *MessageAdapter {
	if a == nil {
		return b.Copy()
	}
	if b == nil {
		return a.Copy()
	}
	return &MessageAdapter{
		ID: pickID(a.ID, b.ID),
		MessageListeners: mergeKeyed(a.MessageListeners, b.MessageListeners,
			func(x, y *MessageListener) bool { return x.Type.Equal(y.Type) },
			m.messageListener),
	}
}

func (ml *MessageListener) Merge(o *MessageListener, opts ...MergeOption) *MessageListener {
	return newMerger(opts).messageListener(ml, o)
}

func (m *merger) messageListener(a, b *MessageListener) *MessageListener {
	if a == nil {
		return b.Copy()
	}
	if b == nil {
		return a.Copy()
	}
	return &MessageListener{
		ID:             pickID(a.ID, b.ID),
		Type:           pick(a.Type, b.Type),
		Activationspec: m.activationspec(a.Activationspec, b.Activationspec),
	}
}

func (as *Activationspec) Merge(o *Activationspec, opts ...MergeOption) *Activationspec {
	return newMerger(opts).activationspec(as, o)
}

func (m *merger) activationspec(a, b *Activationspec) *Activationspec {
	if a == nil {
		return b.Copy()
	}
	if b == nil {
		return a.Copy()
	}
	return &Activationspec{
		ID:                       pickID(a.ID, b.ID),
		Class:                    pick(a.Class, b.Class),
		RequiredConfigProperties: mergeDistinct(a.RequiredConfigProperties, b.RequiredConfigProperties),
		ConfigProperties:         m.configProperties(a.ConfigProperties, b.ConfigProperties),
	}
}

func (ao *AdminObject) Merge(o *AdminObject, opts ...MergeOption) *AdminObject {
	return newMerger(opts).adminObject(ao, o)
}

func (m *merger) adminObject(a, b *AdminObject) *AdminObject {
	if a == nil {
		return b.Copy()
	}
	if b == nil {
		return a.Copy()
	}
	n := NewAdminObject(
		pick(a.Interface, b.Interface),
		pick(a.Class, b.Class),
		m.configProperties(a.ConfigProperties(), b.ConfigProperties()),
	)
	n.ID = pickID(a.ID, b.ID)
	return n
}

func (cp *ConfigProperty) Merge(o *ConfigProperty, opts ...MergeOption) *ConfigProperty {
	return newMerger(opts).configProperty(cp, o)
}

func (m *merger) configProperty(a, b *ConfigProperty) *ConfigProperty {
	if a == nil {
		return b.Copy()
	}
	if b == nil {
		return a.Copy()
	}
	return &ConfigProperty{
		ID:                     pickID(a.ID, b.ID),
		Descriptions:           mergeDistinct(a.Descriptions, b.Descriptions),
		Name:                   pick(a.Name, b.Name),
		Type:                   pick(a.Type, b.Type),
		Value:                  pick(a.Value, b.Value),
		Ignore:                 pickFlag(a.Ignore, b.Ignore),
		SupportsDynamicUpdates: pickFlag(a.SupportsDynamicUpdates, b.SupportsDynamicUpdates),
		Confidential:           pickFlag(a.Confidential, b.Confidential),
		Mandatory:              a.Mandatory || b.Mandatory,
		AttachedClass:          pickID(a.AttachedClass, b.AttachedClass),
	}
}
