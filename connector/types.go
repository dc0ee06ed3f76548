// Package connector implements resource adapter deployment descriptors
// (ra.xml): typed metadata tree, parser for all four schema generations,
// merge, deep copy, validation and canonical rendering.
package connector

import (
	"slices"
	"sync"
)

// Type definitions for descriptor structures. Nodes are built once by the
// parser (or by Merge and Copy) and are read only afterwards. The only
// mutation points are Force* methods which swap a whole value under a lock.

// cell guards single value which can be replaced after the tree is shared.
// Readers get whatever value was current at the time of the call and keep it
// regardless of later stores.
type cell[T any] struct {
	mu sync.RWMutex
	v  T
}

func (c *cell[T]) load() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v
}

func (c *cell[T]) store(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = v
}

// Connector mirrors the connector root element.
type Connector struct {
	Version                Version
	ID                     string
	ModuleName             *Text
	VendorName             *Text
	EISType                *Text
	ResourceAdapterVersion *Text
	License                *License
	ResourceAdapter        *ResourceAdapter
	RequiredWorkContexts   []Text
	MetadataComplete       bool
	Descriptions           []LocalizedText
	DisplayNames           []LocalizedText
	Icons                  []Icon
}

type License struct {
	ID           string
	Descriptions []LocalizedText
	Required     bool
	RequiredID   string
}

type Icon struct {
	ID        string
	Lang      string
	SmallIcon *Text
	LargeIcon *Text
}

// ResourceAdapter mirrors resourceadapter element. Config properties and
// admin objects can be replaced at runtime with ForceConfigProperties and
// ForceAdminObjects.
type ResourceAdapter struct {
	ID                  string
	Class               *Text
	Outbound            *OutboundAdapter
	Inbound             *InboundAdapter
	SecurityPermissions []SecurityPermission

	configProperties cell[[]*ConfigProperty]
	adminObjects     cell[[]*AdminObject]
}

// NewResourceAdapter creates resource adapter owning copies of provided lists.
func NewResourceAdapter(class *Text, props []*ConfigProperty, adminObjects []*AdminObject) *ResourceAdapter {
	ra := &ResourceAdapter{Class: class}
	ra.configProperties.v = slices.Clone(props)
	ra.adminObjects.v = slices.Clone(adminObjects)
	return ra
}

// ConfigProperties returns current snapshot. It must not be modified.
func (ra *ResourceAdapter) ConfigProperties() []*ConfigProperty {
	return ra.configProperties.load()
}

// ForceConfigProperties replaces config properties. Readers which already hold
// previous list are not affected.
func (ra *ResourceAdapter) ForceConfigProperties(props []*ConfigProperty) {
	ra.configProperties.store(slices.Clone(props))
}

// AdminObjects returns current snapshot. It must not be modified.
func (ra *ResourceAdapter) AdminObjects() []*AdminObject {
	return ra.adminObjects.load()
}

// ForceAdminObjects replaces admin objects, held snapshots stay unchanged.
func (ra *ResourceAdapter) ForceAdminObjects(objs []*AdminObject) {
	ra.adminObjects.store(slices.Clone(objs))
}

type txLevel struct {
	value TransactionSupport
	set   bool
}

// OutboundAdapter mirrors outbound-resourceadapter. Generation 1.0 inlines
// its content into resourceadapter, the parser builds it anyway.
type OutboundAdapter struct {
	ID                        string
	AuthenticationMechanisms  []AuthenticationMechanism
	ReauthenticationSupport   bool
	TransactionSupportID      string
	ReauthenticationSupportID string

	connectionDefinitions cell[[]*ConnectionDefinition]
	transactionSupport    cell[txLevel]
}

// NewOutboundAdapter creates outbound adapter owning a copy of cds.
func NewOutboundAdapter(cds []*ConnectionDefinition) *OutboundAdapter {
	oa := &OutboundAdapter{}
	oa.connectionDefinitions.v = slices.Clone(cds)
	return oa
}

// ConnectionDefinitions returns current snapshot. It must not be modified.
func (oa *OutboundAdapter) ConnectionDefinitions() []*ConnectionDefinition {
	return oa.connectionDefinitions.load()
}

// ForceConnectionDefinitions replaces connection definitions, held snapshots
// stay unchanged.
func (oa *OutboundAdapter) ForceConnectionDefinitions(cds []*ConnectionDefinition) {
	oa.connectionDefinitions.store(slices.Clone(cds))
}

// TransactionSupport returns declared level, NoTransaction when the
// descriptor does not declare one.
func (oa *OutboundAdapter) TransactionSupport() TransactionSupport {
	return oa.transactionSupport.load().value
}

// TransactionSupportSet reports whether level was declared or forced.
func (oa *OutboundAdapter) TransactionSupportSet() bool {
	return oa.transactionSupport.load().set
}

// ForceTransactionSupport sets the level and marks it declared.
func (oa *OutboundAdapter) ForceTransactionSupport(ts TransactionSupport) {
	oa.transactionSupport.store(txLevel{value: ts, set: true})
}

// ConnectionDefinition mirrors connection-definition.
type ConnectionDefinition struct {
	ID                            string
	ManagedConnectionFactoryClass *Text
	ConnectionFactoryInterface    *Text
	ConnectionFactoryImplClass    *Text
	ConnectionInterface           *Text
	ConnectionImplClass           *Text

	configProperties cell[[]*ConfigProperty]
}

// NewConnectionDefinition creates definition owning a copy of props.
func NewConnectionDefinition(factoryClass *Text, props []*ConfigProperty) *ConnectionDefinition {
	cd := &ConnectionDefinition{ManagedConnectionFactoryClass: factoryClass}
	cd.configProperties.v = slices.Clone(props)
	return cd
}

// ConfigProperties returns current snapshot. It must not be modified.
func (cd *ConnectionDefinition) ConfigProperties() []*ConfigProperty {
	return cd.configProperties.load()
}

// ForceConfigProperties replaces config properties of this definition only.
func (cd *ConnectionDefinition) ForceConfigProperties(props []*ConfigProperty) {
	cd.configProperties.store(slices.Clone(props))
}

type InboundAdapter struct {
	ID             string
	MessageAdapter *MessageAdapter
}

type MessageAdapter struct {
	ID               string
	MessageListeners []*MessageListener
}

type MessageListener struct {
	ID             string
	Type           *Text
	Activationspec *Activationspec
}

type Activationspec struct {
	ID                       string
	Class                    *Text
	RequiredConfigProperties []RequiredConfigProperty
	ConfigProperties         []*ConfigProperty
}

type RequiredConfigProperty struct {
	ID           string
	Descriptions []LocalizedText
	Name         *Text
}

// AdminObject mirrors adminobject. Its config properties can be replaced at
// runtime with ForceConfigProperties.
type AdminObject struct {
	ID        string
	Interface *Text
	Class     *Text

	configProperties cell[[]*ConfigProperty]
}

// NewAdminObject creates admin object owning a copy of props.
func NewAdminObject(iface, class *Text, props []*ConfigProperty) *AdminObject {
	ao := &AdminObject{Interface: iface, Class: class}
	ao.configProperties.v = slices.Clone(props)
	return ao
}

// ConfigProperties returns current snapshot. It must not be modified.
func (ao *AdminObject) ConfigProperties() []*ConfigProperty {
	return ao.configProperties.load()
}

// ForceConfigProperties replaces config properties of this admin object only.
func (ao *AdminObject) ForceConfigProperties(props []*ConfigProperty) {
	ao.configProperties.store(slices.Clone(props))
}

// ConfigProperty mirrors config-property.
type ConfigProperty struct {
	ID                     string
	Descriptions           []LocalizedText
	Name                   *Text
	Type                   *Text
	Value                  *Text
	Ignore                 *Flag
	SupportsDynamicUpdates *Flag
	Confidential           *Flag

	// Mandatory and AttachedClass are filled when properties are discovered
	// from annotated classes rather than declared. They must be set before the
	// tree is shared.
	Mandatory     bool
	AttachedClass string
}

// IsValueSet reports non empty value.
func (cp *ConfigProperty) IsValueSet() bool {
	return !cp.Value.IsBlank()
}

// WithValue returns copy of the property with value replaced, keeping id and
// tag of the original value element.
func (cp *ConfigProperty) WithValue(value string) *ConfigProperty {
	n := cp.Copy()
	if n.Value == nil {
		n.Value = NewText(elConfigPropertyValue, value)
	} else {
		n.Value.Value = value
	}
	return n
}

type AuthenticationMechanism struct {
	ID                    string
	Descriptions          []LocalizedText
	Type                  *Text
	CredentialInterface   CredentialInterface
	CredentialInterfaceID string
}

type SecurityPermission struct {
	ID           string
	Descriptions []LocalizedText
	Spec         *Text
}
