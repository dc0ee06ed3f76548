package connector

import (
	"errors"

	"go.uber.org/multierr"
)

// Validate checks that descriptor describes deployable adapter.
func (c *Connector) Validate() error {
	if c.ResourceAdapter == nil {
		return &ValidationError{Element: elConnector, Err: ErrNoResourceAdapter}
	}
	return c.ResourceAdapter.Validate()
}

// Validate succeeds when adapter has usable outbound part, usable inbound
// part or at least a resource adapter class.
func (ra *ResourceAdapter) Validate() error {
	if ra == nil {
		return &ValidationError{Element: elConnector, Err: ErrNoResourceAdapter}
	}

	var causes error
	if ra.Outbound == nil {
		causes = multierr.Append(causes, errors.New("no outbound resource adapter"))
	} else if err := ra.Outbound.Validate(); err != nil {
		causes = multierr.Append(causes, err)
	} else {
		return nil
	}

	if ra.Inbound == nil {
		causes = multierr.Append(causes, errors.New("no inbound resource adapter"))
	} else if err := ra.Inbound.Validate(); err != nil {
		causes = multierr.Append(causes, err)
	} else {
		return nil
	}

	if !ra.Class.IsBlank() {
		return nil
	}
	causes = multierr.Append(causes, errors.New("no resource adapter class"))
	return &ValidationError{Element: elResourceAdapter, Err: ErrInvalidResourceAdapter, Causes: causes}
}

// Validate succeeds when at least one connection definition is complete.
// Definitions are checked in order, an incomplete first definition does not
// fail the adapter when a later one is complete.
func (oa *OutboundAdapter) Validate() error {
	cds := oa.ConnectionDefinitions()
	if len(cds) == 0 {
		return &ValidationError{Element: elOutboundResourceAdapter, Err: ErrIncompleteDefinition}
	}
	var causes error
	for _, cd := range cds {
		err := cd.Validate()
		if err == nil {
			return nil
		}
		causes = multierr.Append(causes, err)
	}
	return &ValidationError{Element: elOutboundResourceAdapter, Err: ErrIncompleteDefinition, Causes: causes}
}

// Validate requires all five class and interface names.
func (cd *ConnectionDefinition) Validate() error {
	var causes error
	for _, f := range []struct {
		tag string
		v   *Text
	}{
		{elManagedConnectionFactory, cd.ManagedConnectionFactoryClass},
		{elConnectionFactoryInterface, cd.ConnectionFactoryInterface},
		{elConnectionFactoryImplClass, cd.ConnectionFactoryImplClass},
		{elConnectionInterface, cd.ConnectionInterface},
		{elConnectionImplClass, cd.ConnectionImplClass},
	} {
		if f.v.IsAbsent() {
			causes = multierr.Append(causes, errors.New("missing "+f.tag))
		}
	}
	if causes != nil {
		return &ValidationError{Element: elConnectionDefinition, Err: ErrIncompleteDefinition, Causes: causes}
	}
	return nil
}

// Validate requires message adapter with single listener which has type and
// activation spec class.
func (ia *InboundAdapter) Validate() error {
	fail := func(msg string) error {
		return &ValidationError{Element: elInboundResourceAdapter, Err: ErrIncompleteInbound, Causes: errors.New(msg)}
	}
	if ia.MessageAdapter == nil {
		return fail("no message adapter")
	}
	if len(ia.MessageAdapter.MessageListeners) != 1 {
		return fail("message adapter must have exactly one listener")
	}
	ml := ia.MessageAdapter.MessageListeners[0]
	if ml.Type.IsAbsent() {
		return fail("no message listener type")
	}
	if ml.Activationspec == nil || ml.Activationspec.Class.IsAbsent() {
		return fail("no activation spec class")
	}
	return nil
}
