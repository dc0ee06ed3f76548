// Package overlay applies deployment overlays to parsed descriptors. An
// overlay is a small YAML document with configuration values for an
// environment; it never changes the shape of the descriptor, only values of
// already declared config properties and the outbound transaction level.
package overlay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/google/uuid"
	"github.com/rupor-github/gencfg"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"rardesc/config"
	"rardesc/connector"
)

const base = "connector/resourceadapter"

var ErrNoResourceAdapter = errors.New("descriptor has no resource adapter")

type (
	// Target selects connection definition (by managed connection factory
	// class) or admin object (by class) to update.
	Target struct {
		ClassName        string            `yaml:"class_name" validate:"required"`
		ConfigProperties map[string]string `yaml:"config_properties" validate:"required,dive,keys,required,endkeys"`
	}

	Overlay struct {
		TransactionSupport    *connector.TransactionSupport `yaml:"transaction_support,omitempty"`
		ConfigProperties      map[string]string             `yaml:"config_properties,omitempty" validate:"dive,keys,required,endkeys"`
		ConnectionDefinitions []Target                      `yaml:"connection_definitions,omitempty" validate:"dive"`
		AdminObjects          []Target                      `yaml:"admin_objects,omitempty" validate:"dive"`
	}

	// Result describes single application of an overlay.
	Result struct {
		Revision uuid.UUID
		// element paths of updated values
		Changed []string
		// overlay entries which did not match anything in the descriptor
		Unknown []string
	}
)

// Load decodes and validates overlay. Empty document is a valid empty overlay.
func Load(r io.Reader) (*Overlay, error) {
	ov := &Overlay{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(ov); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode overlay: %w", err)
	}
	if err := gencfg.Validate(ov); err != nil {
		return nil, fmt.Errorf("invalid overlay: %w", err)
	}
	return ov, nil
}

func LoadFile(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overlay: %w", err)
	}
	ov, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ov, nil
}

type applier struct {
	log *zap.Logger
	res *Result
}

// Apply pushes overlay values into c through force-replace cells. Readers
// holding earlier snapshots keep them; c itself is never reshaped.
func (ov *Overlay) Apply(c *connector.Connector, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if c == nil || c.ResourceAdapter == nil {
		return nil, ErrNoResourceAdapter
	}
	rev, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("unable to allocate overlay revision: %w", err)
	}
	a := &applier{log: log.Named("overlay").With(zap.Stringer("revision", rev)), res: &Result{Revision: rev}}

	ra := c.ResourceAdapter
	if props, ok := a.properties(base, ra.ConfigProperties(), ov.ConfigProperties); ok {
		ra.ForceConfigProperties(props)
	}

	if ov.TransactionSupport != nil {
		path := base + "/outbound-resourceadapter/transaction-support"
		if oa := ra.Outbound; oa == nil {
			a.unknown("transaction_support")
		} else if !oa.TransactionSupportSet() || oa.TransactionSupport() != *ov.TransactionSupport {
			oa.ForceTransactionSupport(*ov.TransactionSupport)
			a.changed(path, zap.Stringer("value", *ov.TransactionSupport))
		}
	}

	a.connectionDefinitions(ra.Outbound, ov.ConnectionDefinitions)
	a.adminObjects(ra.AdminObjects(), ov.AdminObjects)

	a.log.Info("Overlay applied", zap.Int("changed", len(a.res.Changed)), zap.Int("unknown", len(a.res.Unknown)))
	return a.res, nil
}

func (a *applier) changed(path string, fields ...zap.Field) {
	a.res.Changed = append(a.res.Changed, path)
	a.log.Debug("Value updated", append([]zap.Field{zap.String("path", path)}, fields...)...)
}

func (a *applier) unknown(entry string) {
	a.res.Unknown = append(a.res.Unknown, entry)
	a.log.Warn("Overlay entry does not match descriptor", zap.String("entry", entry))
}

// properties returns updated copy of props and whether anything changed.
// Properties are never added.
func (a *applier) properties(path string, props []*connector.ConfigProperty, values map[string]string) ([]*connector.ConfigProperty, bool) {
	if len(values) == 0 {
		return props, false
	}
	result := slices.Clone(props)
	seen := make(map[string]bool, len(values))
	changed := false
	for i, cp := range result {
		name := cp.Name.String()
		v, ok := values[name]
		if !ok {
			continue
		}
		seen[name] = true
		if cp.Value != nil && cp.Value.String() == v {
			continue
		}
		result[i] = cp.WithValue(v)
		changed = true
		a.changed(fmt.Sprintf("%s/config-property[%s]", path, name), propertyValue(cp, v))
	}
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if !seen[name] {
			a.unknown(fmt.Sprintf("%s/config-property[%s]", path, name))
		}
	}
	return result, changed
}

func propertyValue(cp *connector.ConfigProperty, v string) zap.Field {
	if cp.Confidential.Bool() {
		return zap.Stringer("value", config.SecretString(v))
	}
	return zap.String("value", v)
}

func (a *applier) connectionDefinitions(oa *connector.OutboundAdapter, targets []Target) {
	var cds []*connector.ConnectionDefinition
	if oa != nil {
		cds = oa.ConnectionDefinitions()
	}
	for _, t := range targets {
		i := slices.IndexFunc(cds, func(cd *connector.ConnectionDefinition) bool {
			return cd.ManagedConnectionFactoryClass.String() == t.ClassName
		})
		if i < 0 {
			a.unknown(fmt.Sprintf("connection_definitions[%s]", t.ClassName))
			continue
		}
		path := fmt.Sprintf("%s/outbound-resourceadapter/connection-definition[%s]", base, t.ClassName)
		if props, ok := a.properties(path, cds[i].ConfigProperties(), t.ConfigProperties); ok {
			cds[i].ForceConfigProperties(props)
		}
	}
}

func (a *applier) adminObjects(objs []*connector.AdminObject, targets []Target) {
	for _, t := range targets {
		i := slices.IndexFunc(objs, func(ao *connector.AdminObject) bool {
			return ao.Class.String() == t.ClassName
		})
		if i < 0 {
			a.unknown(fmt.Sprintf("admin_objects[%s]", t.ClassName))
			continue
		}
		path := fmt.Sprintf("%s/adminobject[%s]", base, t.ClassName)
		if props, ok := a.properties(path, objs[i].ConfigProperties(), t.ConfigProperties); ok {
			objs[i].ForceConfigProperties(props)
		}
	}
}
