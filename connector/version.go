package connector

import "fmt"

// Version is one of the descriptor schema generations.
type Version int

const (
	Version10 Version = iota
	Version15
	Version16
	Version17
)

var versionNames = [...]string{"1.0", "1.5", "1.6", "1.7"}

// Versions lists supported generations oldest first.
func Versions() []Version {
	return []Version{Version10, Version15, Version16, Version17}
}

func (v Version) String() string {
	if v.IsValid() {
		return versionNames[v]
	}
	return fmt.Sprintf("Version(%d)", int(v))
}

func (v Version) IsValid() bool {
	return v >= Version10 && v <= Version17
}

// ParseVersion converts declared version attribute to Version. It is strict,
// the parser itself falls back to 1.0 for anything it does not recognize.
func ParseVersion(s string) (Version, error) {
	for i, n := range versionNames {
		if n == s {
			return Version(i), nil
		}
	}
	return Version10, fmt.Errorf("unsupported descriptor version %q", s)
}

// HasModuleName reports generations which know module-name and
// required-work-context.
func (v Version) HasModuleName() bool {
	return v >= Version16
}

// HasMetadataComplete reports generations which declare metadata-complete
// attribute.
func (v Version) HasMetadataComplete() bool {
	return v >= Version16
}

// Namespace returns XML namespace of the generation, 1.0 is DTD based and has
// none.
func (v Version) Namespace() string {
	switch v {
	case Version15:
		return "http://java.sun.com/xml/ns/j2ee"
	case Version16:
		return "http://java.sun.com/xml/ns/javaee"
	case Version17:
		return "http://xmlns.jcp.org/xml/ns/javaee"
	default:
		return ""
	}
}

// SchemaLocation returns value for xsi:schemaLocation.
func (v Version) SchemaLocation() string {
	switch v {
	case Version15:
		return v.Namespace() + " http://java.sun.com/xml/ns/j2ee/connector_1_5.xsd"
	case Version16:
		return v.Namespace() + " http://java.sun.com/xml/ns/javaee/connector_1_6.xsd"
	case Version17:
		return v.Namespace() + " http://xmlns.jcp.org/xml/ns/javaee/connector_1_7.xsd"
	default:
		return ""
	}
}

func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Version) UnmarshalText(text []byte) error {
	tmp, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = tmp
	return nil
}
