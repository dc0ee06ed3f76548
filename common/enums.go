// Enums shared by configuration and descriptor processing. Keeping them here
// lets config decode them without importing the connector package.
package common

// Matching policy for connection definitions without factory class during
// merge. "any" matches the first base definition that has no factory class
// against whatever the override brings, "strict" only lets untyped match
// untyped.
// ENUM(any, strict)
type UntypedMatch int

// Output produced by render-like commands.
// ENUM(xml, tree)
type OutputFormat int

func (o OutputFormat) Ext() string {
	switch o {
	case OutputFormatXml:
		return ".xml"
	case OutputFormatTree:
		return ".txt"
	default:
		// this should never happen
		panic("unsupported output format requested")
	}
}
