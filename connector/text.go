package connector

// Text is a string value read from a descriptor element. A nil *Text is the
// absent value and is distinct from a present empty string. All methods are
// nil safe.
type Text struct {
	Value string
	// ID is the optional id attribute of the element.
	ID string
	// Tag is the element name the value was read from. It is kept for
	// diagnostics and never takes part in equality.
	Tag string
}

// NewText returns present text without id.
func NewText(tag, value string) *Text {
	return &Text{Value: value, Tag: tag}
}

func (t *Text) IsAbsent() bool {
	return t == nil
}

// String returns the value or empty string when absent.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return t.Value
}

// IsBlank reports absent text or text with empty value.
func (t *Text) IsBlank() bool {
	return t == nil || t.Value == ""
}

func (t *Text) Copy() *Text {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func (t *Text) Equal(o *Text) bool {
	if t == nil || o == nil {
		return t == nil && o == nil
	}
	return t.Value == o.Value
}

// pick returns t unless it is absent.
func pick(t, o *Text) *Text {
	if t.IsAbsent() {
		return o.Copy()
	}
	return t.Copy()
}

// LocalizedText is a text value carrying optional xml:lang. It only ever
// appears inside lists, so the zero value is a present empty string.
type LocalizedText struct {
	Value string
	Lang  string
	ID    string
	Tag   string
}

func (l LocalizedText) Copy() LocalizedText {
	return l
}

func (l LocalizedText) Equal(o LocalizedText) bool {
	return l.Value == o.Value && l.Lang == o.Lang
}

// Flag is an optional boolean element. A nil *Flag is absent.
type Flag struct {
	Value bool
	ID    string
}

func (f *Flag) IsAbsent() bool {
	return f == nil
}

// Bool returns the value, false when absent.
func (f *Flag) Bool() bool {
	return f != nil && f.Value
}

func (f *Flag) Copy() *Flag {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

func (f *Flag) Equal(o *Flag) bool {
	if f == nil || o == nil {
		return f == nil && o == nil
	}
	return f.Value == o.Value
}

func pickFlag(f, o *Flag) *Flag {
	if f.IsAbsent() {
		return o.Copy()
	}
	return f.Copy()
}

func pickID(id, other string) string {
	if id == "" {
		return other
	}
	return id
}
