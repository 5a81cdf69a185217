package domain

// Kind identifies the JSON type of a Value.
type Kind byte

const (
	// KindInvalid is the zero Kind; no parsed Value carries it.
	KindInvalid Kind = iota

	// KindObject is a JSON object. Only objects support named descent.
	KindObject

	// KindArray is a JSON array. Arrays are dead-ends for path segments.
	KindArray

	// KindString is a JSON string.
	KindString

	// KindNumber is a JSON number.
	KindNumber

	// KindBoolean is a JSON true or false.
	KindBoolean

	// KindNull is a JSON null.
	KindNull
)

// String returns the JSON type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "invalid"
	}
}

// Property is one member of a JSON object. It pairs the member name with
// its value and records the byte offset of the name token (the opening
// quote) in the source document.
type Property struct {
	// Name is the decoded member name.
	Name string

	// Value is the member's value. Never nil for parsed documents.
	Value *Value

	// NameOffset is the byte offset of the name token in the source.
	// Convert to a 1-based line with Document.LineAt.
	NameOffset int64
}

// Value is a single parsed JSON value.
//
// Values form a tree: objects hold Properties, arrays hold Elements, and
// scalars hold neither. Raw preserves the exact source text of the value
// (quotes included for strings, brackets included for containers) so that
// previews can show what the document actually says.
type Value struct {
	// Kind is the JSON type of this value.
	Kind Kind

	// Raw is the exact source text of the value.
	Raw string

	// Properties holds object members in source order. Duplicate member
	// names are collapsed last-wins at parse time, so names are unique.
	Properties []Property

	// Elements holds array members in source order.
	Elements []*Value

	// byName indexes Properties for direct-child lookup.
	byName map[string]int
}

// IsObject reports whether the value is a JSON object.
func (v *Value) IsObject() bool {
	return v != nil && v.Kind == KindObject
}

// AddProperty appends an object member, collapsing duplicate names
// last-wins: a repeated name replaces the earlier member in place, and the
// surviving name offset is the later occurrence's.
func (v *Value) AddProperty(p Property) {
	if v.byName == nil {
		v.byName = make(map[string]int)
	}
	if i, ok := v.byName[p.Name]; ok {
		v.Properties[i] = p
		return
	}
	v.byName[p.Name] = len(v.Properties)
	v.Properties = append(v.Properties, p)
}

// Property looks up a direct child of an object by exact name.
// It returns false for non-objects and unknown names; it never descends.
func (v *Value) Property(name string) (*Property, bool) {
	if !v.IsObject() {
		return nil, false
	}
	i, ok := v.byName[name]
	if !ok {
		return nil, false
	}
	return &v.Properties[i], true
}
