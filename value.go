package jsonshape

// Kind identifies the variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns the node name used in fault messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Boolean"
	case KindNumber:
		return "Number"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Record"
	default:
		return "Unknown"
	}
}

// Value is one node of a parsed JSON tree. It is a closed union over the
// seven variants below; the unexported marker method keeps the set closed so
// that exhaustive switches stay exhaustive. Values are immutable once
// constructed and safe to share between goroutines without copying; callers
// must not mutate Array or Object backing slices.
type Value interface {
	Kind() Kind
	value()
}

// Null is the JSON null value.
type Null struct{}

// Bool is a JSON true/false value.
type Bool bool

// Number is an integer numeric value. JSON number literals that fit an
// int64 parse to this variant; everything else numeric parses to Float.
// Both satisfy the Number type tag.
type Number int64

// Float is a floating-point numeric value.
type Float float64

// String is a JSON string value.
type String string

// Array is an ordered sequence of values.
type Array []Value

// Member is one name/value pair of an Object.
type Member struct {
	Name  string
	Value Value
}

// Object is an ordered sequence of members with unique names. Order is the
// order of appearance in the source text.
type Object []Member

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (Float) Kind() Kind  { return KindFloat }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }

func (Null) value()   {}
func (Bool) value()   {}
func (Number) value() {}
func (Float) value()  {}
func (String) value() {}
func (Array) value()  {}
func (Object) value() {}

// Lookup returns the value of the named member and whether it exists. A
// member whose value is Null is reported as existing; use LookupProperty for
// the collapsed missing-or-null view.
func (o Object) Lookup(name string) (Value, bool) {
	for _, m := range o {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}

// Field constructs an object member; a small convenience for building trees
// in code:
//
//	jsonshape.Object{jsonshape.Field("id", jsonshape.Number(1))}
func Field(name string, v Value) Member { return Member{Name: name, Value: v} }
