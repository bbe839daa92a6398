package ron

import "fmt"

// Kind discriminates the variants of a Value.
type Kind int

const (
	// KindUnit is a bare identifier such as `Texture` or `None`.
	KindUnit Kind = iota
	// KindBool is `true` or `false`.
	KindBool
	// KindNumber is an integer or float literal.
	KindNumber
	// KindString is a double-quoted string.
	KindString
	// KindList is `[a, b, c]`.
	KindList
	// KindTuple is `(a, b, c)`, optionally named: `Cube(1.0)`, `Some(x)`.
	KindTuple
	// KindStruct is `(field: value, ..)`, optionally named:
	// `Rgba(r: 1.0, ..)`. Field order is preserved.
	KindStruct
	// KindMap is `{ "key": value, .. }`. Entry order is preserved.
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	case KindStruct:
		return "struct"
	case KindMap:
		return "map"
	}
	return "unknown"
}

// Value is a parsed RON value. Exactly one payload field is meaningful,
// selected by Kind. Name is set for unit values, named tuples and named
// structs.
type Value struct {
	Kind   Kind
	Name   string
	Bool   bool
	Number float64
	Str    string
	Items  []Value // list elements or tuple elements
	Fields []Field // struct fields or map entries, in declaration order

	Line, Col int
}

// Field is a single struct field or map entry.
type Field struct {
	Key   string
	Value Value
}

// Field returns the named struct field or map entry.
func (v Value) Field(key string) (Value, bool) {
	for _, f := range v.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// HasField reports whether the named struct field or map entry exists.
func (v Value) HasField(key string) bool {
	_, ok := v.Field(key)
	return ok
}

// Float returns the numeric payload.
func (v Value) Float() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.Number, true
}

// Float32 returns the numeric payload as float32.
func (v Value) Float32() (float32, bool) {
	f, ok := v.Float()
	return float32(f), ok
}

// Int returns the numeric payload when it is integral.
func (v Value) Int() (int, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	i := int(v.Number)
	if float64(i) != v.Number {
		return 0, false
	}
	return i, true
}

// String returns a short description of the value, for error messages.
func (v Value) String() string {
	switch v.Kind {
	case KindUnit:
		return v.Name
	case KindBool:
		return fmt.Sprintf("%t", v.Bool)
	case KindNumber:
		return fmt.Sprintf("%g", v.Number)
	case KindString:
		return fmt.Sprintf("%q", v.Str)
	case KindTuple, KindStruct:
		if v.Name != "" {
			return fmt.Sprintf("%s(..)", v.Name)
		}
		return "(..)"
	case KindList:
		return "[..]"
	case KindMap:
		return "{..}"
	}
	return "?"
}
