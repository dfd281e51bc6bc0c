package model

import "fmt"

// DataType identifies the type carried by a pin, variable, or value.
type DataType string

const (
	TypeExec   DataType = "exec"
	TypeBool   DataType = "bool"
	TypeI32    DataType = "i32"
	TypeF32    DataType = "f32"
	TypeString DataType = "string"
	TypeUnit   DataType = "unit"
)

// ParseDataType converts a user-facing type name into a DataType.
func ParseDataType(s string) (DataType, error) {
	switch DataType(s) {
	case TypeExec, TypeBool, TypeI32, TypeF32, TypeString, TypeUnit:
		return DataType(s), nil
	}
	return "", fmt.Errorf("unknown data type %q", s)
}

// Value is a tagged union holding one concrete scalar. Exactly the payload
// field matching Type is meaningful; the rest stay at their zero values so
// that Value remains comparable with == and round-trips through JSON.
type Value struct {
	Type  DataType `json:"type"`
	Bool  bool     `json:"bool,omitempty"`
	Int   int32    `json:"int,omitempty"`
	Float float32  `json:"float,omitempty"`
	Str   string   `json:"str,omitempty"`
}

// UnitValue is the empty value. It doubles as the zero value for the Exec
// and Unit types.
func UnitValue() Value { return Value{Type: TypeUnit} }

func BoolValue(b bool) Value      { return Value{Type: TypeBool, Bool: b} }
func IntValue(i int32) Value      { return Value{Type: TypeI32, Int: i} }
func FloatValue(f float32) Value  { return Value{Type: TypeF32, Float: f} }
func StringValue(s string) Value  { return Value{Type: TypeString, Str: s} }

// ZeroValue returns the default value materialized for a variable of the
// given type when no explicit default is authored.
func ZeroValue(t DataType) Value {
	switch t {
	case TypeBool:
		return BoolValue(false)
	case TypeI32:
		return IntValue(0)
	case TypeF32:
		return FloatValue(0)
	case TypeString:
		return StringValue("")
	default:
		// Exec and Unit have no payload.
		return UnitValue()
	}
}

// AsString returns the string payload, reporting whether the value holds one.
func (v Value) AsString() (string, bool) {
	if v.Type != TypeString {
		return "", false
	}
	return v.Str, true
}

// AsBool returns the bool payload, reporting whether the value holds one.
func (v Value) AsBool() (bool, bool) {
	if v.Type != TypeBool {
		return false, false
	}
	return v.Bool, true
}

// AsInt returns the i32 payload, reporting whether the value holds one.
func (v Value) AsInt() (int32, bool) {
	if v.Type != TypeI32 {
		return 0, false
	}
	return v.Int, true
}

// AsFloat returns the f32 payload, reporting whether the value holds one.
func (v Value) AsFloat() (float32, bool) {
	if v.Type != TypeF32 {
		return 0, false
	}
	return v.Float, true
}

func (v Value) String() string {
	switch v.Type {
	case TypeBool:
		return fmt.Sprintf("%t", v.Bool)
	case TypeI32:
		return fmt.Sprintf("%d", v.Int)
	case TypeF32:
		return fmt.Sprintf("%g", v.Float)
	case TypeString:
		return v.Str
	default:
		return "()"
	}
}
