package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/blueprintgo/internal/model"
)

// ctyToValue converts an evaluated HCL expression into a model value. When
// target names a concrete type the conversion is checked against it; with
// an empty target the value's own cty type decides, and whole numbers
// become i32 while fractional ones become f32.
func ctyToValue(v cty.Value, target model.DataType) (model.Value, error) {
	if v.IsNull() {
		return model.UnitValue(), nil
	}

	if target == "" {
		switch v.Type() {
		case cty.Bool:
			target = model.TypeBool
		case cty.String:
			target = model.TypeString
		case cty.Number:
			target = model.TypeF32
			if bf := v.AsBigFloat(); bf.IsInt() {
				target = model.TypeI32
			}
		default:
			return model.Value{}, fmt.Errorf("unsupported value type %s", v.Type().FriendlyName())
		}
	}

	switch target {
	case model.TypeBool:
		var b bool
		if err := gocty.FromCtyValue(v, &b); err != nil {
			return model.Value{}, err
		}
		return model.BoolValue(b), nil
	case model.TypeI32:
		var i int32
		if err := gocty.FromCtyValue(v, &i); err != nil {
			return model.Value{}, err
		}
		return model.IntValue(i), nil
	case model.TypeF32:
		var f float32
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return model.Value{}, err
		}
		return model.FloatValue(f), nil
	case model.TypeString:
		var s string
		if err := gocty.FromCtyValue(v, &s); err != nil {
			return model.Value{}, err
		}
		return model.StringValue(s), nil
	default:
		return model.Value{}, fmt.Errorf("values of type %q cannot be authored", target)
	}
}
