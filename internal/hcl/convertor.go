package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// settingsToGo converts an evaluated settings value into plain Go maps and
// scalars for the format-agnostic model. The top-level value must be an
// object or a map.
func settingsToGo(val cty.Value) (map[string]any, error) {
	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("settings must be an object, got %s", ty.FriendlyName())
	}

	elems := val.AsValueMap()
	out := make(map[string]any, len(elems))
	for key, elem := range elems {
		goVal, err := valueToGo(elem)
		if err != nil {
			return nil, fmt.Errorf("setting %q: %w", key, err)
		}
		out[key] = goVal
	}
	return out, nil
}

// valueToGo converts a single cty value into its Go equivalent.
func valueToGo(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		elems := val.AsValueSlice()
		out := make([]any, 0, len(elems))
		for _, elem := range elems {
			goVal, err := valueToGo(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, goVal)
		}
		return out, nil
	case ty.IsObjectType() || ty.IsMapType():
		return settingsToGo(val)
	default:
		return nil, fmt.Errorf("unsupported settings value type %s", ty.FriendlyName())
	}
}
