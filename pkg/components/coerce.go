package components

import (
	"encoding/json"
	"fmt"
)

func renderButton(c *Composer, props any) (Output, error) {
	p, err := coerceProps[ButtonProps](props)
	if err != nil {
		return Output{}, err
	}
	return c.RenderButton(p)
}

func renderInput(c *Composer, props any) (Output, error) {
	p, err := coerceProps[InputProps](props)
	if err != nil {
		return Output{}, err
	}
	return c.RenderInput(p)
}

func renderCheckbox(c *Composer, props any) (Output, error) {
	p, err := coerceProps[CheckboxProps](props)
	if err != nil {
		return Output{}, err
	}
	return c.RenderCheckbox(p)
}

// coerceProps accepts the typed props, a pointer to them, or a generic map
// decoded from JSON or YAML. Maps are decoded through their json tags.
func coerceProps[T any](value any) (T, error) {
	var zero T
	switch v := value.(type) {
	case nil:
		return zero, nil
	case T:
		return v, nil
	case *T:
		if v == nil {
			return zero, fmt.Errorf("nil %T props", v)
		}
		return *v, nil
	case map[string]any:
		var props T
		payload, err := json.Marshal(v)
		if err != nil {
			return zero, fmt.Errorf("marshal props map: %w", err)
		}
		if err := json.Unmarshal(payload, &props); err != nil {
			return zero, fmt.Errorf("unmarshal props map: %w", err)
		}
		return props, nil
	default:
		return zero, fmt.Errorf("unsupported props type %T for %T", value, zero)
	}
}
