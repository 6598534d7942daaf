package typedlist

import (
	"fmt"

	"github.com/goccy/go-json"
)

// MarshalJSON encodes the list as a JSON array, absence slots are encoded as null.
func (l *List) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.elements)
}

// UnmarshalJSON replaces the elements of the list with the elements of a JSON array. The list should
// have been created by a variant, its elements are left unchanged if one of the decoded elements is not allowed.
func (l *List) UnmarshalJSON(data []byte) error {
	if err := l.checkVariant(); err != nil {
		return err
	}

	elements, err := l.variant.decodeJSONArray(data)
	if err != nil {
		return err
	}
	return l.Replace(elements)
}

// DecodeJSON decodes a JSON array and returns a list holding its elements. JSON values are decoded
// as string, float64, bool, map[string]any, []any or nil.
func (v *Variant) DecodeJSON(data []byte) (*List, error) {
	elements, err := v.decodeJSONArray(data)
	if err != nil {
		return nil, err
	}
	return v.NewFrom(elements)
}

func (v *Variant) decodeJSONArray(data []byte) ([]any, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	elements, ok := value.([]any)
	if !ok {
		return nil, newNotASequenceError(v.registry.oracle.KindOf(value))
	}
	return elements, nil
}
