package typedlist

import (
	"reflect"
	"slices"

	"github.com/inoxlang/typedlist/kind"
)

// A Sequence is an ordered sequence of values that lists accept as the source of bulk operations.
// Go slices and arrays are also accepted.
type Sequence interface {
	Len() int
	At(i int) any
}

var _ Sequence = (*List)(nil)

// Check returns a *ValidationError if value is not allowed by the variant.
// The nil value (absence of value) is always allowed.
func (v *Variant) Check(value any) error {
	return v.checkValue(value, -1)
}

// CheckAll checks every element of seq, seq should be a list, a Sequence, a slice or an array.
// A list of v or of one of the ancestors of v is accepted without checking its elements.
func (v *Variant) CheckAll(seq any) error {
	_, err := v.checkedElements(seq)
	return err
}

func (v *Variant) checkValue(value any, index int) error {
	if value == nil {
		return nil
	}
	return v.checkKind(v.registry.oracle.KindOf(value), index)
}

func (v *Variant) checkKind(k kind.Kind, index int) error {
	if v.isCachedAccepted(k) {
		return nil
	}

	accepted, expected := v.accepts(k)
	if accepted {
		if v.checkCache != nil && kind.IsCacheable(k) {
			v.checkCache.Set(k, struct{}{})
		}
		return nil
	}

	err := &ValidationError{
		Expected: expected,
		Actual:   k,
		Index:    index,
	}

	v.registry.logger.Debug().
		Str(VARIANT_LOG_FIELD_NAME, v.String()).
		Strs("expected", kind.Names(expected)).
		Str("actual", err.actualName()).
		Int("index", index).
		Msg("value rejected")

	return err
}

func (v *Variant) isCachedAccepted(k kind.Kind) bool {
	if v.checkCache == nil || !kind.IsCacheable(k) {
		return false
	}
	_, ok := v.checkCache.Get(k)
	return ok
}

// accepts returns whether one of the kinds in the allow-list subsumes k, if not a copy of the allow-list is returned.
func (v *Variant) accepts(k kind.Kind) (bool, []kind.Kind) {
	v.registry.lock.RLock()
	defer v.registry.lock.RUnlock()

	for _, allowed := range v.allowList {
		if allowed.Subsumes(k) {
			return true, nil
		}
	}
	return false, slices.Clone(v.allowList)
}

// Allows reports whether the variant accepts the kind k.
func (v *Variant) Allows(k kind.Kind) bool {
	if v.isCachedAccepted(k) {
		return true
	}
	accepted, _ := v.accepts(k)
	return accepted
}

// checkedElements returns a copy of the elements of seq after having checked all of them.
func (v *Variant) checkedElements(seq any) ([]any, error) {
	if list, ok := seq.(*List); ok && list != nil && v.trusts(list) {
		return slices.Clone(list.elements), nil
	}

	elements, err := v.sequenceElements(seq)
	if err != nil {
		return nil, err
	}

	if err := v.checkElements(elements); err != nil {
		return nil, err
	}
	return elements, nil
}

func (v *Variant) checkElements(elements []any) error {
	for i, e := range elements {
		if err := v.checkValue(e, i); err != nil {
			return err
		}
	}
	return nil
}

// trusts returns true if all the elements of the list are known to be allowed:
// the allow-list of an ancestor is always a subset of the allow-list of its descendants.
func (v *Variant) trusts(list *List) bool {
	return list.variant == v || v.IsDescendantOf(list.variant)
}

// sequenceElements returns a copy of the elements of seq without checking them.
func (v *Variant) sequenceElements(seq any) ([]any, error) {
	switch s := seq.(type) {
	case *List:
		if s == nil {
			break
		}
		return slices.Clone(s.elements), nil
	case []any:
		return append(make([]any, 0, len(s)), s...), nil
	case Sequence:
		if isNilPointer(s) {
			break
		}
		elements := make([]any, s.Len())
		for i := range elements {
			elements[i] = s.At(i)
		}
		return elements, nil
	case nil:
		return nil, newNotASequenceError(kind.Nil)
	}

	val := reflect.ValueOf(seq)
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.IsNil() {
			return []any{}, nil
		}
		elements := make([]any, val.Len())
		for i := range elements {
			elements[i] = val.Index(i).Interface()
		}
		return elements, nil
	}

	return nil, newNotASequenceError(v.registry.oracle.KindOf(seq))
}

func isNilPointer(v any) bool {
	val := reflect.ValueOf(v)
	return val.Kind() == reflect.Pointer && val.IsNil()
}
