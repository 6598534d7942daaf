package typedlist

import (
	"reflect"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Intersect returns a list of the same variant holding the elements of l that are also elements of seq,
// without duplicates and in the order of l. The elements of seq are not checked: the result only
// contains elements of l.
func (l *List) Intersect(seq any) (*List, error) {
	if err := l.checkVariant(); err != nil {
		return nil, err
	}

	others, err := l.variant.sequenceElements(seq)
	if err != nil {
		return nil, err
	}

	var kept bitset.BitSet
	count := 0

	for i, e := range l.elements {
		if !containsDeepEqual(others, e) {
			continue
		}

		duplicate := false
		for j, ok := kept.NextSet(0); ok && int(j) < i; j, ok = kept.NextSet(j + 1) {
			if reflect.DeepEqual(l.elements[j], e) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept.Set(uint(i))
			count++
		}
	}

	elements := make([]any, 0, count)
	for i, ok := kept.NextSet(0); ok; i, ok = kept.NextSet(i + 1) {
		elements = append(elements, l.elements[i])
	}
	return l.derive(elements), nil
}

// Repeat returns a list of the same variant holding the elements of l repeated n times.
func (l *List) Repeat(n int) (*List, error) {
	if err := l.checkVariant(); err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, fmtNegativeCount("repeat count", n)
	}
	if n > 0 && len(l.elements) > MAX_LENGTH/n {
		return nil, fmtMaxLengthExceeded("repeat count", n)
	}
	return l.derive(slices.Repeat(l.elements, n)), nil
}

// Plus returns a list of the same variant holding the elements of l followed by the elements of seq,
// l is not modified.
func (l *List) Plus(seq any) (*List, error) {
	if err := l.checkVariant(); err != nil {
		return nil, err
	}

	elements, err := l.variant.checkedElements(seq)
	if err != nil {
		return nil, err
	}
	return l.derive(slices.Concat(l.elements, elements)), nil
}

// Slice returns a list of the same variant holding the elements in [start, end). Negative indexes count
// from the end, end is clamped to the length of the list and an end before start results in an empty list.
func (l *List) Slice(start, end int) (*List, error) {
	if err := l.checkVariant(); err != nil {
		return nil, err
	}

	from, ok := l.normalizeIndex(start)
	if !ok || from > len(l.elements) {
		return nil, fmtIndexOutOfRange(start, len(l.elements))
	}

	to, ok := l.normalizeIndex(end)
	if !ok || to < from {
		to = from
	}
	to = min(to, len(l.elements))

	return l.derive(slices.Clone(l.elements[from:to])), nil
}

// Equal reports whether other is a sequence holding the same elements as l, in the same order.
// It returns false if other is not a sequence.
func (l *List) Equal(other any) bool {
	if list, ok := other.(*List); ok && list == l {
		return true
	}
	if l.variant == nil {
		return false
	}

	elements, err := l.variant.sequenceElements(other)
	if err != nil {
		return false
	}
	return equalElements(l.elements, elements)
}

// EqualStrict is like Equal but it first checks the elements of other against the variant of l, a disallowed
// element results in a *ValidationError instead of false.
func (l *List) EqualStrict(other any) (bool, error) {
	if err := l.checkVariant(); err != nil {
		return false, err
	}

	elements, err := l.variant.checkedElements(other)
	if err != nil {
		return false, err
	}
	return equalElements(l.elements, elements), nil
}

func equalElements(a, b []any) bool {
	return slices.EqualFunc(a, b, func(e1, e2 any) bool {
		return reflect.DeepEqual(e1, e2)
	})
}

func containsDeepEqual(elements []any, value any) bool {
	return slices.ContainsFunc(elements, func(e any) bool {
		return reflect.DeepEqual(e, value)
	})
}
