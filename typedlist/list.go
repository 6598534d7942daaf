package typedlist

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

const (
	//maximum length of a list whose size is computed from an index, a size, a count or a fill length.
	MAX_LENGTH = 1 << 28
)

// A List is an ordered sequence of slots whose elements are restricted by a Variant: a slot either holds
// nil (absence of value) or a value whose kind is allowed by the variant. Every operation checks its
// input before mutating the list, an operation that fails leaves the list unchanged.
//
// Lists must be created by a Variant, methods return ErrNilVariant when called on the zero value.
// Lists are not safe for concurrent use.
type List struct {
	variant  *Variant
	elements []any
}

// New returns an empty list.
func (v *Variant) New() *List {
	return &List{variant: v, elements: []any{}}
}

// NewSized returns a list of size nil slots.
func (v *Variant) NewSized(size int) (*List, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return &List{variant: v, elements: make([]any, size)}, nil
}

// NewFilled returns a list of size slots all holding value.
func (v *Variant) NewFilled(size int, value any) (*List, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if err := v.Check(value); err != nil {
		return nil, err
	}

	elements := make([]any, size)
	for i := range elements {
		elements[i] = value
	}
	return &List{variant: v, elements: elements}, nil
}

// NewFrom returns a list holding the elements of seq, see CheckAll.
func (v *Variant) NewFrom(seq any) (*List, error) {
	elements, err := v.checkedElements(seq)
	if err != nil {
		return nil, err
	}
	return &List{variant: v, elements: elements}, nil
}

// MustNewFrom is like NewFrom but panics on error.
func (v *Variant) MustNewFrom(seq any) *List {
	list, err := v.NewFrom(seq)
	if err != nil {
		panic(err)
	}
	return list
}

// NewGenerated returns a list of size elements, the element at index i is generate(i). The elements are generated
// in index order and each of them is checked as soon as it is generated: generation stops at the first
// disallowed element and no list is returned.
func (v *Variant) NewGenerated(size int, generate func(i int) any) (*List, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	elements := make([]any, size)
	for i := range elements {
		e := generate(i)
		if err := v.checkValue(e, i); err != nil {
			return nil, err
		}
		elements[i] = e
	}
	return &List{variant: v, elements: elements}, nil
}

func (l *List) Variant() *Variant {
	return l.variant
}

func (l *List) Len() int {
	return len(l.elements)
}

// At returns the element at index i, negative indexes count from the end of the list.
// At returns nil if the index is out of range.
func (l *List) At(i int) any {
	index, ok := l.normalizeIndex(i)
	if !ok || index >= len(l.elements) {
		return nil
	}
	return l.elements[index]
}

// ToSlice returns the elements in a plain slice, the caller can modify the result.
func (l *List) ToSlice() []any {
	return append(make([]any, 0, len(l.elements)), l.elements...)
}

// Clone returns a copy of the list with the same variant.
func (l *List) Clone() *List {
	return l.derive(slices.Clone(l.elements))
}

func (l *List) ForEach(fn func(i int, e any)) {
	for i, e := range l.elements {
		fn(i, e)
	}
}

// Index returns the index of the first element equal to value, or -1.
func (l *List) Index(value any) int {
	return slices.IndexFunc(l.elements, func(e any) bool {
		return reflect.DeepEqual(e, value)
	})
}

func (l *List) Contains(value any) bool {
	return l.Index(value) >= 0
}

func (l *List) String() string {
	buf := strings.Builder{}
	if l.variant != nil {
		buf.WriteString(l.variant.String())
	}
	buf.WriteByte('[')
	for i, e := range l.elements {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%v", e)
	}
	buf.WriteByte(']')
	return buf.String()
}

// derive returns a list of the same variant holding elements, the elements should have been checked.
func (l *List) derive(elements []any) *List {
	return &List{variant: l.variant, elements: elements}
}

// normalizeIndex converts a negative index to the corresponding positive index,
// ok is false if the resulting index is negative.
func (l *List) normalizeIndex(i int) (index int, ok bool) {
	if i < 0 {
		i += len(l.elements)
		if i < 0 {
			return 0, false
		}
	}
	return i, true
}

// commit replaces the elements of the list, the elements should have been checked.
func (l *List) commit(elements []any) {
	l.elements = elements
}

func (l *List) checkVariant() error {
	if l.variant == nil {
		return ErrNilVariant
	}
	return nil
}

func checkSize(size int) error {
	if size < 0 {
		return fmtNegativeCount("size", size)
	}
	if size > MAX_LENGTH {
		return fmtMaxLengthExceeded("size", size)
	}
	return nil
}

// checkGrowth returns an error if a list of the given length cannot be obtained by padding the list with nil slots.
// Lengths below the current length are always accepted.
func (l *List) checkGrowth(index, length int) error {
	if length > len(l.elements) && length > MAX_LENGTH {
		return fmtIndexOutOfRange(index, len(l.elements))
	}
	return nil
}
