package typedlist

import (
	"math"
	"slices"
)

// Append appends the values to the list, nothing is appended if one of the values is not allowed.
func (l *List) Append(values ...any) error {
	if err := l.checkVariant(); err != nil {
		return err
	}

	if err := l.variant.checkElements(values); err != nil {
		return err
	}
	l.elements = append(l.elements, values...)
	return nil
}

// Prepend inserts the values at the start of the list, in order. Nothing is inserted if one of the values
// is not allowed.
func (l *List) Prepend(values ...any) error {
	return l.Insert(0, values...)
}

// Insert inserts the values before the element at index i. A negative index counts from the end, -1 inserting
// after the last element. If i is greater than the length of the list the list is padded with nil slots.
func (l *List) Insert(i int, values ...any) error {
	if err := l.checkVariant(); err != nil {
		return err
	}

	index := i
	if index < 0 {
		index += len(l.elements) + 1
		if index < 0 {
			return fmtIndexOutOfRange(i, len(l.elements))
		}
	}
	if err := l.checkGrowth(i, index); err != nil {
		return err
	}

	if err := l.variant.checkElements(values); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}

	elements := l.elements
	if index > len(elements) {
		elements = padded(elements, index)
	}
	l.commit(slices.Insert(elements, index, values...))
	return nil
}

// Set sets the element at index i, a negative index counts from the end. If i is greater or equal to the length
// of the list the list is padded with nil slots.
func (l *List) Set(i int, value any) error {
	if err := l.checkVariant(); err != nil {
		return err
	}

	index, ok := l.normalizeIndex(i)
	if !ok || index == math.MaxInt {
		return fmtIndexOutOfRange(i, len(l.elements))
	}
	if err := l.checkGrowth(i, index+1); err != nil {
		return err
	}

	if err := l.variant.Check(value); err != nil {
		return err
	}

	if index >= len(l.elements) {
		l.elements = padded(l.elements, index+1)
	}
	l.elements[index] = value
	return nil
}

// SetRange replaces the elements in [start, end) with the elements of seq, seq can have any length.
// Negative indexes count from the end and end is clamped to [start, length].
func (l *List) SetRange(start, end int, seq any) error {
	if err := l.checkVariant(); err != nil {
		return err
	}

	from, ok := l.normalizeIndex(start)
	if !ok {
		return fmtIndexOutOfRange(start, len(l.elements))
	}
	if err := l.checkGrowth(start, from); err != nil {
		return err
	}

	values, err := l.variant.checkedElements(seq)
	if err != nil {
		return err
	}

	to, ok := l.normalizeIndex(end)
	if !ok || to < from {
		to = from
	}
	to = min(to, len(l.elements))

	elements := l.elements
	if from > len(elements) {
		elements = padded(elements, from)
		to = from
	}
	l.commit(slices.Replace(elements, from, to, values...))
	return nil
}

// Replace replaces all the elements of the list with the elements of seq, see Variant.CheckAll.
func (l *List) Replace(seq any) error {
	if err := l.checkVariant(); err != nil {
		return err
	}

	elements, err := l.variant.checkedElements(seq)
	if err != nil {
		return err
	}
	l.commit(elements)
	return nil
}

// Concat appends the elements of seq to the list, see Variant.CheckAll.
func (l *List) Concat(seq any) error {
	if err := l.checkVariant(); err != nil {
		return err
	}

	elements, err := l.variant.checkedElements(seq)
	if err != nil {
		return err
	}
	l.elements = append(l.elements, elements...)
	return nil
}

// Pop removes the last element and returns it, ok is false if the list is empty.
func (l *List) Pop() (e any, ok bool) {
	if len(l.elements) == 0 {
		return nil, false
	}
	last := len(l.elements) - 1
	e = l.elements[last]
	l.elements[last] = nil
	l.elements = l.elements[:last]
	return e, true
}

// Shift removes the first element and returns it, ok is false if the list is empty.
func (l *List) Shift() (e any, ok bool) {
	if len(l.elements) == 0 {
		return nil, false
	}
	e = l.elements[0]
	l.elements = slices.Delete(l.elements, 0, 1)
	return e, true
}

// RemoveAt removes the element at index i and returns it, a negative index counts from the end.
func (l *List) RemoveAt(i int) (any, error) {
	index, ok := l.normalizeIndex(i)
	if !ok || index >= len(l.elements) {
		return nil, fmtIndexOutOfRange(i, len(l.elements))
	}
	e := l.elements[index]
	l.elements = slices.Delete(l.elements, index, index+1)
	return e, nil
}

func (l *List) Clear() {
	l.elements = []any{}
}

// Fill sets every slot to value.
func (l *List) Fill(value any) error {
	return l.fill(0, 0, true, func(int) any { return value })
}

// FillFrom sets every slot from start to the end to value.
func (l *List) FillFrom(value any, start int) error {
	return l.fill(start, 0, true, func(int) any { return value })
}

// FillRange sets length slots starting at start to value, the list grows if the range goes beyond its end.
func (l *List) FillRange(value any, start, length int) error {
	return l.fill(start, length, false, func(int) any { return value })
}

// FillFunc sets every slot to the value returned by fn for its index.
func (l *List) FillFunc(fn func(i int) any) error {
	return l.fill(0, 0, true, fn)
}

// FillRangeFunc is like FillRange but the value of each slot is returned by fn.
func (l *List) FillRangeFunc(start, length int, fn func(i int) any) error {
	return l.fill(start, length, false, fn)
}

// fill fills a copy of the elements and then replaces the elements of the list with the copy.
// A negative start counts from the end and is clamped to 0, a negative length fills nothing.
func (l *List) fill(start, length int, toEnd bool, valueAt func(i int) any) error {
	if err := l.checkVariant(); err != nil {
		return err
	}

	n := len(l.elements)
	if start < 0 {
		start = max(start+n, 0)
	}

	end := n
	if !toEnd {
		if length < 0 {
			return nil
		}
		if length > math.MaxInt-start {
			return fmtMaxLengthExceeded("fill length", length)
		}
		end = start + length
		if end > n && end > MAX_LENGTH {
			return fmtMaxLengthExceeded("fill length", length)
		}
	}

	candidate := slices.Clone(l.elements)
	if end > n {
		candidate = padded(candidate, end)
	}

	for i := start; i < end; i++ {
		candidate[i] = valueAt(i)
	}

	return l.Replace(candidate)
}

// MapInPlace replaces each element with the value returned by fn, the list is left unchanged if one of the
// returned values is not allowed.
func (l *List) MapInPlace(fn func(e any) any) error {
	if err := l.checkVariant(); err != nil {
		return err
	}

	results := make([]any, len(l.elements))
	for i, e := range l.elements {
		results[i] = fn(e)
	}
	return l.Replace(results)
}

// padded returns elements extended with nil slots up to length.
func padded(elements []any, length int) []any {
	if length <= len(elements) {
		return elements
	}
	return append(elements, make([]any, length-len(elements))...)
}
