// Package kind provides the kind descriptors used to restrict the elements of typed lists:
// the kind of a value, and the subsumption relation between kinds.
package kind

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	ErrInvalidKind = errors.New("invalid kind")

	// Any subsumes every kind.
	Any = Of[any]()

	// Nil is the kind reported for the nil interface value.
	Nil = TypeKind{}

	// Sequence is the kind expected by operations that take an ordered sequence of values.
	Sequence Kind = builtinKind("sequence")
)

// A Kind is the runtime classification of a value.
type Kind interface {
	Name() string

	// Subsumes should return true if other is equal to the receiver or is a specialization of it.
	Subsumes(other Kind) bool
}

// A Kinded value reports its own kind, Oracle implementations should use it instead of
// the Go type of the value.
type Kinded interface {
	Kind() Kind
}

// InvalidKindError is returned when a kind descriptor was expected but something else was provided.
type InvalidKindError struct {
	Value any
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("%s: expected one of [kind, reflect.Type] but received a(n) %s", ErrInvalidKind, describeGoType(e.Value))
}

func (e *InvalidKindError) Is(target error) bool {
	return target == ErrInvalidKind
}

// From converts a kind descriptor to a Kind, the descriptor should either be a non-nil Kind or a
// non-nil reflect.Type. An *InvalidKindError is returned for any other value.
func From(descriptor any) (Kind, error) {
	switch d := descriptor.(type) {
	case reflect.Type:
		if d == nil {
			break
		}
		return TypeKind{typ: d}, nil
	case TypeKind:
		if d.typ == nil {
			break
		}
		return d, nil
	case Kind:
		if isNilPointer(d) {
			break
		}
		return d, nil
	}
	return nil, &InvalidKindError{Value: descriptor}
}

// FromAll converts all descriptors, it fails on the first invalid one.
func FromAll(descriptors []any) ([]Kind, error) {
	kinds := make([]Kind, 0, len(descriptors))
	for _, descriptor := range descriptors {
		k, err := From(descriptor)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Names returns the names of the kinds.
func Names(kinds []Kind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Name()
	}
	return names
}

// Format returns a bracketed, comma-separated list of the kinds' names.
func Format(kinds []Kind) string {
	return "[" + strings.Join(Names(kinds), ", ") + "]"
}

// Equal reports whether a and b denote the same kind.
func Equal(a, b Kind) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !isComparable(a) || !isComparable(b) {
		return a.Name() == b.Name() && a.Subsumes(b) && b.Subsumes(a)
	}
	return a == b
}

func isComparable(k Kind) bool {
	return reflect.TypeOf(k).Comparable()
}

// IsCacheable reports whether k can be used as a map key.
func IsCacheable(k Kind) bool {
	return k != nil && isComparable(k)
}

type builtinKind string

func (k builtinKind) Name() string {
	return string(k)
}

func (k builtinKind) Subsumes(other Kind) bool {
	o, ok := other.(builtinKind)
	return ok && o == k
}

func isNilPointer(v any) bool {
	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return val.IsNil()
	}
	return false
}

func describeGoType(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
