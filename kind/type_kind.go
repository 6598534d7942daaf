package kind

import (
	"reflect"
)

// TypeKind is a Kind backed by a Go type. A TypeKind subsumes the kinds of the same type,
// a TypeKind whose type is an interface type also subsumes the kinds of the types implementing it.
type TypeKind struct {
	typ reflect.Type
}

// Of returns the kind of the values of type T.
func Of[T any]() TypeKind {
	return TypeKind{typ: reflect.TypeOf((*T)(nil)).Elem()}
}

// ForType returns the kind of the values of type t.
func ForType(t reflect.Type) TypeKind {
	return TypeKind{typ: t}
}

func (k TypeKind) Type() reflect.Type {
	return k.typ
}

func (k TypeKind) Name() string {
	switch {
	case k.typ == nil:
		return "nil"
	case k.typ.Kind() == reflect.Interface && k.typ.NumMethod() == 0:
		return "any"
	}
	return k.typ.String()
}

func (k TypeKind) String() string {
	return k.Name()
}

func (k TypeKind) Subsumes(other Kind) bool {
	if k.typ == nil {
		return false
	}

	isInterface := k.typ.Kind() == reflect.Interface

	if isInterface && k.typ.NumMethod() == 0 {
		return other != nil
	}

	o, ok := other.(TypeKind)
	if !ok || o.typ == nil {
		return false
	}

	if o.typ == k.typ {
		return true
	}
	return isInterface && o.typ.Implements(k.typ)
}

// An Oracle determines the kind of values.
type Oracle interface {
	// KindOf should return the most specific kind of v, v is never nil.
	KindOf(v any) Kind
}

type OracleFunc func(v any) Kind

func (f OracleFunc) KindOf(v any) Kind {
	return f(v)
}

// DefaultOracle uses the kind reported by Kinded values and falls back to the Go type.
var DefaultOracle Oracle = ReflectOracle{}

type ReflectOracle struct{}

func (ReflectOracle) KindOf(v any) Kind {
	if v == nil {
		return Nil
	}
	if kinded, ok := v.(Kinded); ok {
		if k := kinded.Kind(); k != nil && !isNilPointer(k) {
			return k
		}
	}
	return TypeKind{typ: reflect.TypeOf(v)}
}
