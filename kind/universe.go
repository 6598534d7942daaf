package kind

import (
	"errors"
	"fmt"

	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	ErrUnknownKindName = errors.New("unknown kind name")
	ErrKindNameTaken   = errors.New("kind name already defined")
)

// A Universe maps names to kinds, it is safe for concurrent use.
type Universe struct {
	kinds cmap.ConcurrentMap[string, Kind]
}

// NewUniverse returns a Universe containing the builtin kinds:
// any, string, bool, int, int64, float64 & the JSON-oriented aliases number, object & array.
func NewUniverse() *Universe {
	u := &Universe{kinds: cmap.New[Kind]()}

	builtins := map[string]Kind{
		"any":     Any,
		"string":  Of[string](),
		"bool":    Of[bool](),
		"int":     Of[int](),
		"int64":   Of[int64](),
		"float64": Of[float64](),
		"number":  Of[float64](),
		"object":  Of[map[string]any](),
		"array":   Of[[]any](),
	}
	u.kinds.MSet(builtins)
	return u
}

// Define associates name with k, it fails if the name is already defined.
func (u *Universe) Define(name string, descriptor any) error {
	k, err := From(descriptor)
	if err != nil {
		return err
	}

	if !u.kinds.SetIfAbsent(name, k) {
		return fmt.Errorf("%w: %s", ErrKindNameTaken, name)
	}
	return nil
}

// DefineTaxonomy defines a name for every kind of the taxonomy.
func (u *Universe) DefineTaxonomy(t *Taxonomy) error {
	for _, k := range t.Kinds() {
		if err := u.Define(k.Name(), k); err != nil {
			return err
		}
	}
	return nil
}

func (u *Universe) Lookup(name string) (Kind, bool) {
	return u.kinds.Get(name)
}

// Resolve returns the kinds associated with names, it fails on the first unknown name.
func (u *Universe) Resolve(names ...string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		k, ok := u.kinds.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKindName, name)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Names returns the defined names, in no particular order.
func (u *Universe) Names() []string {
	return u.kinds.Keys()
}
