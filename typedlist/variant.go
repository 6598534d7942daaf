package typedlist

import (
	"slices"

	"github.com/inoxlang/typedlist/internal/memds"
	"github.com/inoxlang/typedlist/kind"
	"github.com/oklog/ulid/v2"
	"github.com/tidwall/tinylru"
)

// A Variant is a named configuration of typed lists: the allow-list of the kinds its lists
// accept and its position in the derivation hierarchy of its registry. Allow-lists only grow.
type Variant struct {
	id       ulid.ULID
	name     string
	registry *Registry
	node     memds.NodeId
	parent   *Variant

	allowList []kind.Kind //protected by the registry's lock

	//accepted kinds, since allow-lists never shrink an accepted kind stays accepted.
	checkCache *tinylru.LRU
}

func (v *Variant) initCheckCache(size int) {
	if size <= 0 {
		return
	}
	v.checkCache = &tinylru.LRU{}
	v.checkCache.Resize(size)
}

func (v *Variant) Id() ulid.ULID {
	return v.id
}

// Name returns the name of the variant, it is empty for anonymous variants.
func (v *Variant) Name() string {
	return v.name
}

func (v *Variant) IsAnonymous() bool {
	return v.name == ""
}

func (v *Variant) String() string {
	if v.name == "" {
		return "anonymous-" + v.id.String()
	}
	return v.name
}

func (v *Variant) Registry() *Registry {
	return v.registry
}

// AllowList returns a copy of the kinds allowed by the variant, in insertion order.
func (v *Variant) AllowList() []kind.Kind {
	v.registry.lock.RLock()
	defer v.registry.lock.RUnlock()

	return slices.Clone(v.allowList)
}

// Extend adds the kinds to the allow-list of the variant and to the allow-lists of all the variants derived
// from it, directly or not. Each kind should be a kind.Kind or a reflect.Type, if one of them is not nothing
// is added. Extend returns the resulting allow-list of the variant.
func (v *Variant) Extend(kinds ...any) ([]kind.Kind, error) {
	newKinds, err := kind.FromAll(kinds)
	if err != nil {
		return nil, err
	}

	r := v.registry
	r.lock.Lock()
	defer r.lock.Unlock()

	r.extendNoLock(v, newKinds)

	r.logger.Debug().Str(VARIANT_LOG_FIELD_NAME, v.String()).Strs("kinds", kind.Names(newKinds)).Msg("allow-list extended")
	return slices.Clone(v.allowList), nil
}

func (v *Variant) addKindsNoLock(kinds []kind.Kind) {
	v.allowList = appendNewKinds(v.allowList, kinds)
}

// Derive creates a variant derived from v, see Registry.Derive.
func (v *Variant) Derive(name string) (*Variant, error) {
	return v.registry.Derive(v, name)
}

// Parent returns the variant v has been derived from, or nil.
func (v *Variant) Parent() *Variant {
	return v.parent
}

// Children returns the variants directly derived from v, in derivation order.
func (v *Variant) Children() []*Variant {
	v.registry.lock.RLock()
	defer v.registry.lock.RUnlock()

	return v.registry.variantsNoLock(v.registry.graph.DestinationIds(v.node))
}

// IsDescendantOf returns true if v has been derived from ancestor, directly or not.
func (v *Variant) IsDescendantOf(ancestor *Variant) bool {
	if ancestor == nil || ancestor.registry != v.registry || ancestor == v {
		return false
	}

	v.registry.lock.RLock()
	defer v.registry.lock.RUnlock()

	return v.registry.graph.IsReachable(ancestor.node, v.node)
}
