package typedlist

import (
	"fmt"
	"slices"
	"sync"

	"github.com/inoxlang/typedlist/internal/memds"
	"github.com/inoxlang/typedlist/kind"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const (
	DEFAULT_CHECK_CACHE_SIZE = 256
)

var (
	defaultRegistry = NewRegistry(RegistryConfig{})
)

type RegistryConfig struct {
	//defaults to a logger that writes nothing.
	Logger zerolog.Logger

	//defaults to kind.DefaultOracle.
	Oracle kind.Oracle

	//maximum number of accepted kinds remembered by each variant, defaults to DEFAULT_CHECK_CACHE_SIZE.
	//A negative value disables the cache.
	CheckCacheSize int
}

// A Registry holds variants and the derivation relations between them. All the methods of
// Registry and Variant are safe for concurrent use: extending the allow-list of a variant and
// propagating the new kinds to its descendants happens atomically.
type Registry struct {
	lock sync.RWMutex

	//parent variant -> derived variants
	graph  *memds.DirectedGraph[*Variant, struct{}]
	byName map[string]*Variant

	oracle         kind.Oracle
	logger         zerolog.Logger
	checkCacheSize int
}

func NewRegistry(config RegistryConfig) *Registry {
	oracle := config.Oracle
	if oracle == nil {
		oracle = kind.DefaultOracle
	}

	cacheSize := config.CheckCacheSize
	if cacheSize == 0 {
		cacheSize = DEFAULT_CHECK_CACHE_SIZE
	}

	return &Registry{
		graph:          memds.NewDirectedGraph[*Variant, struct{}](),
		byName:         map[string]*Variant{},
		oracle:         oracle,
		logger:         childLoggerForRegistry(config.Logger),
		checkCacheSize: cacheSize,
	}
}

// DefaultRegistry returns the process-wide registry used by the package-level functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Of returns a new anonymous variant of the default registry that allows the passed kinds.
func Of(kinds ...any) (*Variant, error) {
	return defaultRegistry.Of(kinds...)
}

// MustOf is like Of but panics on error.
func MustOf(kinds ...any) *Variant {
	v, err := Of(kinds...)
	if err != nil {
		panic(err)
	}
	return v
}

// Declare declares a variant in the default registry.
func Declare(name string, kinds ...any) (*Variant, error) {
	return defaultRegistry.Declare(name, kinds...)
}

// Of returns a new anonymous variant that allows the passed kinds.
func (r *Registry) Of(kinds ...any) (*Variant, error) {
	return r.Declare("", kinds...)
}

// Declare creates a variant whose allow-list is seeded with the passed kinds, each kind should be
// a kind.Kind or a reflect.Type. Duplicate kinds are ignored. If name is empty the variant is anonymous,
// otherwise the name should not be used by another variant of the registry.
func (r *Registry) Declare(name string, kinds ...any) (*Variant, error) {
	allowList, err := toAllowList(kinds)
	if err != nil {
		return nil, err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	v, err := r.addVariantNoLock(name, nil, allowList)
	if err != nil {
		return nil, err
	}

	r.logger.Debug().Str(VARIANT_LOG_FIELD_NAME, v.String()).Strs("kinds", kind.Names(allowList)).Msg("variant declared")
	return v, nil
}

// Derive creates a variant whose allow-list is a copy of the current allow-list of parent,
// later extensions of parent's allow-list are propagated to the new variant.
func (r *Registry) Derive(parent *Variant, name string) (*Variant, error) {
	if parent == nil {
		return nil, ErrNilVariant
	}
	if parent.registry != r {
		return nil, ErrForeignVariant
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	child, err := r.addVariantNoLock(name, parent, slices.Clone(parent.allowList))
	if err != nil {
		return nil, err
	}
	r.graph.SetEdge(parent.node, child.node, struct{}{})

	r.logger.Debug().
		Str(VARIANT_LOG_FIELD_NAME, child.String()).
		Str("parent", parent.String()).
		Strs("kinds", kind.Names(child.allowList)).
		Msg("variant derived")

	return child, nil
}

func (r *Registry) addVariantNoLock(name string, parent *Variant, allowList []kind.Kind) (*Variant, error) {
	if name != "" {
		if _, ok := r.byName[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrVariantAlreadyDeclared, name)
		}
	}

	v := &Variant{
		id:        ulid.Make(),
		name:      name,
		registry:  r,
		parent:    parent,
		allowList: allowList,
	}
	v.initCheckCache(r.checkCacheSize)
	v.node = r.graph.AddNode(v)

	if name != "" {
		r.byName[name] = v
	}
	return v, nil
}

// extendNoLock adds the kinds to the allow-list of v and of all its descendants.
func (r *Registry) extendNoLock(v *Variant, kinds []kind.Kind) {
	v.addKindsNoLock(kinds)

	r.graph.WalkDescendants(v.node, func(node memds.GraphNode[*Variant]) bool {
		node.Data.addKindsNoLock(kinds)
		return true
	})
}

// Lookup returns the variant with the given name.
func (r *Registry) Lookup(name string) (*Variant, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	v, ok := r.byName[name]
	return v, ok
}

// Variants returns all the variants of the registry in declaration order.
func (r *Registry) Variants() []*Variant {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.variantsNoLock(r.graph.NodeIds())
}

func (r *Registry) variantsNoLock(ids []memds.NodeId) []*Variant {
	variants := make([]*Variant, 0, len(ids))
	for _, id := range ids {
		v, _ := r.graph.NodeData(id)
		variants = append(variants, v)
	}
	return variants
}

func (r *Registry) Oracle() kind.Oracle {
	return r.oracle
}

// toAllowList converts the descriptors to kinds and removes the duplicates.
func toAllowList(descriptors []any) ([]kind.Kind, error) {
	kinds, err := kind.FromAll(descriptors)
	if err != nil {
		return nil, err
	}
	return appendNewKinds(nil, kinds), nil
}

func appendNewKinds(allowList []kind.Kind, kinds []kind.Kind) []kind.Kind {
	for _, k := range kinds {
		if !containsKind(allowList, k) {
			allowList = append(allowList, k)
		}
	}
	return allowList
}

func containsKind(kinds []kind.Kind, k kind.Kind) bool {
	return slices.ContainsFunc(kinds, func(e kind.Kind) bool {
		return kind.Equal(e, k)
	})
}
