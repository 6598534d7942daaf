package kind

import (
	"errors"
	"fmt"
	"sync"

	"github.com/inoxlang/typedlist/internal/memds"
)

var (
	ErrKindAlreadyDeclared  = errors.New("kind already declared")
	ErrForeignNominalKind   = errors.New("nominal kind belongs to another taxonomy")
	ErrSpecializationCycle  = errors.New("specialization cycle")
	ErrEmptyNominalKindName = errors.New("empty nominal kind name")
)

// A Taxonomy is a set of nominal kinds and of the specialization relations between them.
// A specialization can have several generalizations.
type Taxonomy struct {
	lock sync.RWMutex

	//generalization -> specializations
	graph  *memds.DirectedGraph[*NominalKind, struct{}]
	byName map[string]*NominalKind
}

func NewTaxonomy() *Taxonomy {
	return &Taxonomy{
		graph:  memds.NewDirectedGraph[*NominalKind, struct{}](),
		byName: map[string]*NominalKind{},
	}
}

// A NominalKind is a kind declared in a Taxonomy, it subsumes itself and its direct or indirect specializations.
type NominalKind struct {
	name     string
	node     memds.NodeId
	taxonomy *Taxonomy
}

func (k *NominalKind) Name() string {
	return k.name
}

func (k *NominalKind) String() string {
	return k.name
}

func (k *NominalKind) Taxonomy() *Taxonomy {
	return k.taxonomy
}

func (k *NominalKind) Subsumes(other Kind) bool {
	o, ok := other.(*NominalKind)
	if !ok || o == nil || o.taxonomy != k.taxonomy {
		return false
	}
	if o == k {
		return true
	}

	k.taxonomy.lock.RLock()
	defer k.taxonomy.lock.RUnlock()

	return k.taxonomy.graph.IsReachable(k.node, o.node)
}

// Declare declares a nominal kind that specializes the passed generalizations.
func (t *Taxonomy) Declare(name string, generalizations ...*NominalKind) (*NominalKind, error) {
	if name == "" {
		return nil, ErrEmptyNominalKindName
	}

	for _, general := range generalizations {
		if general == nil || general.taxonomy != t {
			return nil, ErrForeignNominalKind
		}
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	if _, ok := t.byName[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrKindAlreadyDeclared, name)
	}

	k := &NominalKind{name: name, taxonomy: t}
	k.node = t.graph.AddNode(k)
	t.byName[name] = k

	//a new node cannot be part of a cycle.
	for _, general := range generalizations {
		t.graph.SetEdge(general.node, k.node, struct{}{})
	}

	return k, nil
}

// MustDeclare is like Declare but panics on error.
func (t *Taxonomy) MustDeclare(name string, generalizations ...*NominalKind) *NominalKind {
	k, err := t.Declare(name, generalizations...)
	if err != nil {
		panic(err)
	}
	return k
}

// AddGeneralization makes specialized a specialization of general, the taxonomy is left unchanged
// if the relation would make a kind a specialization of itself.
func (t *Taxonomy) AddGeneralization(specialized, general *NominalKind) error {
	if specialized == nil || general == nil || specialized.taxonomy != t || general.taxonomy != t {
		return ErrForeignNominalKind
	}
	if specialized == general {
		return fmt.Errorf("%w: %s", ErrSpecializationCycle, general.name)
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	if t.graph.HasEdgeFromTo(general.node, specialized.node) {
		return nil
	}

	t.graph.SetEdge(general.node, specialized.node, struct{}{})
	if t.graph.HasCycle() {
		t.graph.RemoveEdge(general.node, specialized.node)
		return fmt.Errorf("%w: %s and %s", ErrSpecializationCycle, specialized.name, general.name)
	}
	return nil
}

// Lookup returns the nominal kind with the given name.
func (t *Taxonomy) Lookup(name string) (*NominalKind, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	k, ok := t.byName[name]
	return k, ok
}

// Generalizations returns the direct generalizations of k.
func (t *Taxonomy) Generalizations(k *NominalKind) []*NominalKind {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.kindsNoLock(t.graph.SourceIds(k.node))
}

// Specializations returns the direct specializations of k.
func (t *Taxonomy) Specializations(k *NominalKind) []*NominalKind {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.kindsNoLock(t.graph.DestinationIds(k.node))
}

// Kinds returns all the kinds in declaration order.
func (t *Taxonomy) Kinds() []*NominalKind {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.kindsNoLock(t.graph.NodeIds())
}

func (t *Taxonomy) kindsNoLock(ids []memds.NodeId) []*NominalKind {
	kinds := make([]*NominalKind, 0, len(ids))
	for _, id := range ids {
		k, _ := t.graph.NodeData(id)
		kinds = append(kinds, k)
	}
	return kinds
}
