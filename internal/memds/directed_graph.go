package memds

import (
	"errors"
	"slices"

	"golang.org/x/exp/maps"
)

var (
	ErrSelfEdgeNotSupported = errors.New("self edge not supported")
	ErrSrcNodeNotExist      = errors.New("source node does not exist")
	ErrDestNodeNotExist     = errors.New("destination node does not exist")
)

type NodeId int64

type GraphNode[T any] struct {
	Id   NodeId
	Data T
}

// DirectedGraph is a directed graph, node ids are never reused. A DirectedGraph is not safe for concurrent
// use, the owner is responsible for synchronizing accesses.
type DirectedGraph[NodeData, EdgeData any] struct {
	nodes map[NodeId]GraphNode[NodeData]

	//source node -> destination nodes
	from map[NodeId]map[NodeId]EdgeData

	//destination node -> source nodes
	to map[NodeId]map[NodeId]EdgeData

	currId NodeId
}

func NewDirectedGraph[NodeData, EdgeData any]() *DirectedGraph[NodeData, EdgeData] {
	return &DirectedGraph[NodeData, EdgeData]{
		nodes:  make(map[NodeId]GraphNode[NodeData]),
		from:   make(map[NodeId]map[NodeId]EdgeData),
		to:     make(map[NodeId]map[NodeId]EdgeData),
		currId: -1,
	}
}

// NodeIds returns all the node ids in the graph, in increasing order.
func (g *DirectedGraph[NodeData, EdgeData]) NodeIds() []NodeId {
	ids := maps.Keys(g.nodes)
	slices.Sort(ids)
	return ids
}

// AddNode creates a node with the passed data and returns the new node's id.
// Node ids start at 0.
func (g *DirectedGraph[NodeData, EdgeData]) AddNode(data NodeData) NodeId {
	g.currId++
	id := g.currId

	g.nodes[id] = GraphNode[NodeData]{
		Id:   id,
		Data: data,
	}
	return id
}

// NodeData returns the data of the node with the given id if it exists in the graph.
func (g *DirectedGraph[NodeData, EdgeData]) NodeData(id NodeId) (_ NodeData, _ bool) {
	node, ok := g.nodes[id]
	if ok {
		return node.Data, true
	}
	return
}

// DestinationIds returns the ids of the nodes that can be reached directly from the node, in increasing order.
func (g *DirectedGraph[NodeData, EdgeData]) DestinationIds(id NodeId) []NodeId {
	return sortedKeys(g.from[id])
}

// SourceIds returns the ids of the nodes that can reach the node directly, in increasing order.
func (g *DirectedGraph[NodeData, EdgeData]) SourceIds(id NodeId) []NodeId {
	return sortedKeys(g.to[id])
}

// HasEdgeFromTo returns whether an edge exists in the graph from srcId to destId.
func (g *DirectedGraph[NodeData, EdgeData]) HasEdgeFromTo(srcId, destId NodeId) bool {
	_, ok := g.from[srcId][destId]
	return ok
}

// SetEdge adds an edge from one node to another, the nodes must exist.
// It panics if the source node is the destination node.
func (g *DirectedGraph[NodeData, EdgeData]) SetEdge(from, to NodeId, data EdgeData) {
	if from == to {
		panic(ErrSelfEdgeNotSupported)
	}

	if _, ok := g.nodes[from]; !ok {
		panic(ErrSrcNodeNotExist)
	}

	if _, ok := g.nodes[to]; !ok {
		panic(ErrDestNodeNotExist)
	}

	//add edge in mapping SOURCE -> DESTINATION
	if fromMap, ok := g.from[from]; ok {
		fromMap[to] = data
	} else {
		g.from[from] = map[NodeId]EdgeData{to: data}
	}

	//add edge in mapping DESTINATION -> SOURCE
	if toMap, ok := g.to[to]; ok {
		toMap[from] = data
	} else {
		g.to[to] = map[NodeId]EdgeData{from: data}
	}
}

// RemoveEdge removes the edge with the given end point ids from the graph, leaving the terminal
// nodes. If the edge does not exist it is a no-op.
func (g *DirectedGraph[NodeData, EdgeData]) RemoveEdge(srcId, destId NodeId) {
	if _, ok := g.from[srcId][destId]; !ok {
		return
	}

	delete(g.from[srcId], destId)
	delete(g.to[destId], srcId)
}

// WalkDescendants visits in breadth-first order every node reachable from the start node, the start node
// excluded. Each node is visited once. The walk stops when fn returns false.
func (g *DirectedGraph[NodeData, EdgeData]) WalkDescendants(start NodeId, fn func(node GraphNode[NodeData]) bool) {
	visited := map[NodeId]struct{}{start: {}}
	queue := NewArrayQueue[NodeId]()
	queue.Enqueue(start)

	for !queue.Empty() {
		current, _ := queue.Dequeue()

		for _, destId := range sortedKeys(g.from[current]) {
			if _, ok := visited[destId]; ok {
				continue
			}
			visited[destId] = struct{}{}

			if !fn(g.nodes[destId]) {
				return
			}
			queue.Enqueue(destId)
		}
	}
}

// IsReachable returns whether destId can be reached from srcId by following one or more edges.
func (g *DirectedGraph[NodeData, EdgeData]) IsReachable(srcId, destId NodeId) bool {
	found := false
	g.WalkDescendants(srcId, func(node GraphNode[NodeData]) bool {
		if node.Id == destId {
			found = true
			return false
		}
		return true
	})
	return found
}

func sortedKeys[V any](m map[NodeId]V) []NodeId {
	if len(m) == 0 {
		return nil
	}
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
