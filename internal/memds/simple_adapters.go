package memds

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
)

var (
	_ graph.Directed = (*simpleDirectedGraphAdapter[int, int])(nil)
	_ graph.Node     = (*simpleNodeAdapter)(nil)
	_ graph.Edge     = (*simpleEdgeAdapter)(nil)
)

// simpleDirectedGraphAdapter exposes a DirectedGraph to gonum's algorithms.
type simpleDirectedGraphAdapter[NodeData, EdgeData any] struct {
	graph *DirectedGraph[NodeData, EdgeData]
}

func (g *simpleDirectedGraphAdapter[NodeData, EdgeData]) Edge(uid int64, vid int64) graph.Edge {
	if _, ok := g.graph.from[NodeId(uid)][NodeId(vid)]; !ok {
		return nil
	}
	return &simpleEdgeAdapter{
		from: NodeId(uid),
		to:   NodeId(vid),
	}
}

func (g *simpleDirectedGraphAdapter[NodeData, EdgeData]) From(id int64) graph.Nodes {
	nodeMap := map[int64]graph.Node{}
	for destId := range g.graph.from[NodeId(id)] {
		nodeMap[int64(destId)] = &simpleNodeAdapter{id: destId}
	}
	return iterator.NewNodes(nodeMap)
}

func (g *simpleDirectedGraphAdapter[NodeData, EdgeData]) To(id int64) graph.Nodes {
	nodeMap := map[int64]graph.Node{}
	for srcId := range g.graph.to[NodeId(id)] {
		nodeMap[int64(srcId)] = &simpleNodeAdapter{id: srcId}
	}
	return iterator.NewNodes(nodeMap)
}

func (g *simpleDirectedGraphAdapter[NodeData, EdgeData]) HasEdgeBetween(xid int64, yid int64) bool {
	if _, ok := g.graph.from[NodeId(xid)][NodeId(yid)]; ok {
		return true
	}
	_, ok := g.graph.from[NodeId(yid)][NodeId(xid)]
	return ok
}

func (g *simpleDirectedGraphAdapter[NodeData, EdgeData]) HasEdgeFromTo(uid int64, vid int64) bool {
	_, ok := g.graph.from[NodeId(uid)][NodeId(vid)]
	return ok
}

func (g *simpleDirectedGraphAdapter[NodeData, EdgeData]) Node(id int64) graph.Node {
	if _, ok := g.graph.nodes[NodeId(id)]; ok {
		return &simpleNodeAdapter{id: NodeId(id)}
	}
	return nil
}

func (g *simpleDirectedGraphAdapter[NodeData, EdgeData]) Nodes() graph.Nodes {
	nodeMap := map[int64]graph.Node{}

	for id := range g.graph.nodes {
		nodeMap[int64(id)] = &simpleNodeAdapter{id: id}
	}

	return iterator.NewNodes(nodeMap)
}

type simpleNodeAdapter struct {
	id NodeId
}

func (s simpleNodeAdapter) ID() int64 {
	return int64(s.id)
}

type simpleEdgeAdapter struct {
	from, to NodeId
}

func (e *simpleEdgeAdapter) From() graph.Node {
	return &simpleNodeAdapter{e.from}
}

func (e *simpleEdgeAdapter) To() graph.Node {
	return &simpleNodeAdapter{e.to}
}

func (e *simpleEdgeAdapter) ReversedEdge() graph.Edge {
	return &simpleEdgeAdapter{
		from: e.to,
		to:   e.from,
	}
}
