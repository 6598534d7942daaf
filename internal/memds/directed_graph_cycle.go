package memds

import (
	"gonum.org/v1/gonum/graph/topo"
)

// HasCycle returns whether the graph contains at least one directed cycle.
func (g *DirectedGraph[NodeData, EdgeData]) HasCycle() bool {
	adapter := &simpleDirectedGraphAdapter[NodeData, EdgeData]{graph: g}

	cycles := topo.DirectedCyclesIn(adapter)
	return len(cycles) > 0
}
