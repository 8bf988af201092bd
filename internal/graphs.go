// This file contains thin wrappers around the graph module
// for managing the bracket trees of knockout forecasts.
package internal

import (
	"errors"
	"slices"
	"sync/atomic"

	"github.com/dominikbraun/graph"
)

var ErrNoSingleSink = errors.New("graph does not have exactly one sink node")

var nodeId atomic.Int64

// Returns a process-wide unique node id. Safe for concurrent use
// since independent solvers build their graphs in parallel.
func NextNodeId() int {
	return int(nodeId.Add(1))
}

type GraphNode interface {
	// A unique ID that is used as the node hash
	Id() int
}

func getNodeId[T GraphNode](node T) int {
	return node.Id()
}

// A DependencyGraph is a directed acyclic graph where an edge
// from a source to a target means the target depends on the
// source's result.
type DependencyGraph[T GraphNode] struct {
	graph.Graph[int, T]
}

func NewDependencyGraph[T GraphNode]() *DependencyGraph[T] {
	g := graph.New(getNodeId[T], graph.Directed(), graph.PreventCycles())
	return &DependencyGraph[T]{Graph: g}
}

func (g *DependencyGraph[T]) AddEdge(source, target T) error {
	return g.Graph.AddEdge(source.Id(), target.Id())
}

// Returns all nodes ordered such that every node comes after
// the nodes it depends on. Nodes without a mutual dependency
// are ordered by ascending id.
func (g *DependencyGraph[T]) TopologicalOrder() ([]T, error) {
	keys, err := graph.StableTopologicalSort(g.Graph, func(a, b int) bool { return a < b })
	if err != nil {
		return nil, err
	}

	nodes := make([]T, 0, len(keys))
	for _, k := range keys {
		node, err := g.Vertex(k)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// Returns a function that lists the nodes on the incoming
// edges of a target node (its dependencies) ordered by id.
//
// The dependencies are resolved once, so the graph must not
// change while the returned function is in use.
func (g *DependencyGraph[T]) DependencyLister() (func(target T) []T, error) {
	predecessors, err := g.PredecessorMap()
	if err != nil {
		return nil, err
	}

	resolved := make(map[int][]T, len(predecessors))
	for id, inEdges := range predecessors {
		keys := make([]int, 0, len(inEdges))
		for k := range inEdges {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		dependencies := make([]T, 0, len(keys))
		for _, k := range keys {
			dependency, err := g.Vertex(k)
			if err != nil {
				return nil, err
			}
			dependencies = append(dependencies, dependency)
		}
		resolved[id] = dependencies
	}

	lister := func(target T) []T {
		return resolved[target.Id()]
	}
	return lister, nil
}

// Returns the only node that nothing depends on.
// Errors when there is no such node or more than one.
func (g *DependencyGraph[T]) Sink() (T, error) {
	var sink T

	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return sink, err
	}

	found := 0
	for k, outEdges := range adjacency {
		if len(outEdges) != 0 {
			continue
		}
		found += 1
		sink, err = g.Vertex(k)
		if err != nil {
			return sink, err
		}
	}

	if found != 1 {
		var zero T
		return zero, ErrNoSingleSink
	}
	return sink, nil
}
