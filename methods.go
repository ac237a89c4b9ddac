// This file holds AdjacencyTable maintenance and counting helpers that
// sit outside the Graph contract: VertexCount, Degree, Clone, Clear.

package graph

import "maps"

// VertexCount returns the number of vertices currently in the graph.
//
// Complexity: O(1)
func (t *AdjacencyTable[T, W]) VertexCount() int {
	return len(t.neighbors)
}

// Degree returns the number of adjacency entries recorded for v: each
// neighbor reachable from v counts once, whether the entry came from a
// Line or an Arrow. Returns ErrVertexNotFound if v is not in the graph.
//
// Complexity: O(1)
func (t *AdjacencyTable[T, W]) Degree(v Vertex[T]) (int, error) {
	row, ok := t.neighbors[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(row), nil
}

// Clone returns a deep copy of the table. The clone shares no state
// with the original, so it can serve as a stable snapshot for readers
// while the original keeps mutating.
//
// Complexity: O(V + E)
func (t *AdjacencyTable[T, W]) Clone() *AdjacencyTable[T, W] {
	clone := NewAdjacencyTable[T, W]()
	for v, row := range t.neighbors {
		clone.neighbors[v] = maps.Clone(row)
	}

	return clone
}

// Clear removes every vertex and adjacency entry, returning the table
// to its freshly constructed state.
//
// Complexity: O(1)
func (t *AdjacencyTable[T, W]) Clear() {
	t.neighbors = make(map[Vertex[T]]map[Vertex[T]]adjacency[W])
}
