// This file declares the Graph contract: the operations any graph
// container supports, independent of storage strategy.

package graph

import "cmp"

// Graph is a set of vertices together with a set of edges connecting
// them. Implementations own their storage and must never leak a
// mutable handle to it; every returned collection is a snapshot.
type Graph[T comparable, W cmp.Ordered] interface {
	// Neighbors returns the set of vertices directly connected to v,
	// possibly empty. Returns ErrVertexNotFound if v is not in the graph.
	Neighbors(v Vertex[T]) (VertexSet[T], error)

	// Weights returns a map from each neighbor of v to the optional
	// weight of the edge reaching it (nil = unweighted). Returns
	// ErrVertexNotFound if v is not in the graph.
	Weights(v Vertex[T]) (WeightMap[T, W], error)

	// AddVertex inserts v. Returns ErrVertexExists if already present.
	AddVertex(v Vertex[T]) error

	// RemoveVertex deletes v and every adjacency entry referencing it.
	// Returns ErrVertexNotFound if v is not in the graph.
	RemoveVertex(v Vertex[T]) error

	// HasVertex reports whether v is in the graph.
	HasVertex(v Vertex[T]) bool

	// HasAllVertices reports whether every given vertex is in the
	// graph; vacuously true for an empty argument list.
	HasAllVertices(vs ...Vertex[T]) bool

	// Vertices returns the set of all vertices currently in the graph.
	Vertices() VertexSet[T]

	// AddEdge records e's adjacency entries. Returns ErrNilEdge for a
	// nil edge, ErrEndpointNotFound if either endpoint is not in the
	// graph, and ErrEdgeExists if the ordered endpoint pair already
	// has an entry.
	AddEdge(e Edge[T, W]) error

	// RemoveEdge deletes e's adjacency entries. Returns ErrNilEdge for
	// a nil edge, ErrEndpointNotFound if either endpoint is not in the
	// graph, and ErrEdgeNotFound if e is not contained.
	RemoveEdge(e Edge[T, W]) error

	// HasEdge reports whether e is contained, judged purely from the
	// adjacency entries and e's exact weight. Unknown endpoints are a
	// precondition violation (ErrEndpointNotFound), not a false result.
	HasEdge(e Edge[T, W]) (bool, error)
}
