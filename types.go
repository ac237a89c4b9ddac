// This file declares the value types (Vertex, Weight), the snapshot
// collection types returned by queries, and the package sentinel errors.

package graph

import (
	"cmp"
	"errors"
)

// Sentinel errors for graph operations.
var (
	// ErrNilEdge indicates a nil Edge interface value was passed to a
	// table operation.
	ErrNilEdge = errors.New("graph: edge is nil")

	// ErrVertexExists indicates an attempt to add a vertex already in
	// the graph.
	ErrVertexExists = errors.New("graph: vertex already in graph")

	// ErrVertexNotFound indicates an operation referenced a vertex that
	// is not in the graph.
	ErrVertexNotFound = errors.New("graph: vertex not in graph")

	// ErrEdgeExists indicates the ordered endpoint pair already has an
	// adjacency entry; parallel edges are not representable in the table.
	ErrEdgeExists = errors.New("graph: relationship already exists between vertices")

	// ErrEdgeNotFound indicates a removal referenced an edge the graph
	// does not contain.
	ErrEdgeNotFound = errors.New("graph: edge not in graph")

	// ErrEndpointNotFound indicates an edge operation referenced an
	// endpoint vertex that is not in the graph.
	ErrEndpointNotFound = errors.New("graph: edge endpoint not in graph")

	// ErrSelfLoop indicates a Line was constructed with equal endpoints.
	// Only Arrows may form self-loops.
	ErrSelfLoop = errors.New("graph: line endpoints must be distinct")
)

// Vertex is an immutable, identity-by-value container for an arbitrary
// comparable payload. Two vertices are equal iff their payloads are
// equal, so Vertex values are usable directly as map keys. An "absent"
// payload is the zero value of T (or a typed nil for pointer payloads).
type Vertex[T comparable] struct {
	value T
}

// NewVertex wraps a payload value in a Vertex.
func NewVertex[T comparable](value T) Vertex[T] {
	return Vertex[T]{value: value}
}

// Value returns the stored payload.
func (v Vertex[T]) Value() T {
	return v.value
}

// Weight is an immutable wrapper around an orderable value, used to
// annotate edges. Equality is value equality; ordering defers to the
// wrapped value.
type Weight[W cmp.Ordered] struct {
	value W
}

// NewWeight wraps an orderable value in a Weight.
func NewWeight[W cmp.Ordered](value W) Weight[W] {
	return Weight[W]{value: value}
}

// Value returns the wrapped value.
func (w Weight[W]) Value() W {
	return w.value
}

// Compare orders two weights by their wrapped values: -1 if w < other,
// 0 if equal, +1 if w > other.
func (w Weight[W]) Compare(other Weight[W]) int {
	return cmp.Compare(w.value, other.value)
}

// Less reports whether w orders strictly before other.
func (w Weight[W]) Less(other Weight[W]) bool {
	return w.value < other.value
}

// VertexSet is a set of vertices, returned by query methods as a
// snapshot copy. Mutating a returned set never affects the graph.
type VertexSet[T comparable] map[Vertex[T]]struct{}

// Has reports whether v is a member of the set.
func (s VertexSet[T]) Has(v Vertex[T]) bool {
	_, ok := s[v]
	return ok
}

// WeightMap maps each neighbor of a vertex to the optional weight of
// the edge reaching it; a nil value marks an unweighted adjacency.
// Returned maps are snapshot copies.
type WeightMap[T comparable, W cmp.Ordered] map[Vertex[T]]*Weight[W]
