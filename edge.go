// This file declares the Edge contract and its two implementers:
// Line (undirected) and Arrow (directed). The set of edge kinds is
// closed; the unexported directed method both seals the interface and
// tells the adjacency table whether to mirror the write.

package graph

import "cmp"

// Edge is a connection between two vertices, optionally weighted.
// Exactly two kinds exist: Line (undirected) and Arrow (directed).
// The interface is sealed; no implementations outside this package.
type Edge[T comparable, W cmp.Ordered] interface {
	// Endpoints returns the two endpoint vertices. For an Arrow the
	// order is (source, target); for a Line the order is stable but
	// carries no meaning.
	Endpoints() [2]Vertex[T]

	// Weight returns the edge's weight and true, or the zero Weight
	// and false when the edge is unweighted.
	Weight() (Weight[W], bool)

	// directed reports whether the adjacency relation is one-way.
	// Unexported: it closes the implementer set to Line and Arrow.
	directed() bool
}

// Line is an undirected edge between two distinct endpoints. The
// endpoint pair is unordered: Line(a,b) and Line(b,a) are equal under
// Equal. A Line may not form a self-loop.
type Line[T comparable, W cmp.Ordered] struct {
	first, second Vertex[T]
	weight        Weight[W]
	weighted      bool
}

// NewLine creates an unweighted Line between two distinct endpoints.
// Returns ErrSelfLoop when the endpoints are equal.
func NewLine[T comparable, W cmp.Ordered](first, second Vertex[T]) (Line[T, W], error) {
	if first == second {
		return Line[T, W]{}, ErrSelfLoop
	}

	return Line[T, W]{first: first, second: second}, nil
}

// NewWeightedLine creates a weighted Line between two distinct
// endpoints. Returns ErrSelfLoop when the endpoints are equal.
func NewWeightedLine[T comparable, W cmp.Ordered](first, second Vertex[T], weight Weight[W]) (Line[T, W], error) {
	if first == second {
		return Line[T, W]{}, ErrSelfLoop
	}

	return Line[T, W]{first: first, second: second, weight: weight, weighted: true}, nil
}

// Endpoints returns the two endpoints in construction order. The order
// is stable but irrelevant to equality.
func (l Line[T, W]) Endpoints() [2]Vertex[T] {
	return [2]Vertex[T]{l.first, l.second}
}

// Weight returns the line's weight and true, or false when unweighted.
func (l Line[T, W]) Weight() (Weight[W], bool) {
	return l.weight, l.weighted
}

// Equal reports whether two lines connect the same unordered endpoint
// pair with equal weights.
func (l Line[T, W]) Equal(other Line[T, W]) bool {
	if l.weighted != other.weighted || l.weight != other.weight {
		return false
	}
	if l.first == other.first && l.second == other.second {
		return true
	}

	return l.first == other.second && l.second == other.first
}

func (Line[T, W]) directed() bool { return false }

// Arrow is a directed edge from a source vertex to a target vertex.
// The endpoints are ordered, so Arrow(a,b) and Arrow(b,a) are distinct
// unless a == b; self-loops are permitted.
type Arrow[T comparable, W cmp.Ordered] struct {
	source, target Vertex[T]
	weight         Weight[W]
	weighted       bool
}

// NewArrow creates an unweighted Arrow from source to target.
func NewArrow[T comparable, W cmp.Ordered](source, target Vertex[T]) Arrow[T, W] {
	return Arrow[T, W]{source: source, target: target}
}

// NewWeightedArrow creates a weighted Arrow from source to target.
func NewWeightedArrow[T comparable, W cmp.Ordered](source, target Vertex[T], weight Weight[W]) Arrow[T, W] {
	return Arrow[T, W]{source: source, target: target, weight: weight, weighted: true}
}

// Source returns the vertex the arrow originates from.
func (a Arrow[T, W]) Source() Vertex[T] {
	return a.source
}

// Target returns the vertex the arrow points to.
func (a Arrow[T, W]) Target() Vertex[T] {
	return a.target
}

// Endpoints returns (source, target).
func (a Arrow[T, W]) Endpoints() [2]Vertex[T] {
	return [2]Vertex[T]{a.source, a.target}
}

// Weight returns the arrow's weight and true, or false when unweighted.
func (a Arrow[T, W]) Weight() (Weight[W], bool) {
	return a.weight, a.weighted
}

// Equal reports whether two arrows have equal sources, targets, and
// weights. Order matters; Arrow values also compare correctly with ==.
func (a Arrow[T, W]) Equal(other Arrow[T, W]) bool {
	return a == other
}

func (Arrow[T, W]) directed() bool { return true }
