// This file implements AdjacencyTable, the concrete Graph backed by a
// table of the adjacencies that exist between vertices.

package graph

import "cmp"

// adjacency is one cell of the table: the optional weight recorded for
// an ordered (vertex, neighbor) pair. The struct is comparable, so an
// exact weight match is a single == test.
type adjacency[W cmp.Ordered] struct {
	weight   W
	weighted bool
}

// AdjacencyTable is a Graph implemented as a mapping from each vertex
// to a mapping from each of its neighbors to the optional weight of
// the edge reaching that neighbor.
//
// Undirected edges are stored symmetrically (both directions written
// and removed as one logical operation); directed edges store only the
// forward direction. Edge containment is derived purely from these
// entries, which produces the documented Line/Arrow asymmetry (see the
// package doc).
//
// The zero value is not usable; construct with NewAdjacencyTable.
// Not safe for concurrent use.
type AdjacencyTable[T comparable, W cmp.Ordered] struct {
	// For each vertex, a table of its adjacent vertices and the
	// weights to reach them.
	neighbors map[Vertex[T]]map[Vertex[T]]adjacency[W]
}

// AdjacencyTable implements the Graph contract.
var _ Graph[int, int] = (*AdjacencyTable[int, int])(nil)

// NewAdjacencyTable creates an empty AdjacencyTable.
//
// Complexity: O(1)
func NewAdjacencyTable[T comparable, W cmp.Ordered]() *AdjacencyTable[T, W] {
	return &AdjacencyTable[T, W]{
		neighbors: make(map[Vertex[T]]map[Vertex[T]]adjacency[W]),
	}
}

// Neighbors returns a snapshot set of the vertices adjacent to v,
// possibly empty. Returns ErrVertexNotFound if v is not in the graph.
//
// Complexity: O(d) where d is the number of neighbors of v.
func (t *AdjacencyTable[T, W]) Neighbors(v Vertex[T]) (VertexSet[T], error) {
	row, ok := t.neighbors[v]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make(VertexSet[T], len(row))
	for neighbor := range row {
		out[neighbor] = struct{}{}
	}

	return out, nil
}

// Weights returns a snapshot map from each neighbor of v to the
// optional weight of the edge reaching it; a nil value marks an
// unweighted adjacency. Returns ErrVertexNotFound if v is not in the
// graph.
//
// Complexity: O(d)
func (t *AdjacencyTable[T, W]) Weights(v Vertex[T]) (WeightMap[T, W], error) {
	row, ok := t.neighbors[v]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make(WeightMap[T, W], len(row))
	for neighbor, cell := range row {
		if cell.weighted {
			w := NewWeight(cell.weight)
			out[neighbor] = &w
		} else {
			out[neighbor] = nil
		}
	}

	return out, nil
}

// AddVertex inserts v with an empty neighbor map. Returns
// ErrVertexExists if v is already in the graph.
//
// Complexity: O(1)
func (t *AdjacencyTable[T, W]) AddVertex(v Vertex[T]) error {
	if _, ok := t.neighbors[v]; ok {
		return ErrVertexExists
	}
	t.neighbors[v] = make(map[Vertex[T]]adjacency[W])

	return nil
}

// RemoveVertex deletes v's own entry, then purges v from every
// remaining vertex's neighbor map so that no dangling reference to a
// removed vertex ever survives. The purge scans every remaining
// vertex; it must be exhaustive because v may neighbor any of them.
//
// Returns ErrVertexNotFound if v is not in the graph.
//
// Complexity: O(V)
func (t *AdjacencyTable[T, W]) RemoveVertex(v Vertex[T]) error {
	if _, ok := t.neighbors[v]; !ok {
		return ErrVertexNotFound
	}

	// Cheap removal of the vertex's own row.
	delete(t.neighbors, v)

	// Exhaustive O(V) purge of v from every remaining row. Each lookup
	// is O(1), but up to V rows may reference the removed vertex.
	for _, row := range t.neighbors {
		delete(row, v)
	}

	return nil
}

// HasVertex reports whether v is in the graph.
//
// Complexity: O(1)
func (t *AdjacencyTable[T, W]) HasVertex(v Vertex[T]) bool {
	_, ok := t.neighbors[v]
	return ok
}

// HasAllVertices reports whether every given vertex is in the graph.
// Vacuously true when called with no vertices.
//
// Complexity: O(len(vs))
func (t *AdjacencyTable[T, W]) HasAllVertices(vs ...Vertex[T]) bool {
	for _, v := range vs {
		if !t.HasVertex(v) {
			return false
		}
	}

	return true
}

// Vertices returns a snapshot set of all vertices currently in the
// graph.
//
// Complexity: O(V)
func (t *AdjacencyTable[T, W]) Vertices() VertexSet[T] {
	out := make(VertexSet[T], len(t.neighbors))
	for v := range t.neighbors {
		out[v] = struct{}{}
	}

	return out
}

// AddEdge records e in the table. Both endpoints must already be in
// the graph, and the ordered pair endpoints[0]→endpoints[1] must not
// already have an entry: the table cannot represent parallel edges, so a
// second relationship between the same ordered pair is ErrEdgeExists
// regardless of edge kind.
//
// A Line writes both directions as one logical operation; an Arrow
// writes only the forward direction.
//
// Complexity: O(1)
func (t *AdjacencyTable[T, W]) AddEdge(e Edge[T, W]) error {
	if e == nil {
		return ErrNilEdge
	}

	endpoints := e.Endpoints()
	if !t.HasAllVertices(endpoints[0], endpoints[1]) {
		return ErrEndpointNotFound
	}
	if _, ok := t.neighbors[endpoints[0]][endpoints[1]]; ok {
		return ErrEdgeExists
	}

	cell := cellOf(e)
	t.neighbors[endpoints[0]][endpoints[1]] = cell
	if !e.directed() {
		t.neighbors[endpoints[1]][endpoints[0]] = cell
	}

	return nil
}

// RemoveEdge deletes e from the table. The edge must currently be
// contained, as judged by HasEdge. A Line removes both directions; an
// Arrow removes only the forward direction.
//
// Complexity: O(1)
func (t *AdjacencyTable[T, W]) RemoveEdge(e Edge[T, W]) error {
	ok, err := t.HasEdge(e)
	if err != nil {
		return err
	}
	if !ok {
		return ErrEdgeNotFound
	}

	endpoints := e.Endpoints()
	delete(t.neighbors[endpoints[0]], endpoints[1])
	if !e.directed() {
		delete(t.neighbors[endpoints[1]], endpoints[0])
	}

	return nil
}

// HasEdge reports whether e is contained in the table. Both endpoints
// must be in the graph; querying an edge against vertices the graph
// has never seen is a precondition violation (ErrEndpointNotFound),
// not a false result.
//
// Containment is judged purely from the adjacency entries: the forward
// entry must match e's exact weight, and a Line additionally requires
// the matching mirror entry. A consequence is that a Line(A,B) write
// satisfies both Arrow(A,B) and Arrow(B,A) queries, while a lone
// Arrow(A,B) write never satisfies a Line(A,B) query. Callers depend
// on this; do not change it.
//
// Complexity: O(1)
func (t *AdjacencyTable[T, W]) HasEdge(e Edge[T, W]) (bool, error) {
	if e == nil {
		return false, ErrNilEdge
	}

	endpoints := e.Endpoints()
	if !t.HasAllVertices(endpoints[0], endpoints[1]) {
		return false, ErrEndpointNotFound
	}

	want := cellOf(e)
	if !e.directed() && !t.hasEntry(endpoints[1], endpoints[0], want) {
		return false, nil
	}

	return t.hasEntry(endpoints[0], endpoints[1], want), nil
}

// hasEntry reports whether the table maps (v, neighbor) to exactly the
// given weight cell.
func (t *AdjacencyTable[T, W]) hasEntry(v, neighbor Vertex[T], want adjacency[W]) bool {
	cell, ok := t.neighbors[v][neighbor]
	return ok && cell == want
}

// cellOf converts an edge's optional weight into a table cell.
func cellOf[T comparable, W cmp.Ordered](e Edge[T, W]) adjacency[W] {
	w, weighted := e.Weight()
	if !weighted {
		return adjacency[W]{}
	}

	return adjacency[W]{weight: w.Value(), weighted: true}
}
