// Package graph provides a small, single-threaded, in-memory graph
// abstract data type: vertices holding arbitrary comparable payloads,
// typed edges connecting them (undirected Lines and directed Arrows,
// each optionally weighted), and an adjacency-table container that
// tracks which vertices neighbor which.
//
// The central type is AdjacencyTable, which implements the Graph
// contract over a single nested mapping:
//
//	vertex → (neighbor vertex → optional weight)
//
// An edge has no stored identity of its own; its existence is wholly
// derived from the adjacency entries it produced. Adding a Line writes
// both directions as one logical operation; adding an Arrow writes only
// source→target. Containment queries read those entries back, which
// yields one documented asymmetry: a Line(A,B) satisfies both
// Arrow(A,B) and Arrow(B,A) queries, while a lone Arrow(A,B) never
// satisfies a Line(A,B) query (the mirror entry is missing). Existing
// callers depend on this behavior; it is deliberate and pinned by tests.
//
// Complexity:
//
//	– AddVertex, HasVertex, AddEdge, RemoveEdge, HasEdge: O(1) expected
//	– RemoveVertex: O(V) — the removed vertex is purged from every
//	  remaining vertex's neighbor map, so no dangling reference survives
//	– Neighbors, Weights, Vertices: O(d) / O(V) to copy the snapshot
//
// Concurrency:
//
// The package is single-threaded by contract. No operation blocks, no
// locks are taken internally, and concurrent mutation is not safe.
// Callers that need shared access must layer their own synchronization
// (one mutex around the table, or Clone() snapshots for readers).
//
// Errors (sentinel):
//
//	– ErrNilEdge           if a nil Edge is passed to a table operation
//	– ErrVertexExists      if an added vertex is already in the graph
//	– ErrVertexNotFound    if an operation references an unknown vertex
//	– ErrEdgeExists        if the ordered endpoint pair already has an entry
//	– ErrEdgeNotFound      if a removed edge is not in the graph
//	– ErrEndpointNotFound  if an edge endpoint is not in the graph
//	– ErrSelfLoop          if a Line is built with equal endpoints
//
// All failures are caller precondition violations reported synchronously
// at the offending call; nothing is deferred, retried, or auto-corrected.
//
// Example usage:
//
//	a, b := graph.NewVertex(1), graph.NewVertex(2)
//	g := graph.NewAdjacencyTable[int, int]()
//	_ = g.AddVertex(a)
//	_ = g.AddVertex(b)
//	line, _ := graph.NewLine[int, int](a, b)
//	if err := g.AddEdge(line); err != nil {
//	    log.Fatal(err)
//	}
//	ns, _ := g.Neighbors(a) // {b}
package graph
