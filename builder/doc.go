// Package builder assembles deterministic graph topologies over
// graph.AdjacencyTable, for tests and fixtures.
//
// Each constructor (Path, Cycle, Complete, Star) takes the number of
// vertices, a vertexOf function mapping the index range [0, n) to
// vertex payloads, and functional options:
//
//	– WithArrows()          emit directed Arrows instead of Lines
//	– WithWeightFunc(fn)    weight each edge by fn(u, v) over indexes
//
// Determinism: the same n, vertexOf, and options always produce an
// identical graph — constructors iterate the index range in order and
// use no randomness.
//
// Errors (sentinel):
//
//	– ErrTooFewVertices if n is below the topology's minimum
//	– ErrNilVertexFunc  if vertexOf is nil
//	– ErrNilWeightFunc  if WithWeightFunc is given a nil function
//
// A vertexOf that maps two indexes to the same payload collides inside
// the core; the core's sentinels (graph.ErrVertexExists, graph.ErrSelfLoop)
// propagate wrapped and stay matchable with errors.Is.
package builder
