// This file holds the functional options shared by all constructors and
// the topology constructors themselves.

package builder

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/arrowline/graph"
)

// Sentinel errors for topology construction.
var (
	// ErrTooFewVertices indicates n is below the topology's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices for topology")

	// ErrNilVertexFunc indicates a nil vertexOf function.
	ErrNilVertexFunc = errors.New("builder: vertex function is nil")

	// ErrNilWeightFunc indicates WithWeightFunc was given a nil function.
	ErrNilWeightFunc = errors.New("builder: weight function is nil")
)

// Option configures how a constructor emits edges.
type Option[W cmp.Ordered] func(*config[W])

// config is the resolved, immutable constructor configuration.
type config[W cmp.Ordered] struct {
	directed bool
	weightOf func(u, v int) W // nil = unweighted edges
	badOpt   error            // deferred option validation error
}

// WithArrows makes the constructor emit directed Arrows (oriented from
// the lower index to the higher one, and center→leaf for Star) instead
// of undirected Lines.
func WithArrows[W cmp.Ordered]() Option[W] {
	return func(c *config[W]) { c.directed = true }
}

// WithWeightFunc weights every emitted edge with fn(u, v), where u and v
// are the endpoint indexes in [0, n). A nil fn is reported as
// ErrNilWeightFunc by the constructor.
func WithWeightFunc[W cmp.Ordered](fn func(u, v int) W) Option[W] {
	return func(c *config[W]) {
		if fn == nil {
			c.badOpt = ErrNilWeightFunc
			return
		}
		c.weightOf = fn
	}
}

// resolve applies options in order and validates the shared inputs.
func resolve[W cmp.Ordered](n, minVertices int, vertexFuncSet bool, opts []Option[W]) (config[W], error) {
	var cfg config[W]
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.badOpt != nil {
		return cfg, cfg.badOpt
	}
	if !vertexFuncSet {
		return cfg, ErrNilVertexFunc
	}
	if n < minVertices {
		return cfg, fmt.Errorf("%w: need at least %d, got %d", ErrTooFewVertices, minVertices, n)
	}

	return cfg, nil
}

// populate creates the table and the n vertices in index order.
func populate[T comparable, W cmp.Ordered](n int, vertexOf func(int) graph.Vertex[T]) (*graph.AdjacencyTable[T, W], []graph.Vertex[T], error) {
	g := graph.NewAdjacencyTable[T, W]()
	vs := make([]graph.Vertex[T], n)
	for i := 0; i < n; i++ {
		vs[i] = vertexOf(i)
		if err := g.AddVertex(vs[i]); err != nil {
			return nil, nil, err
		}
	}

	return g, vs, nil
}

// connect adds one edge between indexes u and v per the configuration.
func connect[T comparable, W cmp.Ordered](g *graph.AdjacencyTable[T, W], cfg config[W], vs []graph.Vertex[T], u, v int) error {
	var (
		e   graph.Edge[T, W]
		err error
	)
	switch {
	case cfg.directed && cfg.weightOf != nil:
		e = graph.NewWeightedArrow(vs[u], vs[v], graph.NewWeight(cfg.weightOf(u, v)))
	case cfg.directed:
		e = graph.NewArrow[T, W](vs[u], vs[v])
	case cfg.weightOf != nil:
		e, err = graph.NewWeightedLine(vs[u], vs[v], graph.NewWeight(cfg.weightOf(u, v)))
	default:
		e, err = graph.NewLine[T, W](vs[u], vs[v])
	}
	if err != nil {
		return err
	}

	return g.AddEdge(e)
}

// Path builds a path topology: vertexOf(0) — vertexOf(1) — … — vertexOf(n-1).
// Requires n ≥ 2.
//
// Complexity: O(n)
func Path[T comparable, W cmp.Ordered](n int, vertexOf func(int) graph.Vertex[T], opts ...Option[W]) (*graph.AdjacencyTable[T, W], error) {
	cfg, err := resolve(n, 2, vertexOf != nil, opts)
	if err != nil {
		return nil, fmt.Errorf("builder.Path: %w", err)
	}
	g, vs, err := populate[T, W](n, vertexOf)
	if err != nil {
		return nil, fmt.Errorf("builder.Path: %w", err)
	}
	for i := 0; i+1 < n; i++ {
		if err = connect(g, cfg, vs, i, i+1); err != nil {
			return nil, fmt.Errorf("builder.Path: %w", err)
		}
	}

	return g, nil
}

// Cycle builds a closed ring over n vertices. Requires n ≥ 3: a ring of
// two would revisit the same unordered pair and collide in the table.
//
// Complexity: O(n)
func Cycle[T comparable, W cmp.Ordered](n int, vertexOf func(int) graph.Vertex[T], opts ...Option[W]) (*graph.AdjacencyTable[T, W], error) {
	cfg, err := resolve(n, 3, vertexOf != nil, opts)
	if err != nil {
		return nil, fmt.Errorf("builder.Cycle: %w", err)
	}
	g, vs, err := populate[T, W](n, vertexOf)
	if err != nil {
		return nil, fmt.Errorf("builder.Cycle: %w", err)
	}
	for i := 0; i < n; i++ {
		if err = connect(g, cfg, vs, i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("builder.Cycle: %w", err)
		}
	}

	return g, nil
}

// Complete builds a complete topology over n vertices: every unordered
// index pair {i, j}, i < j, gets one edge (oriented i→j with WithArrows).
// Requires n ≥ 2.
//
// Complexity: O(n²)
func Complete[T comparable, W cmp.Ordered](n int, vertexOf func(int) graph.Vertex[T], opts ...Option[W]) (*graph.AdjacencyTable[T, W], error) {
	cfg, err := resolve(n, 2, vertexOf != nil, opts)
	if err != nil {
		return nil, fmt.Errorf("builder.Complete: %w", err)
	}
	g, vs, err := populate[T, W](n, vertexOf)
	if err != nil {
		return nil, fmt.Errorf("builder.Complete: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = connect(g, cfg, vs, i, j); err != nil {
				return nil, fmt.Errorf("builder.Complete: %w", err)
			}
		}
	}

	return g, nil
}

// Star builds a star topology: vertexOf(0) is the center, connected to
// every leaf vertexOf(1) … vertexOf(n-1) (center→leaf with WithArrows).
// Requires n ≥ 2.
//
// Complexity: O(n)
func Star[T comparable, W cmp.Ordered](n int, vertexOf func(int) graph.Vertex[T], opts ...Option[W]) (*graph.AdjacencyTable[T, W], error) {
	cfg, err := resolve(n, 2, vertexOf != nil, opts)
	if err != nil {
		return nil, fmt.Errorf("builder.Star: %w", err)
	}
	g, vs, err := populate[T, W](n, vertexOf)
	if err != nil {
		return nil, fmt.Errorf("builder.Star: %w", err)
	}
	for i := 1; i < n; i++ {
		if err = connect(g, cfg, vs, 0, i); err != nil {
			return nil, fmt.Errorf("builder.Star: %w", err)
		}
	}

	return g, nil
}
