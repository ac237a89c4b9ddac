// Package builder_test verifies topology shapes, option wiring, error
// sentinels, and determinism of the constructors.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arrowline/graph"
	"github.com/arrowline/graph/builder"
)

// intVertex maps an index straight to an int-payload vertex.
func intVertex(i int) graph.Vertex[int] {
	return graph.NewVertex(i)
}

// degree fetches the degree of the vertex with payload i, failing the
// test on error.
func degree(t *testing.T, g *graph.AdjacencyTable[int, int], i int) int {
	t.Helper()
	d, err := g.Degree(graph.NewVertex(i))
	require.NoError(t, err)
	return d
}

// TestConstructors_Shapes verifies vertex counts and degree profiles of
// every undirected topology.
func TestConstructors_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		build   func() (*graph.AdjacencyTable[int, int], error)
		n       int
		degrees map[int]int
	}{
		{
			name:    "Path/4",
			build:   func() (*graph.AdjacencyTable[int, int], error) { return builder.Path[int, int](4, intVertex) },
			n:       4,
			degrees: map[int]int{0: 1, 1: 2, 2: 2, 3: 1},
		},
		{
			name:    "Cycle/5",
			build:   func() (*graph.AdjacencyTable[int, int], error) { return builder.Cycle[int, int](5, intVertex) },
			n:       5,
			degrees: map[int]int{0: 2, 1: 2, 2: 2, 3: 2, 4: 2},
		},
		{
			name:    "Complete/4",
			build:   func() (*graph.AdjacencyTable[int, int], error) { return builder.Complete[int, int](4, intVertex) },
			n:       4,
			degrees: map[int]int{0: 3, 1: 3, 2: 3, 3: 3},
		},
		{
			name:    "Star/5",
			build:   func() (*graph.AdjacencyTable[int, int], error) { return builder.Star[int, int](5, intVertex) },
			n:       5,
			degrees: map[int]int{0: 4, 1: 1, 2: 1, 3: 1, 4: 1},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := tc.build()
			require.NoError(t, err)
			require.Equal(t, tc.n, g.VertexCount())
			for i, want := range tc.degrees {
				require.Equal(t, want, degree(t, g, i), "degree of vertex %d", i)
			}
		})
	}
}

// TestCycle_ClosesRing verifies the wrap-around edge between the last
// and the first vertex.
func TestCycle_ClosesRing(t *testing.T) {
	t.Parallel()

	g, err := builder.Cycle[int, int](4, intVertex)
	require.NoError(t, err)

	line, err := graph.NewLine[int, int](graph.NewVertex(3), graph.NewVertex(0))
	require.NoError(t, err)
	ok, err := g.HasEdge(line)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestWithArrows verifies directed emission: forward entries only.
func TestWithArrows(t *testing.T) {
	t.Parallel()

	g, err := builder.Path[int, int](3, intVertex, builder.WithArrows[int]())
	require.NoError(t, err)

	ok, err := g.HasEdge(graph.NewArrow[int, int](graph.NewVertex(0), graph.NewVertex(1)))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = g.HasEdge(graph.NewArrow[int, int](graph.NewVertex(1), graph.NewVertex(0)))
	require.NoError(t, err)
	require.False(t, ok)

	// The terminal vertex has no outgoing entries.
	require.Zero(t, degree(t, g, 2))
}

// TestWithWeightFunc verifies every edge carries fn(u, v).
func TestWithWeightFunc(t *testing.T) {
	t.Parallel()

	g, err := builder.Star[int, int](4, intVertex,
		builder.WithWeightFunc(func(u, v int) int { return 10*u + v }))
	require.NoError(t, err)

	ws, err := g.Weights(graph.NewVertex(0))
	require.NoError(t, err)
	require.Len(t, ws, 3)
	for i := 1; i < 4; i++ {
		w := ws[graph.NewVertex(i)]
		require.NotNil(t, w)
		require.Equal(t, i, w.Value())
	}
}

// TestConstructors_Errors verifies sentinel reporting for bad inputs.
func TestConstructors_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.Path[int, int](1, intVertex)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Cycle[int, int](2, intVertex)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Complete[int, int](1, intVertex)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Star[int, int](1, intVertex)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Path[int, int](3, nil)
	require.ErrorIs(t, err, builder.ErrNilVertexFunc)

	_, err = builder.Path[int, int](3, intVertex, builder.WithWeightFunc[int](nil))
	require.ErrorIs(t, err, builder.ErrNilWeightFunc)

	// A vertexOf collapsing all indexes collides inside the core.
	constant := func(int) graph.Vertex[int] { return graph.NewVertex(7) }
	_, err = builder.Path[int, int](3, constant)
	require.ErrorIs(t, err, graph.ErrVertexExists)
}

// TestDeterminism verifies identical inputs yield identical graphs.
func TestDeterminism(t *testing.T) {
	t.Parallel()

	weightFn := func(u, v int) int { return u + v }

	first, err := builder.Complete[int, int](5, intVertex, builder.WithWeightFunc(weightFn))
	require.NoError(t, err)
	second, err := builder.Complete[int, int](5, intVertex, builder.WithWeightFunc(weightFn))
	require.NoError(t, err)

	require.Equal(t, first, second)
}
