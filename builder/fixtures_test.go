package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphpad/builder"
	"github.com/katalvlaran/graphpad/core"
	"github.com/katalvlaran/graphpad/cutpoints"
)

func TestBuild_NilConstructor(t *testing.T) {
	g, err := builder.Build(builder.Path(3), nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, builder.ErrNilConstructor)
}

func TestBuild_ParameterValidation(t *testing.T) {
	_, err := builder.Build(builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestSimple_ShapeAndAnalysis(t *testing.T) {
	g, err := builder.Build(builder.Simple())
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())

	res, err := cutpoints.Analyze(g)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{1}, res.CutVertices())
	assert.True(t, res.IsBridge(0, 1))
	assert.Equal(t, 1, res.BridgeCount())
}

func TestComplex_ShapeAndAnalysis(t *testing.T) {
	g, err := builder.Build(builder.Complex())
	require.NoError(t, err)

	assert.Equal(t, 7, g.VertexCount())
	assert.Equal(t, 8, g.EdgeCount())

	res, err := cutpoints.Analyze(g)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{1, 2, 4}, res.CutVertices())
	assert.Equal(t, 2, res.BridgeCount())
	assert.True(t, res.IsBridge(0, 1))
	assert.True(t, res.IsBridge(2, 4))
}

func TestPathAndCycle_Generators(t *testing.T) {
	g, err := builder.Build(builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())

	g, err = builder.Build(builder.Cycle(6))
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.HasEdge(5, 0), "cycle closes back to the first vertex")
}

func TestBuild_ComposesConstructors(t *testing.T) {
	// Two disjoint shapes in one graph; IDs keep ascending across
	// constructors, so the second shape never collides with the first.
	g, err := builder.Build(builder.Triangle(), builder.Path(2))
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge(3, 4))
	assert.False(t, g.HasEdge(2, 3), "shapes stay disconnected")
}

func TestBuild_Deterministic(t *testing.T) {
	g1, err := builder.Build(builder.Complex())
	require.NoError(t, err)
	g2, err := builder.Build(builder.Complex())
	require.NoError(t, err)

	assert.Equal(t, g1.Vertices(), g2.Vertices())
	assert.Equal(t, g1.Edges(), g2.Edges())
}
