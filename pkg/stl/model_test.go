package stl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cjfreeze/stl/pkg/geometry"
	"github.com/cjfreeze/stl/pkg/stl"
)

// rightTriangle is a 3-4-5 triangle in the z=0 plane, area 6.
func rightTriangle() stl.Facet {
	return stl.Facet{
		Vertices: [3]geometry.Point{
			{},
			{X: 3},
			{Y: 4},
		},
	}
}

func TestFacetAreaStored(t *testing.T) {
	f := rightTriangle()
	f.SurfaceArea = 7.5
	require.Equal(t, 7.5, f.Area())
}

func TestFacetAreaRecomputed(t *testing.T) {
	require.InDelta(t, 6.0, rightTriangle().Area(), 1e-9)
}

func TestFacetEdges(t *testing.T) {
	f := rightTriangle()
	lengths := f.EdgeLengths()
	require.InDelta(t, 3.0, lengths[0], 1e-12)
	require.InDelta(t, 5.0, lengths[1], 1e-12)
	require.InDelta(t, 4.0, lengths[2], 1e-12)
	require.InDelta(t, 12.0, f.Perimeter(), 1e-12)
}

func TestDocumentFallbackAggregates(t *testing.T) {
	// A document assembled by hand carries no parse-time aggregates;
	// the accessors recompute from the facet list.
	second := stl.Facet{
		Vertices: [3]geometry.Point{
			{Z: 5},
			{Y: 3, Z: 5},
			{X: 4, Z: 5},
		},
	}
	doc := &stl.Document{
		Name:   "manual",
		Facets: []stl.Facet{rightTriangle(), second},
	}

	require.Equal(t, 2, doc.TriangleCount())
	require.InDelta(t, 12.0, doc.SurfaceArea(), 1e-9)

	corners := doc.BoundingBox()
	require.Len(t, corners, 8)
	require.Equal(t, geometry.Point{X: 4, Y: 4, Z: 5}, corners[0])
	require.Equal(t, geometry.Point{}, corners[7])
}

func TestDocumentEmptyFallback(t *testing.T) {
	doc := &stl.Document{}
	require.Zero(t, doc.TriangleCount())
	require.Zero(t, doc.SurfaceArea())
	require.Nil(t, doc.Extremes())
	require.Nil(t, doc.BoundingBox())
}

func TestDocumentExtremesIsACopy(t *testing.T) {
	doc, err := stl.ParseString(cubeSTL)
	require.NoError(t, err)

	ext := doc.Extremes()
	ext.XMax = 99
	require.Equal(t, 1.0, doc.Extremes().XMax)
}
