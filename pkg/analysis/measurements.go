// Package analysis derives measurements from parsed STL documents that
// go beyond the aggregates the parser folds in: edge statistics, bounding
// box dimensions and nearest-vertex queries.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/cjfreeze/stl/pkg/geometry"
	"github.com/cjfreeze/stl/pkg/stl"
)

// EdgeInfo is one edge of one facet. The same geometric edge appears
// once per facet that uses it.
type EdgeInfo struct {
	Start      geometry.Point
	End        geometry.Point
	Length     float64
	FacetIndex int
}

// Measurements is the full set of derived measurements for a document.
type Measurements struct {
	Extremes      *geometry.Extremes
	Dimensions    geometry.Point
	Volume        float64
	Diagonal      float64
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	Edges         []EdgeInfo
}

// Analyze walks the document once and computes every measurement. The
// parser's own aggregates (count, area, extremes) are reused rather than
// recomputed.
func Analyze(doc *stl.Document) *Measurements {
	m := &Measurements{
		Extremes:      doc.Extremes(),
		SurfaceArea:   doc.SurfaceArea(),
		TriangleCount: doc.TriangleCount(),
		Edges:         make([]EdgeInfo, 0, 3*len(doc.Facets)),
	}
	if m.Extremes != nil {
		m.Dimensions = m.Extremes.Size()
		m.Volume = m.Extremes.Volume()
		m.Diagonal = m.Extremes.Diagonal()
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i, facet := range doc.Facets {
		for e := 0; e < 3; e++ {
			start := facet.Vertices[e]
			end := facet.Vertices[(e+1)%3]
			length := start.Distance(end)

			m.Edges = append(m.Edges, EdgeInfo{
				Start:      start,
				End:        end,
				Length:     length,
				FacetIndex: i,
			})

			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	m.EdgeCount = len(m.Edges)
	if m.EdgeCount > 0 {
		m.MinEdgeLength = minLength
		m.MaxEdgeLength = maxLength
		m.AvgEdgeLength = totalLength / float64(m.EdgeCount)
	}
	return m
}

// EdgesByLength returns every edge whose length lies in [min, max].
func (m *Measurements) EdgesByLength(min, max float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range m.Edges {
		if edge.Length >= min && edge.Length <= max {
			edges = append(edges, edge)
		}
	}
	return edges
}

// LongestEdges returns the n longest edges, longest first.
func (m *Measurements) LongestEdges(n int) []EdgeInfo {
	edges := make([]EdgeInfo, len(m.Edges))
	copy(edges, m.Edges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})
	if n > len(edges) {
		n = len(edges)
	}
	return edges[:n]
}

// ShortestEdges returns the n shortest edges, shortest first.
func (m *Measurements) ShortestEdges(n int) []EdgeInfo {
	edges := make([]EdgeInfo, len(m.Edges))
	copy(edges, m.Edges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})
	if n > len(edges) {
		n = len(edges)
	}
	return edges[:n]
}

// DistanceBetweenPoints calculates the distance between two arbitrary points
func DistanceBetweenPoints(p1, p2 geometry.Point) float64 {
	return p1.Distance(p2)
}

// NearestVertex finds the document vertex nearest to a given point. On a
// document with no facets the distance is math.MaxFloat64.
func NearestVertex(doc *stl.Document, point geometry.Point) (geometry.Point, float64) {
	var nearest geometry.Point
	minDistance := math.MaxFloat64

	for _, facet := range doc.Facets {
		for _, vertex := range facet.Vertices {
			distance := point.Distance(vertex)
			if distance < minDistance {
				minDistance = distance
				nearest = vertex
			}
		}
	}
	return nearest, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatPoint formats a 3D point
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", p.X, p.Y, p.Z)
}
