package stl

import (
	"github.com/cjfreeze/stl/pkg/geometry"
)

// Facet is one triangular face of a model: the normal vector declared in
// the source and the three vertices in declaration order. Vertex order is
// preserved as written, since it carries the winding a future consumer
// may care about.
type Facet struct {
	Normal      geometry.Point
	Vertices    [3]geometry.Point
	SurfaceArea float64
}

// Area returns the facet's surface area. Parsers store the Heron area at
// parse time; when the stored value is zero the area is recomputed from
// the vertices. A degenerate facet recomputes to zero either way, so the
// zero value is safe to treat as "not yet computed".
func (f Facet) Area() float64 {
	if f.SurfaceArea != 0 {
		return f.SurfaceArea
	}
	return geometry.TriangleArea(f.Vertices[0], f.Vertices[1], f.Vertices[2])
}

// EdgeLengths returns the lengths of all three edges
func (f Facet) EdgeLengths() [3]float64 {
	return [3]float64{
		f.Vertices[0].Distance(f.Vertices[1]),
		f.Vertices[1].Distance(f.Vertices[2]),
		f.Vertices[2].Distance(f.Vertices[0]),
	}
}

// Perimeter returns the total length of all edges
func (f Facet) Perimeter() float64 {
	lengths := f.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Document is a parsed STL model. Documents returned by a parser carry
// aggregates (triangle count, bounding extremes, total surface area) that
// were folded in during the parse itself, so the accessors below are
// constant-time. A Document assembled by hand lacks those aggregates and
// the same accessors recompute from Facets instead.
//
// A Document returned by a parser must be treated as read-only.
type Document struct {
	Name   string
	Facets []Facet

	aggregated bool
	count      int
	area       float64
	bounds     *geometry.Extremes
}

// TriangleCount returns the number of facets in the document
func (d *Document) TriangleCount() int {
	if d.aggregated {
		return d.count
	}
	return len(d.Facets)
}

// SurfaceArea returns the total surface area of the document. Without a
// parse-time total this sums each facet's own area, recomputing only the
// facets that lack a stored one.
func (d *Document) SurfaceArea() float64 {
	if d.aggregated {
		return d.area
	}
	total := 0.0
	for _, facet := range d.Facets {
		total += facet.Area()
	}
	return total
}

// BoundingBox returns the 8 corner points of the minimal axis-aligned box
// enclosing every vertex, in the fixed order of Extremes.Corners. A
// document with no vertices has no box and yields nil.
func (d *Document) BoundingBox() []geometry.Point {
	return d.Extremes().Corners()
}

// Extremes returns the per-axis bounds over all vertices, or nil when the
// document has no facets. The result is the caller's to mutate.
func (d *Document) Extremes() *geometry.Extremes {
	if d.aggregated {
		if d.bounds == nil {
			return nil
		}
		bounds := *d.bounds
		return &bounds
	}
	var ext *geometry.Extremes
	for _, facet := range d.Facets {
		for _, vertex := range facet.Vertices {
			ext = ext.Extend(vertex)
		}
	}
	return ext
}

// documentBuilder accumulates facets together with their running
// aggregates. Both parser implementations build Documents through it so
// they materialize identical results, and the aggregation happens facet
// by facet during the parse rather than in a second pass.
type documentBuilder struct {
	name   string
	facets []Facet
	count  int
	area   float64
	bounds *geometry.Extremes
}

// add computes the facet's area, folds its vertices into the running
// extremes, and appends it. Facets arrive in declaration order and are
// kept that way.
func (b *documentBuilder) add(facet Facet) {
	facet.SurfaceArea = geometry.TriangleArea(facet.Vertices[0], facet.Vertices[1], facet.Vertices[2])
	b.area += facet.SurfaceArea
	for _, vertex := range facet.Vertices {
		b.bounds = b.bounds.Extend(vertex)
	}
	b.count++
	b.facets = append(b.facets, facet)
}

// document materializes the final Document in one step.
func (b *documentBuilder) document() *Document {
	return &Document{
		Name:       b.name,
		Facets:     b.facets,
		aggregated: true,
		count:      b.count,
		area:       b.area,
		bounds:     b.bounds,
	}
}
