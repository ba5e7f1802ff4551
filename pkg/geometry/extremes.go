package geometry

// Extremes tracks the running per-axis minimum and maximum over all
// points seen so far. A nil *Extremes means no point has been observed
// yet; the first Extend initializes all six bounds from that point, so
// the zero box never contains coordinates that were not in the input.
type Extremes struct {
	XMax, XMin float64
	YMax, YMin float64
	ZMax, ZMin float64
}

// Extend returns the extremes grown to include p. Each bound is replaced
// only when the new coordinate is strictly beyond it. Extend may be
// called on a nil receiver; callers keep the returned pointer:
//
//	var ext *geometry.Extremes
//	ext = ext.Extend(p)
func (e *Extremes) Extend(p Point) *Extremes {
	if e == nil {
		return &Extremes{
			XMax: p.X, XMin: p.X,
			YMax: p.Y, YMin: p.Y,
			ZMax: p.Z, ZMin: p.Z,
		}
	}
	if p.X > e.XMax {
		e.XMax = p.X
	}
	if p.X < e.XMin {
		e.XMin = p.X
	}
	if p.Y > e.YMax {
		e.YMax = p.Y
	}
	if p.Y < e.YMin {
		e.YMin = p.Y
	}
	if p.Z > e.ZMax {
		e.ZMax = p.Z
	}
	if p.Z < e.ZMin {
		e.ZMin = p.Z
	}
	return e
}

// Corners enumerates the 8 corner points of the axis-aligned box, x
// outermost and z innermost, the max bound before the min bound on every
// axis. The corners are not deduplicated: a degenerate box repeats the
// coinciding combinations. A nil receiver yields nil.
func (e *Extremes) Corners() []Point {
	if e == nil {
		return nil
	}
	corners := make([]Point, 0, 8)
	for _, x := range [2]float64{e.XMax, e.XMin} {
		for _, y := range [2]float64{e.YMax, e.YMin} {
			for _, z := range [2]float64{e.ZMax, e.ZMin} {
				corners = append(corners, Point{X: x, Y: y, Z: z})
			}
		}
	}
	return corners
}

// Min returns the corner with the minimum coordinate on every axis
func (e *Extremes) Min() Point {
	if e == nil {
		return Point{}
	}
	return Point{X: e.XMin, Y: e.YMin, Z: e.ZMin}
}

// Max returns the corner with the maximum coordinate on every axis
func (e *Extremes) Max() Point {
	if e == nil {
		return Point{}
	}
	return Point{X: e.XMax, Y: e.YMax, Z: e.ZMax}
}

// Size returns the dimensions of the box
func (e *Extremes) Size() Point {
	return e.Max().Sub(e.Min())
}

// Center returns the center point of the box
func (e *Extremes) Center() Point {
	return e.Min().Add(e.Max()).Mul(0.5)
}

// Diagonal returns the length of the box diagonal
func (e *Extremes) Diagonal() float64 {
	return e.Size().Length()
}

// Volume returns the volume of the box
func (e *Extremes) Volume() float64 {
	size := e.Size()
	return size.X * size.Y * size.Z
}

// Contains reports whether p lies inside the box, bounds included.
func (e *Extremes) Contains(p Point) bool {
	if e == nil {
		return false
	}
	return p.X >= e.XMin && p.X <= e.XMax &&
		p.Y >= e.YMin && p.Y <= e.YMax &&
		p.Z >= e.ZMin && p.Z <= e.ZMax
}
