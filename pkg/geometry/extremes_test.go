package geometry

import (
	"math"
	"testing"
)

func TestExtremesExtendFromNil(t *testing.T) {
	var ext *Extremes
	ext = ext.Extend(NewPoint(1, 2, 3))

	if ext == nil {
		t.Fatal("Extend on nil receiver returned nil")
	}
	want := Extremes{XMax: 1, XMin: 1, YMax: 2, YMin: 2, ZMax: 3, ZMin: 3}
	if *ext != want {
		t.Errorf("first Extend: expected %+v, got %+v", want, *ext)
	}
}

func TestExtremesExtend(t *testing.T) {
	var ext *Extremes
	ext = ext.Extend(NewPoint(1, 1, 1))
	ext = ext.Extend(NewPoint(-2, 5, 0))
	ext = ext.Extend(NewPoint(0, -3, 7))

	want := Extremes{XMax: 1, XMin: -2, YMax: 5, YMin: -3, ZMax: 7, ZMin: 0}
	if *ext != want {
		t.Errorf("Extend: expected %+v, got %+v", want, *ext)
	}
}

func TestExtremesExtendEqualCoordinate(t *testing.T) {
	// Bounds only move for strictly greater/smaller coordinates, so an
	// equal coordinate leaves the accumulator untouched.
	var ext *Extremes
	ext = ext.Extend(NewPoint(1, 1, 1))
	before := *ext
	ext = ext.Extend(NewPoint(1, 1, 1))

	if *ext != before {
		t.Errorf("equal coordinate moved bounds: %+v -> %+v", before, *ext)
	}
}

func TestExtremesCornersOrder(t *testing.T) {
	ext := &Extremes{XMax: 1, XMin: -1, YMax: 2, YMin: -2, ZMax: 3, ZMin: -3}
	corners := ext.Corners()

	if len(corners) != 8 {
		t.Fatalf("Corners: expected 8 points, got %d", len(corners))
	}
	expected := []Point{
		{1, 2, 3}, {1, 2, -3}, {1, -2, 3}, {1, -2, -3},
		{-1, 2, 3}, {-1, 2, -3}, {-1, -2, 3}, {-1, -2, -3},
	}
	for i, corner := range corners {
		if corner != expected[i] {
			t.Errorf("corner %d: expected %v, got %v", i, expected[i], corner)
		}
	}
}

func TestExtremesCornersDegenerate(t *testing.T) {
	// A single point still yields 8 (coinciding) corner combinations.
	var ext *Extremes
	ext = ext.Extend(NewPoint(2, 2, 2))
	corners := ext.Corners()

	if len(corners) != 8 {
		t.Fatalf("Corners: expected 8 points, got %d", len(corners))
	}
	for i, corner := range corners {
		if corner != NewPoint(2, 2, 2) {
			t.Errorf("corner %d: expected (2,2,2), got %v", i, corner)
		}
	}
}

func TestExtremesCornersNil(t *testing.T) {
	var ext *Extremes
	if corners := ext.Corners(); corners != nil {
		t.Errorf("Corners on nil extremes: expected nil, got %v", corners)
	}
}

func TestExtremesSizeCenterVolume(t *testing.T) {
	ext := &Extremes{XMax: 3, XMin: -1, YMax: 2, YMin: 0, ZMax: 5, ZMin: 1}

	if size := ext.Size(); size != NewPoint(4, 2, 4) {
		t.Errorf("Size: expected (4,2,4), got %v", size)
	}
	if center := ext.Center(); center != NewPoint(1, 1, 3) {
		t.Errorf("Center: expected (1,1,3), got %v", center)
	}
	if volume := ext.Volume(); math.Abs(volume-32.0) > 1e-10 {
		t.Errorf("Volume: expected 32, got %v", volume)
	}

	expected := math.Sqrt(16 + 4 + 16)
	if diagonal := ext.Diagonal(); math.Abs(diagonal-expected) > 1e-10 {
		t.Errorf("Diagonal: expected %v, got %v", expected, diagonal)
	}
}

func TestExtremesContains(t *testing.T) {
	ext := &Extremes{XMax: 1, XMin: -1, YMax: 1, YMin: -1, ZMax: 1, ZMin: -1}

	inside := []Point{{0, 0, 0}, {1, 1, 1}, {-1, -1, -1}, {1, 0, -1}}
	for _, p := range inside {
		if !ext.Contains(p) {
			t.Errorf("Contains(%v) = false; want true", p)
		}
	}
	outside := []Point{{1.001, 0, 0}, {0, -2, 0}, {0, 0, 42}}
	for _, p := range outside {
		if ext.Contains(p) {
			t.Errorf("Contains(%v) = true; want false", p)
		}
	}

	var none *Extremes
	if none.Contains(Point{}) {
		t.Error("Contains on nil extremes: expected false")
	}
}
