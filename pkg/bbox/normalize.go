package bbox

import "math"

// Scale is the upper bound of the normalized coordinate grid.
const Scale = 1000

// Box is a raw bounding box [x0, y0, x1, y1] in pixel coordinates
type Box [4]float64

// Normalized is a bounding box [x0, y0, x1, y1] on the 0..Scale grid
type Normalized [4]int

// Point is a location on the normalized grid
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NormalizeCoord scales a single pixel coordinate into the 0..1000 range.
//
// A zero (or negative) dimension yields 0. Ties are rounded half to even and
// the result is clamped, so coordinates outside the image saturate at 0 or 1000.
func NormalizeCoord(coord float64, dimension int) int {
	if dimension <= 0 {
		return 0
	}

	n := math.RoundToEven(coord / float64(dimension) * Scale)
	if math.IsNaN(n) {
		return 0
	}

	return int(max(0, min(Scale, n)))
}

// NormalizeBox normalizes x coordinates against width and y coordinates against height.
// Box ordering is preserved as-is, see Normalized.Valid.
func NormalizeBox(b Box, width, height int) Normalized {
	return Normalized{
		NormalizeCoord(b[0], width),
		NormalizeCoord(b[1], height),
		NormalizeCoord(b[2], width),
		NormalizeCoord(b[3], height),
	}
}

// Center returns the midpoint of the box
func (n Normalized) Center() Point {
	return Point{
		X: float64(n[0]+n[2]) / 2,
		Y: float64(n[1]+n[3]) / 2,
	}
}

// Valid reports whether x0 <= x1 and y0 <= y1
func (n Normalized) Valid() bool {
	return n[0] <= n[2] && n[1] <= n[3]
}

// Width is x1 - x0 of the raw box
func (b Box) Width() float64 {
	return b[2] - b[0]
}

// Height is y1 - y0 of the raw box
func (b Box) Height() float64 {
	return b[3] - b[1]
}
