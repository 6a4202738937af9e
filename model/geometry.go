package model

// Point is a position in PDF user space.
type Point struct {
	X, Y float64
}

// BBox is an axis-aligned rectangle; Y is the bottom edge.
type BBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the right edge.
func (b BBox) Right() float64 { return b.X + b.Width }

// Top returns the top edge.
func (b BBox) Top() float64 { return b.Y + b.Height }

// Matrix is a 2D affine transformation [a b c d e f].
type Matrix [6]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Translate returns a translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Transform applies m to p.
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Multiply returns m × other, i.e. m applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// ScaleY returns the vertical scale factor of m.
func (m Matrix) ScaleY() float64 {
	if m[3] < 0 {
		return -m[3]
	}
	return m[3]
}
