package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// approxRelTol is the relative tolerance used by Approx.
const approxRelTol = 1e-6

// approxAbsTol is the absolute floor used by Approx near zero.
const approxAbsTol = 8 * math.SmallestNonzeroFloat32

// Approx reports whether a and b are equal within a relative tolerance
// of 1e-6 of the larger magnitude. Values near zero compare with a tiny
// absolute floor.
func Approx(a, b float64) bool {
	tol := math.Max(approxRelTol*math.Max(math.Abs(a), math.Abs(b)), approxAbsTol)
	return math.Abs(b-a) < tol
}

// ApproxVec reports whether both components of a and b are Approx equal.
func ApproxVec(a, b r2.Vec) bool {
	return Approx(a.X, b.X) && Approx(a.Y, b.Y)
}

// EqualWithin reports whether both components of a and b differ by at most tol.
func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Dist2 returns the squared euclidean distance between a and b.
func Dist2(a, b r2.Vec) float64 {
	return r2.Norm2(r2.Sub(a, b))
}

// Cross returns the z component of the cross product of a and b.
func Cross(a, b r2.Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}

// SignedArea returns twice the signed area of triangle abc.
// It is positive for counter-clockwise winding.
func SignedArea(a, b, c r2.Vec) float64 {
	return Cross(r2.Sub(b, a), r2.Sub(c, a))
}

// BisectorProbes returns two points c and d on the perpendicular bisector
// of segment ab, each at distance h from the segment midpoint and on
// opposite sides of the segment. c lies to the left of a->b.
// ok is false if a and b coincide, in which case there is no bisector.
func BisectorProbes(a, b r2.Vec, h float64) (c, d r2.Vec, ok bool) {
	if ApproxVec(a, b) {
		return a, b, false
	}
	mid := r2.Scale(0.5, r2.Add(a, b))
	dir := r2.Sub(b, a)
	n := r2.Unit(r2.Vec{X: -dir.Y, Y: dir.X})
	c = r2.Add(mid, r2.Scale(h, n))
	d = r2.Sub(mid, r2.Scale(h, n))
	return c, d, true
}

// Set is a list of 2d vectors.
type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Bounds returns the bounding box of the set. The set must not be empty.
func (a Set) Bounds() Box {
	return Box{Min: a.Min(), Max: a.Max()}
}
