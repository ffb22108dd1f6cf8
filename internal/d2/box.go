package d2

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// Size returns the size of a 2d box.
func (a Box) Size() r2.Vec {
	return r2.Sub(a.Max, a.Min)
}

// Contains checks if the 2d box contains the given vector (considering bounds as inside).
func (a Box) Contains(v r2.Vec) bool {
	return a.Min.X <= v.X && a.Min.Y <= v.Y &&
		v.X <= a.Max.X && v.Y <= a.Max.Y
}

// Triangle returns the bounding box of a triangle.
func Triangle(tri [3]r2.Vec) Box {
	return Box{
		Min: MinElem(tri[0], MinElem(tri[1], tri[2])),
		Max: MaxElem(tri[0], MaxElem(tri[1], tri[2])),
	}
}

// InTriangle returns true if pt is contained in bounds
// defined by triangle vertices tri. Points on an edge are inside.
func InTriangle(pt r2.Vec, tri [3]r2.Vec) bool {
	d1 := edgeSign(pt, tri[0], tri[1])
	d2 := edgeSign(pt, tri[1], tri[2])
	d3 := edgeSign(pt, tri[2], tri[0])
	hasNeg := (d1 < 0) || (d2 < 0) || (d3 < 0)
	hasPos := (d1 > 0) || (d2 > 0) || (d3 > 0)
	return !(hasNeg && hasPos)
}

func edgeSign(p1, p2, p3 r2.Vec) float64 {
	return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
}
