package d3

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Box is a 3d bounding box.
type Box r3.Box

// Bounds returns the bounding box of a set of points. An empty set
// returns the zero Box.
func Bounds(pts []r3.Vec) Box {
	if len(pts) == 0 {
		return Box{}
	}
	s := Set(pts)
	return Box{Min: s.Min(), Max: s.Max()}
}

// Include enlarges a 3d box to include a point.
func (a Box) Include(v r3.Vec) Box {
	return Box{
		Min: MinElem(a.Min, v),
		Max: MaxElem(a.Max, v),
	}
}

// Translate translates a 3d box.
func (a Box) Translate(v r3.Vec) Box {
	return Box{r3.Add(a.Min, v), r3.Add(a.Max, v)}
}
