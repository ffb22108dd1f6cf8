package oracle

import (
	"errors"

	"github.com/soypat/column/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

// PolygonOracle tests containment against a closed outline using the
// winding number. Either orientation works.
type PolygonOracle struct {
	vertex []r2.Vec // closed: first == last
	bb     d2.Box
}

// Polygon returns an oracle for the area enclosed by outline. The outline is
// closed automatically if its last vertex differs from the first.
func Polygon(outline []r2.Vec) (*PolygonOracle, error) {
	n := len(outline)
	if n < 3 {
		return nil, errors.New("polygon needs at least 3 vertices")
	}
	s := &PolygonOracle{vertex: append([]r2.Vec(nil), outline...)}
	if !d2.EqualWithin(outline[0], outline[n-1], tolerance) {
		s.vertex = append(s.vertex, outline[0])
	}
	s.bb = d2.Set(s.vertex).Bounds()
	return s, nil
}

// Contains reports whether p has a non-zero winding number.
// See: http://geomalgorithms.com/a03-_inclusion.html
func (s *PolygonOracle) Contains(p r2.Vec) bool {
	if !s.bb.Contains(p) {
		return false
	}
	wn := 0
	for i := 0; i < len(s.vertex)-1; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]
		// side > 0 when p is left of a->b.
		side := d2.Cross(r2.Sub(b, a), r2.Sub(p, a))
		if a.Y <= p.Y {
			if b.Y > p.Y && side > 0 { // upward crossing
				wn++
			}
		} else if b.Y <= p.Y && side < 0 { // downward crossing
			wn--
		}
	}
	return wn != 0
}

// Bounds returns the bounding box of the outline.
func (s *PolygonOracle) Bounds() r2.Box { return r2.Box(s.bb) }
