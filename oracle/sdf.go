package oracle

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"gonum.org/v1/gonum/spatial/r2"
)

// SDFOracle tests containment with a signed distance function: a point is
// inside where the distance is negative.
type SDFOracle struct {
	s sdf.SDF2
}

// SDF wraps a 2D signed distance function.
func SDF(s sdf.SDF2) SDFOracle {
	return SDFOracle{s: s}
}

// Outline builds an SDF oracle for the polygon enclosed by outline.
func Outline(outline []r2.Vec) (SDFOracle, error) {
	vs := make([]v2.Vec, len(outline))
	for i, v := range outline {
		vs[i] = v2.Vec{X: v.X, Y: v.Y}
	}
	s, err := sdf.Polygon2D(vs)
	if err != nil {
		return SDFOracle{}, fmt.Errorf("outline oracle: %w", err)
	}
	return SDF(s), nil
}

// Contains reports whether the signed distance at p is negative.
func (o SDFOracle) Contains(p r2.Vec) bool {
	return o.s.Evaluate(v2.Vec{X: p.X, Y: p.Y}) < 0
}
