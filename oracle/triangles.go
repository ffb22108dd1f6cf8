package oracle

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/soypat/column/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Minimum extent of an R-tree rectangle. rtreego rejects zero lengths.
const minExtent = 1e-12

// TriangleOracle tests containment against the union of a triangle list,
// the same data a sprite collider is built from. Triangles are indexed in
// an R-tree so a query only visits faces whose box holds the point.
type TriangleOracle struct {
	tree *rtreego.Rtree
	n    int
}

type indexedTriangle struct {
	tri [3]r2.Vec
	bb  rtreego.Rect
}

func (t *indexedTriangle) Bounds() rtreego.Rect { return t.bb }

// Triangles returns an oracle for the area covered by the given triangles.
// triangles holds three indices into vertices per face.
func Triangles(vertices []r2.Vec, triangles []uint32) (*TriangleOracle, error) {
	if len(triangles)%3 != 0 {
		return nil, fmt.Errorf("triangle oracle: index count %d not divisible by 3", len(triangles))
	}
	objs := make([]rtreego.Spatial, 0, len(triangles)/3)
	for i := 0; i < len(triangles); i += 3 {
		var t indexedTriangle
		for j := range t.tri {
			idx := int(triangles[i+j])
			if idx >= len(vertices) {
				return nil, fmt.Errorf("triangle oracle: face %d references vertex %d of %d", i/3, idx, len(vertices))
			}
			t.tri[j] = vertices[idx]
		}
		bb, err := rect(d2.Triangle(t.tri))
		if err != nil {
			return nil, fmt.Errorf("triangle oracle: face %d: %w", i/3, err)
		}
		t.bb = bb
		objs = append(objs, &t)
	}
	return &TriangleOracle{
		tree: rtreego.NewTree(2, 8, 32, objs...),
		n:    len(objs),
	}, nil
}

// Contains reports whether p lies in any triangle. Points on an edge are inside.
func (o *TriangleOracle) Contains(p r2.Vec) bool {
	pad := r2.Vec{X: minExtent, Y: minExtent}
	q, err := rect(d2.Box{Min: r2.Sub(p, pad), Max: r2.Add(p, pad)})
	if err != nil {
		return false
	}
	for _, s := range o.tree.SearchIntersect(q) {
		if d2.InTriangle(p, s.(*indexedTriangle).tri) {
			return true
		}
	}
	return false
}

// Len returns the number of indexed triangles.
func (o *TriangleOracle) Len() int { return o.n }

func rect(b d2.Box) (rtreego.Rect, error) {
	size := b.Size()
	return rtreego.NewRect(
		rtreego.Point{b.Min.X, b.Min.Y},
		[]float64{max(size.X, minExtent), max(size.Y, minExtent)},
	)
}
